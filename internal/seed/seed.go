package seed

import (
	"context"
	"time"

	"github.com/heara/heara-api/internal/models"
)

// LeadWriter is the lead storage surface the seeder needs.
// Satisfied by repository.LeadRepository.
type LeadWriter interface {
	DeleteAll(ctx context.Context) error
	InsertMany(ctx context.Context, leads []models.Lead) (int, error)
}

// ProductWriter is the product storage surface the seeder needs.
// Satisfied by repository.ProductRepository.
type ProductWriter interface {
	DeleteAll(ctx context.Context) error
	InsertMany(ctx context.Context, products []models.Product) (int, error)
}

// Run clears both collections and repopulates them with the fixed sample
// data. It is a one-shot operation owned by cmd/seed and must never run as
// part of server startup. Returns the inserted product and lead counts.
func Run(ctx context.Context, leads LeadWriter, products ProductWriter) (int, int, error) {
	if err := products.DeleteAll(ctx); err != nil {
		return 0, 0, err
	}
	productCount, err := products.InsertMany(ctx, Products())
	if err != nil {
		return 0, 0, err
	}

	if err := leads.DeleteAll(ctx); err != nil {
		return productCount, 0, err
	}
	leadCount, err := leads.InsertMany(ctx, Leads(time.Now().UTC()))
	if err != nil {
		return productCount, 0, err
	}

	return productCount, leadCount, nil
}

// Products returns the fixed sample catalog.
func Products() []models.Product {
	return []models.Product{
		{
			ID:        "mark-3-white",
			Name:      "He-Ara Mark 3",
			Model:     "mark3",
			Positions: 3,
			Color:     "white",
			Price:     299.00,
			Features:  []string{"Smart Control", "Triple Circuit", "Temperature Adjustment", "App Integration"},
			ImageURL:  "https://images.unsplash.com/photo-1513694203232-719a280e022f",
			InStock:   true,
		},
		{
			ID:        "mark-3-black",
			Name:      "He-Ara Mark 3 Black Edition",
			Model:     "mark3",
			Positions: 3,
			Color:     "black",
			Price:     349.00,
			Features:  []string{"Smart Control", "Triple Circuit", "Temperature Adjustment", "App Integration", "Matte Finish"},
			ImageURL:  "https://images.unsplash.com/photo-1616486338812-3dadae4b4f9d",
			InStock:   true,
		},
	}
}

// Leads returns the fixed sample leads with timestamps relative to now.
func Leads(now time.Time) []models.Lead {
	day := 24 * time.Hour
	return []models.Lead{
		{
			Name:            "Yossi Cohen",
			Phone:           "050-1234567",
			Email:           "yossi@example.com",
			Message:         "Interested in bulk order for a hotel project.",
			Source:          "website",
			ProductInterest: "mark-3-white",
			Status:          models.LeadStatusNew,
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		{
			Name:            "Dana Levi",
			Phone:           "052-9876543",
			Email:           "dana@example.com",
			Message:         "Do you ship to Eilat?",
			Source:          "facebook",
			ProductInterest: "mark-3-black",
			Status:          models.LeadStatusContacted,
			CreatedAt:       now.Add(-2 * day),
			UpdatedAt:       now.Add(-1 * day),
		},
		{
			Name:      "Ronit Avraham",
			Phone:     "054-5555555",
			Email:     "ronit@example.com",
			Source:    "referral",
			Status:    models.LeadStatusConverted,
			CreatedAt: now.Add(-5 * day),
			UpdatedAt: now.Add(-5 * day),
		},
		{
			Name:            "David Biton",
			Phone:           "055-4444444",
			Email:           "david@example.com",
			Message:         "Price is too high for my budget.",
			Source:          "website",
			ProductInterest: "mark-3-white",
			Status:          models.LeadStatusClosed,
			CreatedAt:       now.Add(-10 * day),
			UpdatedAt:       now.Add(-10 * day),
		},
	}
}
