package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/heara/heara-api/internal/models"
	"github.com/heara/heara-api/internal/utils"
)

// ProductStore is the storage surface the product service needs. Satisfied
// by repository.ProductRepository; substituted in tests.
type ProductStore interface {
	List(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id string) (*models.Product, error)
}

// ProductService serves the read-only catalog. The catalog itself is owned
// by the seeding step.
type ProductService struct {
	products ProductStore
}

// NewProductService constructs a ProductService.
func NewProductService(products ProductStore) *ProductService {
	return &ProductService{products: products}
}

// List returns the catalog verbatim.
func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	return s.products.List(ctx)
}

// GetByID fetches one catalog item by its human-assigned id.
func (s *ProductService) GetByID(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}
