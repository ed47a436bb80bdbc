package handler

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/heara/heara-api/internal/models"
)

// fakeLeadStore is an in-memory LeadStore that mirrors the mongo repository
// closely enough for wire-level tests: insertion order listing, inclusive
// date bounds, ErrNoDocuments on misses.
type fakeLeadStore struct {
	mu    sync.Mutex
	leads map[primitive.ObjectID]models.Lead
	order []primitive.ObjectID
}

func newFakeLeadStore() *fakeLeadStore {
	return &fakeLeadStore{leads: make(map[primitive.ObjectID]models.Lead)}
}

func (f *fakeLeadStore) Insert(_ context.Context, lead *models.Lead) (primitive.ObjectID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := primitive.NewObjectID()
	stored := *lead
	stored.ID = id
	f.leads[id] = stored
	f.order = append(f.order, id)
	return id, nil
}

func (f *fakeLeadStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Lead, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	lead, ok := f.leads[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &lead, nil
}

func (f *fakeLeadStore) Find(_ context.Context, filter models.LeadFilter) ([]models.Lead, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	matched := make([]models.Lead, 0)
	for _, id := range f.order {
		lead := f.leads[id]
		if filter.Status != nil && lead.Status != *filter.Status {
			continue
		}
		if filter.StartDate != nil && lead.CreatedAt.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && lead.CreatedAt.After(*filter.EndDate) {
			continue
		}
		matched = append(matched, lead)
	}
	return matched, nil
}

func (f *fakeLeadStore) UpdateByID(_ context.Context, id primitive.ObjectID, update models.LeadUpdate) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	lead, ok := f.leads[id]
	if !ok {
		return 0, nil
	}

	if update.Name != nil {
		lead.Name = *update.Name
	}
	if update.Phone != nil {
		lead.Phone = *update.Phone
	}
	if update.Email != nil {
		lead.Email = *update.Email
	}
	if update.Message != nil {
		lead.Message = *update.Message
	}
	if update.Source != nil {
		lead.Source = *update.Source
	}
	if update.ProductInterest != nil {
		lead.ProductInterest = *update.ProductInterest
	}
	if update.Status != nil {
		lead.Status = *update.Status
	}
	lead.UpdatedAt = update.UpdatedAt
	f.leads[id] = lead
	return 1, nil
}

func (f *fakeLeadStore) Exists(_ context.Context, id primitive.ObjectID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	_, ok := f.leads[id]
	return ok, nil
}

func (f *fakeLeadStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.leads)
}

func (f *fakeLeadStore) seed(leads []models.Lead) {
	for i := range leads {
		lead := leads[i]
		_, _ = f.Insert(context.Background(), &lead)
	}
}

// fakeProductStore is an in-memory ProductStore keyed by the catalog id.
type fakeProductStore struct {
	products []models.Product
}

func (f *fakeProductStore) List(_ context.Context) ([]models.Product, error) {
	return f.products, nil
}

func (f *fakeProductStore) FindByID(_ context.Context, id string) (*models.Product, error) {
	for i := range f.products {
		if f.products[i].ID == id {
			return &f.products[i], nil
		}
	}
	return nil, mongo.ErrNoDocuments
}
