package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/heara/heara-api/internal/models"
	"github.com/heara/heara-api/internal/utils"
)

// LeadStore is the storage surface the lead service needs. Satisfied by
// repository.LeadRepository; substituted in tests.
type LeadStore interface {
	Insert(ctx context.Context, lead *models.Lead) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Lead, error)
	Find(ctx context.Context, filter models.LeadFilter) ([]models.Lead, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, update models.LeadUpdate) (int64, error)
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// LeadService handles lead business logic.
type LeadService struct {
	leads LeadStore
}

// NewLeadService constructs a LeadService.
func NewLeadService(leads LeadStore) *LeadService {
	return &LeadService{leads: leads}
}

// CreateLeadRequest represents an inbound lead submission. The server is
// authoritative over id, createdAt and updatedAt; any caller-supplied values
// for those are ignored.
type CreateLeadRequest struct {
	Name            string            `json:"name" binding:"required,min=2"`
	Phone           string            `json:"phone" binding:"required,min=9"`
	Email           string            `json:"email" binding:"required,email"`
	Message         string            `json:"message"`
	Source          string            `json:"source"`
	ProductInterest string            `json:"productInterest"`
	Status          models.LeadStatus `json:"status" binding:"omitempty,oneof=new contacted converted closed"`
}

// UpdateLeadRequest represents a partial update. Absent fields stay nil and
// are never written, so unsupplied fields keep their stored values.
type UpdateLeadRequest struct {
	Name            *string            `json:"name"`
	Phone           *string            `json:"phone"`
	Email           *string            `json:"email" binding:"omitempty,email"`
	Message         *string            `json:"message"`
	Source          *string            `json:"source"`
	ProductInterest *string            `json:"productInterest"`
	Status          *models.LeadStatus `json:"status" binding:"omitempty,oneof=new contacted converted closed"`
}

func (r *UpdateLeadRequest) toUpdate(now time.Time) models.LeadUpdate {
	return models.LeadUpdate{
		Name:            r.Name,
		Phone:           r.Phone,
		Email:           r.Email,
		Message:         r.Message,
		Source:          r.Source,
		ProductInterest: r.ProductInterest,
		Status:          r.Status,
		UpdatedAt:       now,
	}
}

// Create persists a new lead. Status defaults to "new" and source to
// "website" when absent; createdAt and updatedAt are both set to the current
// time. The returned record is re-read from storage so the response reflects
// exactly what was stored.
func (s *LeadService) Create(ctx context.Context, req *CreateLeadRequest) (*models.Lead, error) {
	now := nowUTC()

	lead := &models.Lead{
		Name:            req.Name,
		Phone:           req.Phone,
		Email:           req.Email,
		Message:         req.Message,
		Source:          req.Source,
		ProductInterest: req.ProductInterest,
		Status:          req.Status,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if lead.Source == "" {
		lead.Source = "website"
	}
	if lead.Status == "" {
		lead.Status = models.LeadStatusNew
	}

	id, err := s.leads.Insert(ctx, lead)
	if err != nil {
		return nil, err
	}
	return s.leads.FindByID(ctx, id)
}

// List returns leads matching the filter, up to the repository's cap.
func (s *LeadService) List(ctx context.Context, filter models.LeadFilter) ([]models.Lead, error) {
	return s.leads.Find(ctx, filter)
}

// GetByID fetches one lead. Returns ErrInvalidLeadID for a malformed id and
// ErrLeadNotFound when no record matches.
func (s *LeadService) GetByID(ctx context.Context, id string) (*models.Lead, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.ErrInvalidLeadID
	}

	lead, err := s.leads.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.ErrLeadNotFound
		}
		return nil, err
	}
	return lead, nil
}

// Update applies a partial update. An empty partial performs no write at all
// (updatedAt stays untouched); otherwise the supplied fields and a fresh
// updatedAt are written in a single atomic $set. A zero-modified update is
// only an error when the id does not exist.
func (s *LeadService) Update(ctx context.Context, id string, req *UpdateLeadRequest) (*models.Lead, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.ErrInvalidLeadID
	}

	update := req.toUpdate(nowUTC())
	if !update.IsEmpty() {
		modified, err := s.leads.UpdateByID(ctx, oid, update)
		if err != nil {
			return nil, err
		}
		if modified == 0 {
			// Writing identical values also modifies nothing; only a
			// missing document is an error.
			exists, err := s.leads.Exists(ctx, oid)
			if err != nil {
				return nil, err
			}
			if !exists {
				return nil, utils.ErrLeadNotFound
			}
		}
	}

	lead, err := s.leads.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.ErrLeadNotFound
		}
		return nil, err
	}
	return lead, nil
}

// nowUTC returns the current time truncated to the millisecond resolution of
// BSON datetimes, so a stored document round-trips equal.
func nowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
