package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LeadStatus is the processing state of an inbound lead.
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusConverted LeadStatus = "converted"
	LeadStatusClosed    LeadStatus = "closed"
)

// IsValid reports whether s is one of the four known statuses.
func (s LeadStatus) IsValid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusConverted, LeadStatusClosed:
		return true
	}
	return false
}

// Lead represents one inbound sales inquiry submitted from the marketing site.
// The ObjectID marshals to JSON as its 24-hex string form.
type Lead struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name            string             `bson:"name" json:"name"`
	Phone           string             `bson:"phone" json:"phone"`
	Email           string             `bson:"email" json:"email"`
	Message         string             `bson:"message,omitempty" json:"message,omitempty"`
	Source          string             `bson:"source" json:"source"`
	ProductInterest string             `bson:"productInterest,omitempty" json:"productInterest,omitempty"`
	Status          LeadStatus         `bson:"status" json:"status"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// LeadFilter narrows a lead listing. Nil fields do not constrain the result.
// Date bounds are inclusive on createdAt.
type LeadFilter struct {
	Status    *LeadStatus
	StartDate *time.Time
	EndDate   *time.Time
}

// LeadUpdate carries the fields of a partial update. Nil fields are left
// untouched in the stored document.
type LeadUpdate struct {
	Name            *string
	Phone           *string
	Email           *string
	Message         *string
	Source          *string
	ProductInterest *string
	Status          *LeadStatus
	UpdatedAt       time.Time
}

// IsEmpty reports whether the update carries no fields at all.
func (u LeadUpdate) IsEmpty() bool {
	return u.Name == nil && u.Phone == nil && u.Email == nil &&
		u.Message == nil && u.Source == nil && u.ProductInterest == nil &&
		u.Status == nil
}
