package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/heara/heara-api/internal/models"
)

// maxLeadResults caps a single listing query.
const maxLeadResults = 1000

// LeadRepository provides data access methods for the leads collection.
type LeadRepository struct {
	coll *mongo.Collection
}

// NewLeadRepository creates a new LeadRepository.
func NewLeadRepository(db *mongo.Database) *LeadRepository {
	return &LeadRepository{coll: db.Collection("leads")}
}

// Insert stores a new lead and returns its assigned ObjectID.
func (r *LeadRepository) Insert(ctx context.Context, lead *models.Lead) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, lead)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

// FindByID fetches a single lead. Returns mongo.ErrNoDocuments when absent.
func (r *LeadRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Lead, error) {
	var lead models.Lead
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&lead); err != nil {
		return nil, err
	}
	return &lead, nil
}

// Find lists leads matching the filter in natural (insertion) order,
// capped at maxLeadResults.
func (r *LeadRepository) Find(ctx context.Context, filter models.LeadFilter) ([]models.Lead, error) {
	cur, err := r.coll.Find(ctx, buildLeadFilter(filter), options.Find().SetLimit(maxLeadResults))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	leads := make([]models.Lead, 0)
	if err := cur.All(ctx, &leads); err != nil {
		return nil, err
	}
	return leads, nil
}

// UpdateByID applies the non-nil fields of update plus its UpdatedAt in a
// single atomic $set. Returns the number of documents actually modified.
func (r *LeadRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, update models.LeadUpdate) (int64, error) {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": buildLeadUpdate(update)})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// Exists reports whether a lead with the given id is stored.
func (r *LeadRepository) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// InsertMany bulk-inserts leads. Used by the seeding step only.
func (r *LeadRepository) InsertMany(ctx context.Context, leads []models.Lead) (int, error) {
	docs := make([]interface{}, len(leads))
	for i := range leads {
		docs[i] = leads[i]
	}
	res, err := r.coll.InsertMany(ctx, docs)
	if err != nil {
		return 0, err
	}
	return len(res.InsertedIDs), nil
}

// DeleteAll clears the collection. Used by the seeding step only.
func (r *LeadRepository) DeleteAll(ctx context.Context) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{})
	return err
}

// buildLeadFilter translates a LeadFilter into a conjunctive query document:
// an equality match on status and/or an inclusive range on createdAt.
func buildLeadFilter(f models.LeadFilter) bson.M {
	query := bson.M{}
	if f.Status != nil {
		query["status"] = *f.Status
	}
	if f.StartDate != nil || f.EndDate != nil {
		created := bson.M{}
		if f.StartDate != nil {
			created["$gte"] = *f.StartDate
		}
		if f.EndDate != nil {
			created["$lte"] = *f.EndDate
		}
		query["createdAt"] = created
	}
	return query
}

// buildLeadUpdate translates a LeadUpdate into the $set payload. Only fields
// the caller supplied are written; UpdatedAt is always written since the
// service only issues a write for non-empty updates.
func buildLeadUpdate(u models.LeadUpdate) bson.M {
	set := bson.M{"updatedAt": u.UpdatedAt}
	if u.Name != nil {
		set["name"] = *u.Name
	}
	if u.Phone != nil {
		set["phone"] = *u.Phone
	}
	if u.Email != nil {
		set["email"] = *u.Email
	}
	if u.Message != nil {
		set["message"] = *u.Message
	}
	if u.Source != nil {
		set["source"] = *u.Source
	}
	if u.ProductInterest != nil {
		set["productInterest"] = *u.ProductInterest
	}
	if u.Status != nil {
		set["status"] = *u.Status
	}
	return set
}
