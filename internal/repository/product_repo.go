package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/heara/heara-api/internal/models"
)

// maxProductResults caps a catalog listing; the catalog is small and fixed.
const maxProductResults = 100

// ProductRepository provides data access methods for the products collection.
// Products are keyed by the human-assigned "id" field, not the ObjectID.
type ProductRepository struct {
	coll *mongo.Collection
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{coll: db.Collection("products")}
}

// List returns the catalog in natural order, capped at maxProductResults.
func (r *ProductRepository) List(ctx context.Context) ([]models.Product, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetLimit(maxProductResults))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	products := make([]models.Product, 0)
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// FindByID fetches a product by its catalog id. Returns mongo.ErrNoDocuments
// when absent.
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&product); err != nil {
		return nil, err
	}
	return &product, nil
}

// InsertMany bulk-inserts products. Used by the seeding step only.
func (r *ProductRepository) InsertMany(ctx context.Context, products []models.Product) (int, error) {
	docs := make([]interface{}, len(products))
	for i := range products {
		docs[i] = products[i]
	}
	res, err := r.coll.InsertMany(ctx, docs)
	if err != nil {
		return 0, err
	}
	return len(res.InsertedIDs), nil
}

// DeleteAll clears the collection. Used by the seeding step only.
func (r *ProductRepository) DeleteAll(ctx context.Context) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{})
	return err
}
