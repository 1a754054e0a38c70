package repository

import (
	"context"
	"time"

	"lacarreta/entity"
	"lacarreta/pkg/apperr"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type CategoryRepository struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func NewCategoryRepository(db *mongo.Database, timeout time.Duration) *CategoryRepository {
	return &CategoryRepository{coll: db.Collection("categories"), timeout: timeout}
}

// Create assigns a fresh id and inserts. The caller's id, if any, is
// discarded: identifiers are always server-generated.
func (r *CategoryRepository) Create(ctx context.Context, cat *entity.Category) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cat.ID = uuid.NewString()
	if _, err := r.coll.InsertOne(ctx, cat); err != nil {
		return apperr.Store(err)
	}
	return nil
}

// FindAll returns every category in insertion order.
func (r *CategoryRepository) FindAll(ctx context.Context) ([]entity.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, apperr.Store(err)
	}

	categories := []entity.Category{}
	if err := cur.All(ctx, &categories); err != nil {
		return nil, apperr.Store(err)
	}
	return categories, nil
}

// ExistsByID backs the referential check on MenuItem.category_id.
func (r *CategoryRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, apperr.Store(err)
	}
	return count > 0, nil
}
