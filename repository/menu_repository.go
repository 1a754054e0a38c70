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

type MenuRepository struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func NewMenuRepository(db *mongo.Database, timeout time.Duration) *MenuRepository {
	return &MenuRepository{coll: db.Collection("menu_items"), timeout: timeout}
}

func (r *MenuRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	item.ID = uuid.NewString()
	if _, err := r.coll.InsertOne(ctx, item); err != nil {
		return apperr.Store(err)
	}
	return nil
}

func (r *MenuRepository) FindAll(ctx context.Context) ([]entity.MenuItem, error) {
	return r.find(ctx, bson.M{})
}

// FindByCategory filters on exact category id equality. An unknown category
// yields an empty slice, not an error.
func (r *MenuRepository) FindByCategory(ctx context.Context, categoryID string) ([]entity.MenuItem, error) {
	return r.find(ctx, bson.M{"category_id": categoryID})
}

func (r *MenuRepository) find(ctx context.Context, filter bson.M) ([]entity.MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, apperr.Store(err)
	}

	items := []entity.MenuItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, apperr.Store(err)
	}
	return items, nil
}
