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

type OrderRepository struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func NewOrderRepository(db *mongo.Database, timeout time.Duration) *OrderRepository {
	return &OrderRepository{coll: db.Collection("orders"), timeout: timeout}
}

// Create stamps id and creation time server-side. Whatever the client sent
// for either field has already been stripped at the controller boundary.
func (r *OrderRepository) Create(ctx context.Context, order *entity.Order) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	order.ID = uuid.NewString()
	order.CreatedAt = time.Now().UTC()
	if _, err := r.coll.InsertOne(ctx, order); err != nil {
		return apperr.Store(err)
	}
	return nil
}

func (r *OrderRepository) FindAll(ctx context.Context) ([]entity.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, apperr.Store(err)
	}

	orders := []entity.Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, apperr.Store(err)
	}
	return orders, nil
}
