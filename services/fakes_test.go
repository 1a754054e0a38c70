package services

import (
	"context"
	"time"

	"lacarreta/entity"

	"github.com/google/uuid"
)

// In-memory stand-ins for the mongo repositories. They mirror the store
// adapter contract: Create assigns the id (and timestamp for orders).

type fakeCategoryRepo struct {
	categories []entity.Category
}

func (f *fakeCategoryRepo) Create(_ context.Context, cat *entity.Category) error {
	cat.ID = uuid.NewString()
	f.categories = append(f.categories, *cat)
	return nil
}

func (f *fakeCategoryRepo) FindAll(context.Context) ([]entity.Category, error) {
	return append([]entity.Category{}, f.categories...), nil
}

func (f *fakeCategoryRepo) ExistsByID(_ context.Context, id string) (bool, error) {
	for _, c := range f.categories {
		if c.ID == id {
			return true, nil
		}
	}
	return false, nil
}

type fakeMenuRepo struct {
	items []entity.MenuItem
}

func (f *fakeMenuRepo) Create(_ context.Context, item *entity.MenuItem) error {
	item.ID = uuid.NewString()
	f.items = append(f.items, *item)
	return nil
}

func (f *fakeMenuRepo) FindAll(context.Context) ([]entity.MenuItem, error) {
	return append([]entity.MenuItem{}, f.items...), nil
}

func (f *fakeMenuRepo) FindByCategory(_ context.Context, categoryID string) ([]entity.MenuItem, error) {
	out := []entity.MenuItem{}
	for _, it := range f.items {
		if it.CategoryID == categoryID {
			out = append(out, it)
		}
	}
	return out, nil
}

type fakeOrderRepo struct {
	orders []entity.Order
}

func (f *fakeOrderRepo) Create(_ context.Context, order *entity.Order) error {
	order.ID = uuid.NewString()
	order.CreatedAt = time.Now().UTC()
	f.orders = append(f.orders, *order)
	return nil
}

func (f *fakeOrderRepo) FindAll(context.Context) ([]entity.Order, error) {
	return append([]entity.Order{}, f.orders...), nil
}

func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }
