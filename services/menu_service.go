package services

import (
	"context"
	"strings"

	"lacarreta/entity"
	"lacarreta/pkg/apperr"
)

type MenuRepo interface {
	Create(ctx context.Context, item *entity.MenuItem) error
	FindAll(ctx context.Context) ([]entity.MenuItem, error)
	FindByCategory(ctx context.Context, categoryID string) ([]entity.MenuItem, error)
}

type MenuService struct {
	repo       MenuRepo
	categories CategoryRepo
}

func NewMenuService(repo MenuRepo, categories CategoryRepo) *MenuService {
	return &MenuService{repo: repo, categories: categories}
}

func (s *MenuService) List(ctx context.Context) ([]entity.MenuItem, error) {
	return s.repo.FindAll(ctx)
}

func (s *MenuService) ListByCategory(ctx context.Context, categoryID string) ([]entity.MenuItem, error) {
	return s.repo.FindByCategory(ctx, categoryID)
}

// MenuItemInput is the validated create shape. Price and Available are
// pointers so a missing field is distinguishable from a zero value.
type MenuItemInput struct {
	Name        string
	Description string
	Price       *float64
	CategoryID  string
	ImageURL    *string
	Available   *bool
}

// Create checks shape and that the referenced category exists, then persists.
func (s *MenuService) Create(ctx context.Context, in MenuItemInput) (*entity.MenuItem, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)

	if in.Name == "" {
		return nil, apperr.Invalid("name")
	}
	if in.Description == "" {
		return nil, apperr.Invalid("description")
	}
	if in.Price == nil || *in.Price < 0 {
		return nil, apperr.Invalid("price")
	}
	if in.CategoryID == "" {
		return nil, apperr.Invalid("category_id")
	}

	exists, err := s.categories.ExistsByID(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.Invalid("category_id")
	}

	item := &entity.MenuItem{
		Name:        in.Name,
		Description: in.Description,
		Price:       *in.Price,
		CategoryID:  in.CategoryID,
		ImageURL:    in.ImageURL,
		Available:   true,
	}
	if in.Available != nil {
		item.Available = *in.Available
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}
