package services

import (
	"context"
	"strings"

	"lacarreta/entity"
	"lacarreta/pkg/apperr"
)

// CategoryRepo is the slice of the store adapter the category service needs.
type CategoryRepo interface {
	Create(ctx context.Context, cat *entity.Category) error
	FindAll(ctx context.Context) ([]entity.Category, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
}

type CategoryService struct {
	repo CategoryRepo
}

func NewCategoryService(repo CategoryRepo) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) List(ctx context.Context) ([]entity.Category, error) {
	return s.repo.FindAll(ctx)
}

// Create validates shape then persists. Name and description are required;
// the image reference is optional.
func (s *CategoryService) Create(ctx context.Context, cat *entity.Category) error {
	cat.Name = strings.TrimSpace(cat.Name)
	cat.Description = strings.TrimSpace(cat.Description)

	if cat.Name == "" {
		return apperr.Invalid("name")
	}
	if cat.Description == "" {
		return apperr.Invalid("description")
	}

	return s.repo.Create(ctx, cat)
}
