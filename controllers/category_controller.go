package controllers

import (
	"lacarreta/entity"
	"lacarreta/pkg/resp"
	"lacarreta/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CreateCategoryRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ImageURL    *string `json:"image_url"`
}

type CategoryController struct {
	categories *services.CategoryService
	logger     *zap.Logger
}

func NewCategoryController(categories *services.CategoryService, logger *zap.Logger) *CategoryController {
	return &CategoryController{categories: categories, logger: logger}
}

// GET /api/categories
func (ct *CategoryController) List(c *gin.Context) {
	categories, err := ct.categories.List(c.Request.Context())
	if err != nil {
		ct.logger.Error("list categories failed", zap.Error(err))
		resp.Error(c, err)
		return
	}
	resp.OK(c, categories)
}

// POST /api/categories (admin)
func (ct *CategoryController) Create(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request body")
		return
	}

	cat := &entity.Category{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
	if err := ct.categories.Create(c.Request.Context(), cat); err != nil {
		resp.Error(c, err)
		return
	}

	ct.logger.Info("category created", zap.String("id", cat.ID), zap.String("name", cat.Name))
	resp.OK(c, cat)
}
