package controllers

import (
	"lacarreta/pkg/resp"
	"lacarreta/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Price and Available are pointers so a missing field can be told apart from
// 0 / false during validation.
type CreateMenuItemRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	CategoryID  string   `json:"category_id"`
	ImageURL    *string  `json:"image_url"`
	Available   *bool    `json:"available"`
}

type MenuController struct {
	menu   *services.MenuService
	logger *zap.Logger
}

func NewMenuController(menu *services.MenuService, logger *zap.Logger) *MenuController {
	return &MenuController{menu: menu, logger: logger}
}

// GET /api/menu
func (m *MenuController) List(c *gin.Context) {
	items, err := m.menu.List(c.Request.Context())
	if err != nil {
		m.logger.Error("list menu failed", zap.Error(err))
		resp.Error(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /api/menu/category/:categoryId
func (m *MenuController) ListByCategory(c *gin.Context) {
	items, err := m.menu.ListByCategory(c.Request.Context(), c.Param("categoryId"))
	if err != nil {
		m.logger.Error("list menu by category failed", zap.Error(err))
		resp.Error(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /api/menu (admin)
func (m *MenuController) Create(c *gin.Context) {
	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request body")
		return
	}

	item, err := m.menu.Create(c.Request.Context(), services.MenuItemInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		ImageURL:    req.ImageURL,
		Available:   req.Available,
	})
	if err != nil {
		resp.Error(c, err)
		return
	}

	m.logger.Info("menu item created", zap.String("id", item.ID), zap.String("category_id", item.CategoryID))
	resp.OK(c, item)
}
