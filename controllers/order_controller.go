package controllers

import (
	"lacarreta/entity"
	"lacarreta/pkg/resp"
	"lacarreta/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreateOrderRequest carries no id or created_at field; both are always
// server-assigned, whatever the client sends.
type CreateOrderRequest struct {
	CustomerName        string            `json:"customer_name"`
	CustomerPhone       string            `json:"customer_phone"`
	CustomerEmail       *string           `json:"customer_email"`
	Items               []entity.CartItem `json:"items"`
	TotalAmount         *float64          `json:"total_amount"`
	Status              string            `json:"status"`
	SpecialInstructions *string           `json:"special_instructions"`
}

type OrderController struct {
	orders *services.OrderService
	logger *zap.Logger
}

func NewOrderController(orders *services.OrderService, logger *zap.Logger) *OrderController {
	return &OrderController{orders: orders, logger: logger}
}

// POST /api/orders (public)
func (o *OrderController) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request body")
		return
	}

	order, err := o.orders.Place(c.Request.Context(), services.OrderInput{
		CustomerName:        req.CustomerName,
		CustomerPhone:       req.CustomerPhone,
		CustomerEmail:       req.CustomerEmail,
		Items:               req.Items,
		TotalAmount:         req.TotalAmount,
		Status:              req.Status,
		SpecialInstructions: req.SpecialInstructions,
	})
	if err != nil {
		resp.Error(c, err)
		return
	}

	o.logger.Info("order placed",
		zap.String("id", order.ID),
		zap.Int("items", len(order.Items)),
		zap.Float64("total", order.TotalAmount))
	resp.OK(c, order)
}

// GET /api/orders (admin)
func (o *OrderController) List(c *gin.Context) {
	orders, err := o.orders.List(c.Request.Context())
	if err != nil {
		o.logger.Error("list orders failed", zap.Error(err))
		resp.Error(c, err)
		return
	}
	resp.OK(c, orders)
}
