package services

import (
	"context"
	"strings"

	"lacarreta/entity"
	"lacarreta/pkg/apperr"
)

type OrderRepo interface {
	Create(ctx context.Context, order *entity.Order) error
	FindAll(ctx context.Context) ([]entity.Order, error)
}

type OrderService struct {
	repo OrderRepo
}

func NewOrderService(repo OrderRepo) *OrderService {
	return &OrderService{repo: repo}
}

// OrderInput is the validated create shape for publicly placed orders.
type OrderInput struct {
	CustomerName        string
	CustomerPhone       string
	CustomerEmail       *string
	Items               []entity.CartItem
	TotalAmount         *float64
	Status              string
	SpecialInstructions *string
}

// Place runs the order intake pipeline: validate, then persist. The total is
// taken as submitted and not recomputed from item prices; an empty item list
// is accepted. Cart lines are not checked against the menu.
func (s *OrderService) Place(ctx context.Context, in OrderInput) (*entity.Order, error) {
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.CustomerPhone = strings.TrimSpace(in.CustomerPhone)

	if in.CustomerName == "" {
		return nil, apperr.Invalid("customer_name")
	}
	if in.CustomerPhone == "" {
		return nil, apperr.Invalid("customer_phone")
	}
	if in.TotalAmount == nil || *in.TotalAmount < 0 {
		return nil, apperr.Invalid("total_amount")
	}

	status := in.Status
	if status == "" {
		status = entity.OrderStatusPending
	}

	items := in.Items
	if items == nil {
		items = []entity.CartItem{}
	}

	order := &entity.Order{
		CustomerName:        in.CustomerName,
		CustomerPhone:       in.CustomerPhone,
		CustomerEmail:       in.CustomerEmail,
		Items:               items,
		TotalAmount:         *in.TotalAmount,
		Status:              status,
		SpecialInstructions: in.SpecialInstructions,
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) List(ctx context.Context) ([]entity.Order, error) {
	return s.repo.FindAll(ctx)
}
