package services

import (
	"context"
	"errors"
	"testing"

	"lacarreta/entity"
	"lacarreta/pkg/apperr"
)

func TestOrderPlaceValidation(t *testing.T) {
	tests := []struct {
		name      string
		in        OrderInput
		wantField string
	}{
		{"missing customer name", OrderInput{CustomerPhone: "1", TotalAmount: floatPtr(10)}, "customer_name"},
		{"missing customer phone", OrderInput{CustomerName: "Ana", TotalAmount: floatPtr(10)}, "customer_phone"},
		{"missing total", OrderInput{CustomerName: "Ana", CustomerPhone: "1"}, "total_amount"},
		{"negative total", OrderInput{CustomerName: "Ana", CustomerPhone: "1", TotalAmount: floatPtr(-5)}, "total_amount"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewOrderService(&fakeOrderRepo{})
			_, err := svc.Place(context.Background(), tt.in)

			var fe *apperr.FieldError
			if !errors.As(err, &fe) {
				t.Fatalf("Place error = %v, want FieldError", err)
			}
			if fe.Field != tt.wantField {
				t.Errorf("field = %q, want %q", fe.Field, tt.wantField)
			}
		})
	}
}

func TestOrderPlaceAcceptsEmptyItems(t *testing.T) {
	svc := NewOrderService(&fakeOrderRepo{})

	order, err := svc.Place(context.Background(), OrderInput{
		CustomerName:  "Ana",
		CustomerPhone: "555-0100",
		Items:         []entity.CartItem{},
		TotalAmount:   floatPtr(0),
	})
	if err != nil {
		t.Fatalf("Place: %v", err)
	}
	if order.ID == "" {
		t.Error("placed order has empty id")
	}
	if order.CreatedAt.IsZero() {
		t.Error("placed order has zero timestamp")
	}
	if order.Status != entity.OrderStatusPending {
		t.Errorf("status = %q, want %q", order.Status, entity.OrderStatusPending)
	}

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || got[0].ID != order.ID {
		t.Errorf("List = %+v, want the placed order", got)
	}
}

func TestOrderPlaceKeepsClientStatusAndItems(t *testing.T) {
	svc := NewOrderService(&fakeOrderRepo{})

	note := "sin ají"
	order, err := svc.Place(context.Background(), OrderInput{
		CustomerName:  "Luis",
		CustomerPhone: "555-0101",
		Items: []entity.CartItem{
			{MenuItemID: "item-1", Quantity: 2, SpecialInstructions: &note},
			{MenuItemID: "item-1", Quantity: 1},
		},
		TotalAmount: floatPtr(36),
		Status:      "confirmed",
	})
	if err != nil {
		t.Fatalf("Place: %v", err)
	}
	if order.Status != "confirmed" {
		t.Errorf("status = %q, want confirmed", order.Status)
	}
	// line order is preserved and a menu item may repeat
	if len(order.Items) != 2 || order.Items[0].Quantity != 2 || order.Items[1].Quantity != 1 {
		t.Errorf("items = %+v, want the submitted sequence", order.Items)
	}
	if order.TotalAmount != 36 {
		t.Errorf("total = %v, want 36 (taken as submitted)", order.TotalAmount)
	}
}
