package entity

import "time"

// CartItem is a line inside an Order. It is never persisted on its own and
// references a MenuItem by id only.
type CartItem struct {
	MenuItemID          string  `bson:"menu_item_id" json:"menu_item_id"`
	Quantity            int     `bson:"quantity" json:"quantity"`
	SpecialInstructions *string `bson:"special_instructions" json:"special_instructions"`
}

// Order is placed publicly and read only by the admin. ID and CreatedAt are
// assigned by the store adapter at insert time; client-supplied values for
// either are ignored.
type Order struct {
	ID                  string     `bson:"_id" json:"id"`
	CustomerName        string     `bson:"customer_name" json:"customer_name"`
	CustomerPhone       string     `bson:"customer_phone" json:"customer_phone"`
	CustomerEmail       *string    `bson:"customer_email" json:"customer_email"`
	Items               []CartItem `bson:"items" json:"items"`
	TotalAmount         float64    `bson:"total_amount" json:"total_amount"`
	Status              string     `bson:"status" json:"status"`
	CreatedAt           time.Time  `bson:"created_at" json:"created_at"`
	SpecialInstructions *string    `bson:"special_instructions" json:"special_instructions"`
}

const OrderStatusPending = "pending"
