package dto

import "time"

// OrderLineItem pairs a product reference with a quantity. The product field
// stays a string on the way in: it is coerced to the storage reference type
// only when the order is constructed.
type OrderLineItem struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

// CreateOrderRequest describes an order submission. None of the fields are
// validated before persistence is attempted.
type CreateOrderRequest struct {
	Products []OrderLineItem `json:"products"`
	Address  string          `json:"address"`
	Price    float64         `json:"price"`
}

// OrderOwner is the expanded user record attached to listed orders.
type OrderOwner struct {
	ID        string    `json:"id"`
	Login     string    `json:"login"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// OrderResponse describes a single order in the admin listing.
type OrderResponse struct {
	ID        string          `json:"id"`
	Owner     OrderOwner      `json:"owner"`
	Products  []OrderLineItem `json:"products"`
	Address   string          `json:"address"`
	Price     float64         `json:"price"`
	Delivered bool            `json:"delivered"`
	CreatedAt time.Time       `json:"created_at"`
}
