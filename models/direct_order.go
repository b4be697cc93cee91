package models

import "time"

// DirectOrder is the buy-now record. It bypasses the cart entirely, has no
// owning account and no status machine: status is a free-form string that
// defaults to "processing".
type DirectOrder struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProductName string  `gorm:"not null" json:"product"`
	ItemID      string  `json:"itemId"`
	Size        string  `json:"selectedSize"`
	Fabric      string  `json:"selectedFabric"`
	Quantity    int     `json:"selectedQuantity"`
	Price       float64 `json:"selectedPrice"`

	DeliveryName    string `json:"delivery_name"`
	DeliveryPhone   string `json:"delivery_phone"`
	DeliveryAddress string `json:"delivery_address"`
	DeliveryCity    string `json:"delivery_city"`

	PaymentMethod string  `json:"payment_method"`
	PaymentPhone  string  `json:"payment_phone"`
	PaymentAmount float64 `json:"payment_amount"`

	Status    string    `gorm:"default:'processing'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
