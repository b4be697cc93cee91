package models

import (
	"errors"
	"strings"
	"time"
)

type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "processing" // placed, not yet dispatched
	OrderStatusShipped    OrderStatus = "shipped"    // out for delivery
	OrderStatusDelivered  OrderStatus = "delivered"  // customer received the order
)

// validNext is the forward-only transition table. Same-state writes are
// handled separately as no-ops.
var validNext = map[OrderStatus]map[OrderStatus]bool{
	OrderStatusProcessing: {OrderStatusShipped: true},
	OrderStatusShipped:    {OrderStatusDelivered: true},
	OrderStatusDelivered:  {},
}

func CanTransition(from, to OrderStatus) bool {
	if from == to {
		return true
	}
	return validNext[from][to]
}

var ErrInvalidOrderStatus = errors.New("invalid order status")

// ParseOrderStatus maps a request string to an OrderStatus.
func ParseOrderStatus(status string) (OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(OrderStatusProcessing):
		return OrderStatusProcessing, nil
	case string(OrderStatusShipped):
		return OrderStatusShipped, nil
	case string(OrderStatusDelivered):
		return OrderStatusDelivered, nil
	default:
		return "", ErrInvalidOrderStatus
	}
}

// Order is an immutable checkout snapshot. Ownership is the account email
// captured at placement time, independent of later account changes; only the
// status and payment fields are ever updated afterwards.
type Order struct {
	ID       uint        `gorm:"primaryKey" json:"id"`
	OrderRef string      `gorm:"uniqueIndex" json:"order_ref"`
	Items    []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"cartData"`

	DeliveryName    string `json:"delivery_name"`
	DeliveryPhone   string `json:"delivery_phone"`
	DeliveryAddress string `json:"delivery_address"`
	DeliveryCity    string `json:"delivery_city"`

	PaymentMethod string  `gorm:"not null" json:"payment_method"`
	PaymentPhone  string  `json:"payment_phone"`
	PaymentAmount float64 `json:"payment_amount"`

	Status  OrderStatus `gorm:"type:VARCHAR(20);default:'processing'" json:"status"`
	Payment bool        `gorm:"default:false" json:"payment"`

	AccountName  string `gorm:"not null" json:"account_name"`
	AccountEmail string `gorm:"index;not null" json:"account_email"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// OrderItem is a copied cart line; it has no reference back to the live cart.
type OrderItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	OrderID     uint    `gorm:"index" json:"-"`
	ItemID      string  `json:"itemId"`
	Size        string  `json:"selectedSize"`
	Fabric      string  `json:"selectedFabric"`
	Quantity    int     `json:"selectedQuantity"`
	Price       float64 `json:"selectedPrice"`
	ProductName string  `json:"product"`
	FitStyle    string  `json:"fitStyleSelection"`
}
