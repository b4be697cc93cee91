package models

import "time"

// CartItem is one line of a user's cart. A line is identified by the
// (user_email, item_id, size, fabric) tuple; the unique index makes a
// repeated add a no-op rather than a duplicate row. Quantity is plain data
// inside the line, changing it means removing and re-adding the line.
type CartItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserEmail   string    `gorm:"uniqueIndex:idx_cart_line;not null" json:"-"`
	ItemID      string    `gorm:"uniqueIndex:idx_cart_line;not null" json:"itemId"`
	Size        string    `gorm:"uniqueIndex:idx_cart_line" json:"selectedSize"`
	Fabric      string    `gorm:"uniqueIndex:idx_cart_line" json:"selectedFabric"`
	Quantity    int       `json:"selectedQuantity"`
	Price       float64   `json:"selectedPrice"`
	ProductName string    `json:"product"`
	FitStyle    string    `json:"fitStyleSelection"`
	AddedAt     time.Time `json:"added_at"`
}
