package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Category    string  `gorm:"index" json:"category"`
	Price       float64 `gorm:"not null" json:"price"`
	// Available variants, comma-joined (e.g. "S,M,L" / "cotton,linen").
	Sizes   string `json:"sizes"`
	Fabrics string `json:"fabrics"`
	Image   string `json:"image"`
	Stock   int    `json:"stock"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
