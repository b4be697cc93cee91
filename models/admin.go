package models

import "time"

type Admin struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"unique;not null" json:"email"`
	Password string `json:"-"`

	ResetToken     string     `json:"-"`
	ResetExpiresAt *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
