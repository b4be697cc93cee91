package models

import "time"

type User struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"not null" json:"name"`
	Email     string     `gorm:"unique;not null" json:"email"`
	Password  string     `json:"-"`
	CartItems []CartItem `gorm:"foreignKey:UserEmail;references:Email;constraint:OnDelete:CASCADE" json:"cartData"`

	// Password-reset OTP, valid for five minutes after /forgotpassword.
	ResetToken     string     `json:"-"`
	ResetExpiresAt *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
