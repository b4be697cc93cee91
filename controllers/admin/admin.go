package adminController

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/awais-ur-rehman/Farhat-Rena-backend/auth"
	"github.com/awais-ur-rehman/Farhat-Rena-backend/models"
	"github.com/awais-ur-rehman/Farhat-Rena-backend/web"
)

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AddAdminInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type EmailInput struct {
	Email string `json:"email" binding:"required"`
}

type VerifyOTPInput struct {
	Email string `json:"email" binding:"required"`
	OTP   string `json:"otp" binding:"required"`
}

type PasswordInput struct {
	Password string `json:"password" binding:"required"`
}

// POST /api/admin/adminlogin
func AdminLogin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			web.Error(c, web.KindInvalidRequest, err.Error())
			return
		}

		var admin models.Admin
		if err := db.Where("email = ?", input.Email).First(&admin).Error; err != nil {
			web.Error(c, web.KindUnauthenticated, "Invalid email or password")
			return
		}
		if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(input.Password)) != nil {
			web.Error(c, web.KindUnauthenticated, "Invalid email or password")
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Login successful", "name": admin.Name})
	}
}

// POST /api/admin/addadmin
func AddAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddAdminInput
		if err := c.ShouldBindJSON(&input); err != nil {
			web.Error(c, web.KindInvalidRequest, "All fields are required")
			return
		}

		var existing models.Admin
		if err := db.Where("email = ?", input.Email).First(&existing).Error; err == nil {
			web.Error(c, web.KindConflict, "Admin already exists")
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			web.Error(c, web.KindUpstreamFailure, "Error adding admin")
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			web.Error(c, web.KindUpstreamFailure, "Error adding admin")
			return
		}

		admin := models.Admin{Name: input.Name, Email: input.Email, Password: string(hashed)}
		if err := db.Create(&admin).Error; err != nil {
			web.Error(c, web.KindUpstreamFailure, "Error adding admin")
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Admin added successfully!"})
	}
}

// POST /api/admin/forgotpassword
func ForgotPassword(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input EmailInput
		if err := c.ShouldBindJSON(&input); err != nil {
			web.Error(c, web.KindInvalidRequest, "Email is required")
			return
		}

		var admin models.Admin
		if err := db.Where("email = ?", input.Email).First(&admin).Error; err != nil {
			web.Error(c, web.KindNotFound, "Email not found")
			return
		}

		otp, err := auth.GenerateOTP()
		if err != nil {
			web.Error(c, web.KindUpstreamFailure, "Server error")
			return
		}
		expires := time.Now().Add(auth.OTPTTL)
		if err := db.Model(&admin).Updates(map[string]interface{}{
			"reset_token":      otp,
			"reset_expires_at": expires,
		}).Error; err != nil {
			web.Error(c, web.KindUpstreamFailure, "Server error")
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "otp": otp})
	}
}

// POST /api/admin/verifyotp
func VerifyOTP(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input VerifyOTPInput
		if err := c.ShouldBindJSON(&input); err != nil {
			web.Error(c, web.KindInvalidRequest, err.Error())
			return
		}

		var admin models.Admin
		err := db.Where("email = ? AND reset_token = ? AND reset_expires_at > ?",
			input.Email, input.OTP, time.Now()).First(&admin).Error
		if err != nil {
			web.Error(c, web.KindInvalidRequest, "OTP is invalid or expired")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "OTP verified successfully"})
	}
}

// PUT /api/admin/resetpassword/:email
func ResetPassword(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")
		var input PasswordInput
		if err := c.ShouldBindJSON(&input); err != nil {
			web.Error(c, web.KindInvalidRequest, err.Error())
			return
		}

		var admin models.Admin
		err := db.Where("email = ? AND reset_token <> '' AND reset_expires_at > ?",
			email, time.Now()).First(&admin).Error
		if err != nil {
			web.Error(c, web.KindInvalidRequest, "Invalid request")
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			web.Error(c, web.KindUpstreamFailure, "Server error")
			return
		}

		if err := db.Model(&admin).Updates(map[string]interface{}{
			"password":         string(hashed),
			"reset_token":      "",
			"reset_expires_at": nil,
		}).Error; err != nil {
			web.Error(c, web.KindUpstreamFailure, "Server error")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password updated successfully"})
	}
}
