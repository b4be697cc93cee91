package userControllers

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

type RegisterInput struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
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

type RemoveUserInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/users/register
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			web.Error(c, web.KindInvalidRequest, "All fields are required")
			return
		}

		var existing models.User
		if err := db.Where("email = ?", input.Email).First(&existing).Error; err == nil {
			web.Error(c, web.KindConflict, "Email already registered")
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			web.Error(c, web.KindUpstreamFailure, "Server error")
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			web.Error(c, web.KindUpstreamFailure, "Server error")
			return
		}

		user := models.User{
			Name:     input.Username,
			Email:    input.Email,
			Password: string(hashed),
		}
		if err := db.Create(&user).Error; err != nil {
			web.Error(c, web.KindUpstreamFailure, "Server error")
			return
		}

		c.JSON(http.StatusCreated, gin.H{"success": true, "message": "User registered successfully"})
	}
}

// POST /api/users/login
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			web.Error(c, web.KindInvalidRequest, err.Error())
			return
		}

		var user models.User
		if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
			web.Error(c, web.KindUnauthenticated, "Invalid credentials")
			return
		}
		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)) != nil {
			web.Error(c, web.KindUnauthenticated, "Invalid credentials")
			return
		}

		token, err := auth.IssueToken(user.ID, user.Email)
		if err != nil {
			web.Error(c, web.KindUpstreamFailure, "Token generation failed")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
	}
}

// POST /api/users/getuser
func GetUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input EmailInput
		if err := c.ShouldBindJSON(&input); err != nil {
			web.Error(c, web.KindInvalidRequest, err.Error())
			return
		}

		var user models.User
		if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
			web.Error(c, web.KindNotFound, "User not found")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "name": user.Name})
	}
}

// GET /api/users/allusers
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.
			Select("id", "email", "name", "created_at").
			Order("created_at desc").
			Find(&users).Error; err != nil {
			web.Error(c, web.KindUpstreamFailure, "Failed to fetch users")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "users": users})
	}
}

// POST /api/users/removeuser
func RemoveUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RemoveUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			web.Error(c, web.KindInvalidRequest, "Email and password are required")
			return
		}

		var user models.User
		if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
			web.Error(c, web.KindInvalidRequest, "Incorrect password")
			return
		}
		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)) != nil {
			web.Error(c, web.KindInvalidRequest, "Incorrect password")
			return
		}

		// Removing the account also removes its cart lines.
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("user_email = ?", user.Email).Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
			return tx.Delete(&user).Error
		})
		if err != nil {
			web.Error(c, web.KindUpstreamFailure, "Server error")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "User removed successfully!"})
	}
}

// POST /api/users/forgotpassword
func ForgotPassword(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input EmailInput
		if err := c.ShouldBindJSON(&input); err != nil {
			web.Error(c, web.KindInvalidRequest, err.Error())
			return
		}

		var user models.User
		if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
			web.Error(c, web.KindNotFound, "Email not found")
			return
		}

		otp, err := auth.GenerateOTP()
		if err != nil {
			web.Error(c, web.KindUpstreamFailure, "Server error")
			return
		}
		expires := time.Now().Add(auth.OTPTTL)
		if err := db.Model(&user).Updates(map[string]interface{}{
			"reset_token":      otp,
			"reset_expires_at": expires,
		}).Error; err != nil {
			web.Error(c, web.KindUpstreamFailure, "Server error")
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "otp": otp})
	}
}

// POST /api/users/verifyotp
func VerifyOTP(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input VerifyOTPInput
		if err := c.ShouldBindJSON(&input); err != nil {
			web.Error(c, web.KindInvalidRequest, err.Error())
			return
		}

		var user models.User
		err := db.Where("email = ? AND reset_token = ? AND reset_expires_at > ?",
			input.Email, input.OTP, time.Now()).First(&user).Error
		if err != nil {
			web.Error(c, web.KindInvalidRequest, "OTP is invalid or expired")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "OTP verified successfully"})
	}
}

// PUT /api/users/resetpassword/:email
func ResetPassword(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")
		var input PasswordInput
		if err := c.ShouldBindJSON(&input); err != nil {
			web.Error(c, web.KindInvalidRequest, err.Error())
			return
		}

		var user models.User
		err := db.Where("email = ? AND reset_token <> '' AND reset_expires_at > ?",
			email, time.Now()).First(&user).Error
		if err != nil {
			web.Error(c, web.KindInvalidRequest, "Invalid request")
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			web.Error(c, web.KindUpstreamFailure, "Server error")
			return
		}

		if err := db.Model(&user).Updates(map[string]interface{}{
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
