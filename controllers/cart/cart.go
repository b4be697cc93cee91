package cartControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/awais-ur-rehman/Farhat-Rena-backend/middleware"
	"github.com/awais-ur-rehman/Farhat-Rena-backend/models"
	"github.com/awais-ur-rehman/Farhat-Rena-backend/web"
)

// ErrNoAccount means the scoped email has no registered account. An existing
// account with an empty cart is not an error.
var ErrNoAccount = errors.New("no account for email")

type AddItemInput struct {
	ItemID            string  `json:"itemId" binding:"required"`
	SelectedSize      string  `json:"selectedSize"`
	SelectedFabric    string  `json:"selectedFabric"`
	SelectedQuantity  int     `json:"selectedQuantity"`
	SelectedPrice     float64 `json:"selectedPrice"`
	Product           string  `json:"product"`
	FitStyleSelection string  `json:"fitStyleSelection"`
}

type RemoveItemInput struct {
	ItemID         string `json:"itemId" binding:"required"`
	SelectedSize   string `json:"selectedSize"`
	SelectedFabric string `json:"selectedFabric"`
}

// -------- Core Logic --------

func accountExists(db *gorm.DB, email string) error {
	var user models.User
	if err := db.Select("id").Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoAccount
		}
		return err
	}
	return nil
}

func cartItems(db *gorm.DB, email string) ([]models.CartItem, error) {
	items := make([]models.CartItem, 0)
	if err := db.Where("user_email = ?", email).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetCart returns the full cart for an existing account.
func GetCart(db *gorm.DB, email string) ([]models.CartItem, error) {
	if err := accountExists(db, email); err != nil {
		return nil, err
	}
	return cartItems(db, email)
}

// AddItem inserts a line keyed by (email, item, size, fabric). The insert is
// a single ON CONFLICT DO NOTHING statement, so a repeated add leaves the
// cart unchanged and concurrent adds serialize at the database.
func AddItem(db *gorm.DB, email string, input AddItemInput) ([]models.CartItem, error) {
	if err := accountExists(db, email); err != nil {
		return nil, err
	}

	item := models.CartItem{
		UserEmail:   email,
		ItemID:      input.ItemID,
		Size:        input.SelectedSize,
		Fabric:      input.SelectedFabric,
		Quantity:    input.SelectedQuantity,
		Price:       input.SelectedPrice,
		ProductName: input.Product,
		FitStyle:    input.FitStyleSelection,
		AddedAt:     time.Now(),
	}

	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_email"}, {Name: "item_id"}, {Name: "size"}, {Name: "fabric"},
		},
		DoNothing: true,
	}).Create(&item).Error
	if err != nil {
		return nil, err
	}

	return cartItems(db, email)
}

// RemoveItem deletes every line matching the key tuple. Removing a line that
// is not in the cart is a no-op, not an error.
func RemoveItem(db *gorm.DB, email string, input RemoveItemInput) ([]models.CartItem, error) {
	if err := accountExists(db, email); err != nil {
		return nil, err
	}

	err := db.Where(
		"user_email = ? AND item_id = ? AND size = ? AND fabric = ?",
		email, input.ItemID, input.SelectedSize, input.SelectedFabric,
	).Delete(&models.CartItem{}).Error
	if err != nil {
		return nil, err
	}

	return cartItems(db, email)
}

// ClearCart empties the cart; idempotent.
func ClearCart(db *gorm.DB, email string) error {
	if err := accountExists(db, email); err != nil {
		return err
	}
	return db.Where("user_email = ?", email).Delete(&models.CartItem{}).Error
}

// -------- Handlers --------

func respondCartError(c *gin.Context, err error) {
	if errors.Is(err, ErrNoAccount) {
		web.Error(c, web.KindNotFound, "User not found")
		return
	}
	web.Error(c, web.KindUpstreamFailure, "Server error")
}

// GET /api/carts/getcart
func GetCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := middleware.CallerEmail(c)
		if !ok {
			web.Error(c, web.KindUnauthenticated, "Unauthorized")
			return
		}

		items, err := GetCart(db, email)
		if err != nil {
			respondCartError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "cartData": items})
	}
}

// POST /api/carts/addtocart
func AddToCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := middleware.CallerEmail(c)
		if !ok {
			web.Error(c, web.KindUnauthenticated, "Unauthorized")
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			web.Error(c, web.KindInvalidRequest, "Invalid input: "+err.Error())
			return
		}

		items, err := AddItem(db, email, input)
		if err != nil {
			respondCartError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "cartData": items})
	}
}

// POST /api/carts/removefromcart
func RemoveFromCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := middleware.CallerEmail(c)
		if !ok {
			web.Error(c, web.KindUnauthenticated, "Unauthorized")
			return
		}

		var input RemoveItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			web.Error(c, web.KindInvalidRequest, "Invalid input: "+err.Error())
			return
		}

		items, err := RemoveItem(db, email, input)
		if err != nil {
			respondCartError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "cartData": items})
	}
}

// DELETE /api/carts/clearcart
func ClearCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := middleware.CallerEmail(c)
		if !ok {
			web.Error(c, web.KindUnauthenticated, "Unauthorized")
			return
		}

		if err := ClearCart(db, email); err != nil {
			respondCartError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cart cleared"})
	}
}

// GET /api/admin/user-cart/:email
func GetAdminUserCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")
		if email == "" {
			web.Error(c, web.KindInvalidRequest, "email is required")
			return
		}

		items, err := GetCart(db, email)
		if err != nil {
			respondCartError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "cartData": items})
	}
}
