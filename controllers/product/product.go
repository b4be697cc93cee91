package productController

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/awais-ur-rehman/Farhat-Rena-backend/models"
	"github.com/awais-ur-rehman/Farhat-Rena-backend/web"
)

type ProductInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price" binding:"required"`
	Sizes       string  `json:"sizes"`
	Fabrics     string  `json:"fabrics"`
	Image       string  `json:"image"`
	Stock       int     `json:"stock"`
}

// GET /api/products
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		products := make([]models.Product, 0)
		query := db.Order("created_at DESC")
		if category := c.Query("category"); category != "" {
			query = query.Where("category = ?", category)
		}
		if err := query.Find(&products).Error; err != nil {
			web.Error(c, web.KindUpstreamFailure, "Failed to fetch products")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": products})
	}
}

// GET /api/products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			web.Error(c, web.KindInvalidRequest, "Invalid product ID")
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				web.Error(c, web.KindNotFound, "Product not found")
			} else {
				web.Error(c, web.KindUpstreamFailure, "Failed to retrieve product")
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": product})
	}
}

// POST /api/admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			web.Error(c, web.KindInvalidRequest, err.Error())
			return
		}

		product := models.Product{
			Name:        input.Name,
			Description: input.Description,
			Category:    input.Category,
			Price:       input.Price,
			Sizes:       input.Sizes,
			Fabrics:     input.Fabrics,
			Image:       input.Image,
			Stock:       input.Stock,
		}
		if err := db.Create(&product).Error; err != nil {
			web.Error(c, web.KindUpstreamFailure, "Failed to create product")
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "data": product})
	}
}

// PUT /api/admin/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			web.Error(c, web.KindInvalidRequest, "Invalid product ID")
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			web.Error(c, web.KindNotFound, "Product not found")
			return
		}

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			web.Error(c, web.KindInvalidRequest, err.Error())
			return
		}

		updates := models.Product{
			Name:        input.Name,
			Description: input.Description,
			Category:    input.Category,
			Price:       input.Price,
			Sizes:       input.Sizes,
			Fabrics:     input.Fabrics,
			Image:       input.Image,
			Stock:       input.Stock,
		}
		if err := db.Model(&product).Updates(updates).Error; err != nil {
			web.Error(c, web.KindUpstreamFailure, "Failed to update product")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": product})
	}
}

// DELETE /api/admin/products/:id
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			web.Error(c, web.KindInvalidRequest, "Invalid product ID")
			return
		}

		res := db.Delete(&models.Product{}, id)
		if res.Error != nil {
			web.Error(c, web.KindUpstreamFailure, "Failed to delete product")
			return
		}
		if res.RowsAffected == 0 {
			web.Error(c, web.KindNotFound, "Product not found")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deleted"})
	}
}
