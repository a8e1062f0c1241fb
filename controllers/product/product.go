package productController

import (
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/YuliaVladimirov/Home-and-Garden-Online-Shop/httperr"
	"github.com/YuliaVladimirov/Home-and-Garden-Online-Shop/models"
)

type ProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	ImageURL    string          `json:"image_url"`
	Category    string          `json:"category" binding:"required"`
}

type DiscountRequest struct {
	// A null discount price clears the discount.
	DiscountPrice *decimal.Decimal `json:"discount_price"`
}

// POST /admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Price.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price must not be negative"})
			return
		}

		var category models.Category
		if err := db.First(&category, "name = ?", req.Category).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				httperr.JSON(c, fmt.Errorf("category: %w", models.ErrNotFound))
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}

		product := models.Product{
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
			ImageURL:    req.ImageURL,
			CategoryID:  category.ID,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

// PUT /admin/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseProductID(c)
		if !ok {
			return
		}

		var req ProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var category models.Category
		if err := db.First(&category, "name = ?", req.Category).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				httperr.JSON(c, fmt.Errorf("category: %w", models.ErrNotFound))
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				httperr.JSON(c, fmt.Errorf("product: %w", models.ErrNotFound))
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}

		updates := map[string]interface{}{
			"name":        req.Name,
			"description": req.Description,
			"price":       req.Price,
			"image_url":   req.ImageURL,
			"category_id": category.ID,
		}
		if err := db.Model(&product).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// PUT /admin/products/:id/discount
func SetDiscountPrice(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseProductID(c)
		if !ok {
			return
		}

		var req DiscountRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.DiscountPrice != nil && req.DiscountPrice.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "discount price must not be negative"})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				httperr.JSON(c, fmt.Errorf("product: %w", models.ErrNotFound))
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}

		if err := db.Model(&product).Update("discount_price", req.DiscountPrice).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update discount price"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// DELETE /admin/products/:id
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseProductID(c)
		if !ok {
			return
		}

		result := db.Delete(&models.Product{}, "id = ?", id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		if result.RowsAffected == 0 {
			httperr.JSON(c, fmt.Errorf("product: %w", models.ErrNotFound))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}

// GET /user/products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseProductID(c)
		if !ok {
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				httperr.JSON(c, fmt.Errorf("product: %w", models.ErrNotFound))
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// GetProducts filters the catalog. Query params: category (id), min_price,
// max_price, has_discount, sort ("name,asc", "price,desc", ...).
// GET /user/products
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Product{})

		if category := c.Query("category"); category != "" {
			id, err := strconv.ParseUint(category, 10, 32)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category ID"})
				return
			}
			query = query.Where("category_id = ?", id)
		}
		if minPrice := c.Query("min_price"); minPrice != "" {
			price, err := decimal.NewFromString(minPrice)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid min_price"})
				return
			}
			query = query.Where("price >= ?", price)
		}
		if maxPrice := c.Query("max_price"); maxPrice != "" {
			price, err := decimal.NewFromString(maxPrice)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid max_price"})
				return
			}
			query = query.Where("price <= ?", price)
		}
		if c.Query("has_discount") == "true" {
			query = query.Where("discount_price IS NOT NULL")
		}

		orderBy, err := sortClause(c.Query("sort"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var products []models.Product
		if err := query.Order(orderBy).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GetMaxDiscountProduct returns the product with the highest price to
// discount-price ratio; ties are broken randomly.
// GET /user/products/max-discount
func GetMaxDiscountProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Where("discount_price IS NOT NULL").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		if len(products) == 0 {
			httperr.JSON(c, fmt.Errorf("product: %w", models.ErrNotFound))
			return
		}

		best := []models.Product{products[0]}
		bestRatio := discountRatio(products[0])
		for _, p := range products[1:] {
			ratio := discountRatio(p)
			switch {
			case ratio.GreaterThan(bestRatio):
				best = []models.Product{p}
				bestRatio = ratio
			case ratio.Equal(bestRatio):
				best = append(best, p)
			}
		}
		c.JSON(http.StatusOK, best[rand.Intn(len(best))])
	}
}

func discountRatio(p models.Product) decimal.Decimal {
	if p.DiscountPrice == nil || p.DiscountPrice.IsZero() {
		return decimal.Zero
	}
	return p.Price.Div(*p.DiscountPrice)
}

// sortClause whitelists sortable columns; "field,dir" per the query API.
func sortClause(sort string) (string, error) {
	if sort == "" {
		return "name ASC", nil
	}
	parts := strings.SplitN(sort, ",", 2)
	field := parts[0]
	if field != "name" && field != "price" {
		return "", fmt.Errorf("unsupported sort field %q", field)
	}
	direction := "ASC"
	if len(parts) == 2 {
		switch parts[1] {
		case "asc":
		case "desc":
			direction = "DESC"
		default:
			return "", fmt.Errorf("unsupported sort direction %q", parts[1])
		}
	}
	return field + " " + direction, nil
}

func parseProductID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
		return 0, false
	}
	return uint(id), true
}
