package cartControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/YuliaVladimirov/Home-and-Garden-Online-Shop/httperr"
	"github.com/YuliaVladimirov/Home-and-Garden-Online-Shop/models"
)

type CartItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

// -------- Core Logic --------

// AddCartItem puts a product into the user's cart. Duplicate products are
// rejected by the (cart_id, product_id) unique index, so two concurrent adds
// cannot both slip past an existence check. The cart row itself is created on
// the fly if it is abnormally missing.
func AddCartItem(db *gorm.DB, email string, input CartItemInput) (*models.CartItem, error) {
	var item models.CartItem
	err := db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, "email = ?", email).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("user: %w", models.ErrNotFound)
			}
			return err
		}

		var product models.Product
		if err := tx.First(&product, "id = ?", input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("product: %w", models.ErrNotFound)
			}
			return err
		}

		var cart models.Cart
		if err := tx.Where(models.Cart{UserID: user.ID}).FirstOrCreate(&cart).Error; err != nil {
			return err
		}

		item = models.CartItem{
			CartID:    cart.CartID,
			ProductID: product.ID,
			Quantity:  input.Quantity,
			AddedAt:   time.Now(),
		}
		if err := tx.Create(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("this product is already in cart: %w", models.ErrAlreadyExists)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// RemoveCartItem deletes every line referencing the product from the user's
// cart. Zero matched rows is a not-found.
func RemoveCartItem(db *gorm.DB, email string, productID uint) error {
	var user models.User
	if err := db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("user: %w", models.ErrNotFound)
		}
		return err
	}

	var cart models.Cart
	if err := db.First(&cart, "user_id = ?", user.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("cart: %w", models.ErrNotFound)
		}
		return err
	}

	result := db.Where("cart_id = ? AND product_id = ?", cart.CartID, productID).
		Delete(&models.CartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("no such product in cart: %w", models.ErrNotFound)
	}
	return nil
}

// GetCartItems returns the user's current cart lines.
func GetCartItems(db *gorm.DB, email string) ([]models.CartItem, error) {
	var user models.User
	if err := db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user: %w", models.ErrNotFound)
		}
		return nil, err
	}

	var cart models.Cart
	if err := db.Preload("Items").First(&cart, "user_id = ?", user.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cart: %w", models.ErrNotFound)
		}
		return nil, err
	}
	return cart.Items, nil
}

// -------- Handlers --------

// POST /user/cart
func AddCartItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		item, err := AddCartItem(db, c.GetString("email"), input)
		if err != nil {
			httperr.JSON(c, err)
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// DELETE /user/cart/:product_id
func RemoveCartItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
			return
		}

		if err := RemoveCartItem(db, c.GetString("email"), uint(productID)); err != nil {
			httperr.JSON(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// GET /user/cart
func GetCartItemsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := GetCartItems(db, c.GetString("email"))
		if err != nil {
			httperr.JSON(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}
