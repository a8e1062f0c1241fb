package favoriteControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/YuliaVladimirov/Home-and-Garden-Online-Shop/httperr"
	"github.com/YuliaVladimirov/Home-and-Garden-Online-Shop/models"
)

type FavoriteInput struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// AddFavorite marks a product as the user's favorite. Duplicates are rejected
// by the (user_id, product_id) unique index.
func AddFavorite(db *gorm.DB, email string, productID uint) (*models.Favorite, error) {
	var user models.User
	if err := db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user: %w", models.ErrNotFound)
		}
		return nil, err
	}

	var product models.Product
	if err := db.First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product: %w", models.ErrNotFound)
		}
		return nil, err
	}

	favorite := models.Favorite{UserID: user.ID, ProductID: product.ID}
	if err := db.Create(&favorite).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("this product is already in favorites: %w", models.ErrAlreadyExists)
		}
		return nil, err
	}
	return &favorite, nil
}

func RemoveFavorite(db *gorm.DB, email string, productID uint) error {
	var user models.User
	if err := db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("user: %w", models.ErrNotFound)
		}
		return err
	}

	result := db.Where("user_id = ? AND product_id = ?", user.ID, productID).
		Delete(&models.Favorite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("product not found in favorites: %w", models.ErrNotFound)
	}
	return nil
}

func GetFavorites(db *gorm.DB, email string) ([]models.Favorite, error) {
	var user models.User
	if err := db.Preload("Favorites").First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user: %w", models.ErrNotFound)
		}
		return nil, err
	}
	return user.Favorites, nil
}

// -------- Handlers --------

// POST /user/favorites
func AddFavoriteHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input FavoriteInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		favorite, err := AddFavorite(db, c.GetString("email"), input.ProductID)
		if err != nil {
			httperr.JSON(c, err)
			return
		}
		c.JSON(http.StatusCreated, favorite)
	}
}

// DELETE /user/favorites/:product_id
func RemoveFavoriteHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
			return
		}

		if err := RemoveFavorite(db, c.GetString("email"), uint(productID)); err != nil {
			httperr.JSON(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Favorite deleted"})
	}
}

// GET /user/favorites
func GetFavoritesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		favorites, err := GetFavorites(db, c.GetString("email"))
		if err != nil {
			httperr.JSON(c, err)
			return
		}
		c.JSON(http.StatusOK, favorites)
	}
}
