// Package testutil provides the in-memory database and seed helpers shared
// by the controller tests.
package testutil

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/YuliaVladimirov/Home-and-Garden-Online-Shop/models"
)

// OpenDB returns a migrated in-memory database. A single connection keeps
// the :memory: schema alive for the whole test.
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Favorite{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

// CreateUser seeds a client user together with its cart, the same shape
// registration produces.
func CreateUser(t *testing.T, db *gorm.DB, email, phone string) models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         "Test User",
		Phone:        phone,
		Role:         models.RoleClient,
	}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(&models.Cart{UserID: user.ID}).Error)
	return user
}

// CreateProduct seeds a product; discount may be empty.
func CreateProduct(t *testing.T, db *gorm.DB, name, price, discount string) models.Product {
	t.Helper()

	category := models.Category{Name: "Garden Tools"}
	err := db.FirstOrCreate(&category, models.Category{Name: category.Name}).Error
	require.NoError(t, err)

	product := models.Product{
		Name:       name,
		Price:      decimal.RequireFromString(price),
		CategoryID: category.ID,
	}
	if discount != "" {
		d := decimal.RequireFromString(discount)
		product.DiscountPrice = &d
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

// AddCartItem puts a product into the user's cart directly.
func AddCartItem(t *testing.T, db *gorm.DB, user models.User, product models.Product, quantity int) {
	t.Helper()

	var cart models.Cart
	require.NoError(t, db.First(&cart, "user_id = ?", user.ID).Error)
	require.NoError(t, db.Create(&models.CartItem{
		CartID:    cart.CartID,
		ProductID: product.ID,
		Quantity:  quantity,
	}).Error)
}

// CountCartItems reports how many lines the user's cart holds.
func CountCartItems(t *testing.T, db *gorm.DB, user models.User) int64 {
	t.Helper()

	var cart models.Cart
	require.NoError(t, db.First(&cart, "user_id = ?", user.ID).Error)

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).
		Where("cart_id = ?", cart.CartID).Count(&count).Error)
	return count
}
