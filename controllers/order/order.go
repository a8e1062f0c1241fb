package orderControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/YuliaVladimirov/Home-and-Garden-Online-Shop/httperr"
	"github.com/YuliaVladimirov/Home-and-Garden-Online-Shop/models"
)

// -------- Request Structs --------

type OrderItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1,max=1000"`
}

type PlaceOrderRequest struct {
	DeliveryAddress string             `json:"delivery_address" binding:"required,min=1,max=255"`
	DeliveryMethod  string             `json:"delivery_method" binding:"required"`
	Items           []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// -------- Core Logic --------

// PlaceOrder converts the requested items into a persisted order with price
// snapshots and drains the user's cart. Order shell, order items and the cart
// drain are one transaction: a missing product rolls the whole checkout back.
func PlaceOrder(db *gorm.DB, email string, req PlaceOrderRequest) (*models.Order, error) {
	method, ok := models.ParseDeliveryMethod(req.DeliveryMethod)
	if !ok {
		return nil, fmt.Errorf("invalid delivery method %q", req.DeliveryMethod)
	}

	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, "email = ?", email).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("user: %w", models.ErrNotFound)
			}
			return err
		}

		now := time.Now()
		order = models.Order{
			UserID:          &user.ID,
			DeliveryAddress: req.DeliveryAddress,
			DeliveryMethod:  method,
			ContactPhone:    user.Phone,
			Status:          models.OrderStatusCreated,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, line := range req.Items {
			var product models.Product
			if err := tx.First(&product, "id = ?", line.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("product %d: %w", line.ProductID, models.ErrNotFound)
				}
				return err
			}

			item := models.OrderItem{
				OrderID:         order.ID,
				ProductID:       product.ID,
				Quantity:        line.Quantity,
				PriceAtPurchase: product.PurchasePrice(),
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
			order.Items = append(order.Items, item)
		}

		// Every user gets a cart at registration, so a missing row here is a
		// data integrity fault.
		var cart models.Cart
		if err := tx.First(&cart, "user_id = ?", user.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("cart: %w", models.ErrNotFound)
			}
			return err
		}

		// Checkout clears the whole cart, not just the ordered products.
		return tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ChangeOrderStatus is the staff transition: any non-terminal order may be
// moved to any of the staff target statuses. The row is locked so a
// concurrent owner cancel cannot race past the terminal-state guard.
func ChangeOrderStatus(db *gorm.DB, orderID uint, newStatus models.OrderStatus) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := lockForUpdate(tx).
			First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("order: %w", models.ErrNotFound)
			}
			return err
		}

		if !order.Status.CanTransitionTo(newStatus) {
			return fmt.Errorf("order is already delivered or canceled: %w", models.ErrOrderStatus)
		}

		return tx.Model(&order).Update("status", newStatus).Error
	})
}

// CancelOrder is the owner-driven cancellation. The order is searched within
// the caller's own order set, so an order belonging to another user is
// indistinguishable from a missing one.
func CancelOrder(db *gorm.DB, orderID uint, email string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, "email = ?", email).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("user: %w", models.ErrNotFound)
			}
			return err
		}

		var order models.Order
		if err := lockForUpdate(tx).
			Where("id = ? AND user_id = ?", orderID, user.ID).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("order not found or doesn't belong to user: %w", models.ErrNotFound)
			}
			return err
		}

		if !order.Status.CancelableByOwner() {
			return fmt.Errorf("order is already paid and can not be canceled: %w", models.ErrOrderStatus)
		}

		return tx.Model(&order).Update("status", models.OrderStatusCanceled).Error
	})
}

// GetOrderByID returns one of the caller's orders with its items expanded.
// Same anti-leakage rule as CancelOrder.
func GetOrderByID(db *gorm.DB, orderID uint, email string) (*models.Order, error) {
	var user models.User
	if err := db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user: %w", models.ErrNotFound)
		}
		return nil, err
	}

	var order models.Order
	if err := db.Preload("Items").
		Where("id = ? AND user_id = ?", orderID, user.ID).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order not found or doesn't belong to user: %w", models.ErrNotFound)
		}
		return nil, err
	}
	return &order, nil
}

// GetOrderHistory returns all of the caller's orders, newest first. A user
// with no orders yet gets a not-found, matching the rest of the API.
func GetOrderHistory(db *gorm.DB, email string) ([]models.Order, error) {
	var user models.User
	if err := db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user: %w", models.ErrNotFound)
		}
		return nil, err
	}

	var orders []models.Order
	if err := db.Preload("Items").
		Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, fmt.Errorf("no orders were placed yet: %w", models.ErrNotFound)
	}
	return orders, nil
}

// -------- Handlers --------

func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("email")

		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if _, ok := models.ParseDeliveryMethod(req.DeliveryMethod); !ok {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "delivery method must be COURIER_DELIVERY or CUSTOMER_PICKUP",
			})
			return
		}

		order, err := PlaceOrder(db, email, req)
		if err != nil {
			httperr.JSON(c, err)
			return
		}

		broadcastOrderUpdate(*order)
		c.JSON(http.StatusCreated, order)
	}
}

func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, ok := parseOrderID(c)
		if !ok {
			return
		}

		order, err := GetOrderByID(db, orderID, c.GetString("email"))
		if err != nil {
			httperr.JSON(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func GetOrderHistoryHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := GetOrderHistory(db, c.GetString("email"))
		if err != nil {
			httperr.JSON(c, err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

func ChangeOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, ok := parseOrderID(c)
		if !ok {
			return
		}

		var req ChangeStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, ok := models.ParseStaffStatus(req.Status)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "status must be one of: PENDING_PAYMENT, PAID, ON_THE_WAY, DELIVERED",
			})
			return
		}

		if err := ChangeOrderStatus(db, orderID, newStatus); err != nil {
			httperr.JSON(c, err)
			return
		}

		var order models.Order
		if err := db.Preload("Items").First(&order, "id = ?", orderID).Error; err == nil {
			broadcastOrderUpdate(order)
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
	}
}

func CancelOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, ok := parseOrderID(c)
		if !ok {
			return
		}

		if err := CancelOrder(db, orderID, c.GetString("email")); err != nil {
			httperr.JSON(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order canceled successfully"})
	}
}

// GetAllOrdersHandler lists every order for staff, newest first.
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// lockForUpdate takes a row lock where the dialect supports it. SQLite has
// no SELECT ... FOR UPDATE; its single-writer transaction covers the same
// re-check-inside-transaction guarantee.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

func parseOrderID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("orderID"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order ID"})
		return 0, false
	}
	return uint(id), true
}
