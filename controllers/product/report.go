package productController

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/YuliaVladimirov/Home-and-Garden-Online-Shop/models"
)

// paidStatuses is the status group counted as realized sales.
var paidStatuses = []models.OrderStatus{
	models.OrderStatusPaid,
	models.OrderStatusOnTheWay,
	models.OrderStatusDelivered,
}

type ProductCount struct {
	ProductID uint            `json:"product_id"`
	Name      string          `json:"name"`
	Units     int             `json:"units"`
	Total     decimal.Decimal `json:"total"`
}

type ProductPending struct {
	ProductID uint   `json:"product_id"`
	Name      string `json:"name"`
	Units     int    `json:"units"`
}

type PeriodProfit struct {
	Period string          `json:"period"`
	Total  decimal.Decimal `json:"total"`
}

// TopProducts returns the ten best-selling (or most-canceled) products by
// summed quantity. statusGroup is "PAID" (counts PAID, ON_THE_WAY and
// DELIVERED orders) or "CANCELED".
func TopProducts(db *gorm.DB, statusGroup string) ([]ProductCount, error) {
	var statuses []models.OrderStatus
	switch statusGroup {
	case "PAID":
		statuses = paidStatuses
	case "CANCELED":
		statuses = []models.OrderStatus{models.OrderStatusCanceled}
	default:
		return nil, fmt.Errorf("status group must be PAID or CANCELED, got %q", statusGroup)
	}

	var rows []ProductCount
	err := db.Table("order_items").
		Select("order_items.product_id AS product_id, products.name AS name, "+
			"SUM(order_items.quantity) AS units, "+
			"SUM(order_items.quantity * order_items.price_at_purchase) AS total").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("orders.status IN ?", statuses).
		Group("order_items.product_id, products.name").
		Order("units DESC").
		Limit(10).
		Scan(&rows).Error
	return rows, err
}

// PendingProducts returns products sitting on PENDING_PAYMENT orders older
// than the given number of days.
func PendingProducts(db *gorm.DB, days int) ([]ProductPending, error) {
	cutoff := time.Now().AddDate(0, 0, -days)

	var rows []ProductPending
	err := db.Table("order_items").
		Select("order_items.product_id AS product_id, products.name AS name, "+
			"SUM(order_items.quantity) AS units").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("orders.status = ?", models.OrderStatusPendingPayment).
		Where("orders.created_at < ?", cutoff).
		Group("order_items.product_id, products.name").
		Order("product_id").
		Scan(&rows).Error
	return rows, err
}

// ProfitByPeriod sums quantity * price-at-purchase of paid orders over the
// last value periods, bucketed by DAY, WEEK or MONTH. Bucketing happens in Go
// so the query stays dialect-independent.
func ProfitByPeriod(db *gorm.DB, period string, value int) ([]PeriodProfit, error) {
	var start time.Time
	now := time.Now()
	switch period {
	case "DAY":
		start = now.AddDate(0, 0, -value)
	case "WEEK":
		start = now.AddDate(0, 0, -7*value)
	case "MONTH":
		start = now.AddDate(0, -value, 0)
	default:
		return nil, fmt.Errorf("period must be DAY, WEEK or MONTH, got %q", period)
	}

	var rows []struct {
		CreatedAt time.Time
		Amount    decimal.Decimal
	}
	err := db.Table("order_items").
		Select("orders.created_at AS created_at, "+
			"order_items.quantity * order_items.price_at_purchase AS amount").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.status IN ?", paidStatuses).
		Where("orders.created_at >= ?", start).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	buckets := make(map[string]decimal.Decimal)
	for _, row := range rows {
		key := periodKey(row.CreatedAt, period)
		buckets[key] = buckets[key].Add(row.Amount)
	}

	result := make([]PeriodProfit, 0, len(buckets))
	for key, total := range buckets {
		result = append(result, PeriodProfit{Period: key, Total: total})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Period < result[j].Period })
	return result, nil
}

func periodKey(t time.Time, period string) string {
	switch period {
	case "MONTH":
		return t.Format("2006-01")
	case "WEEK":
		year, week := t.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	default:
		return t.Format("2006-01-02")
	}
}

// -------- Handlers --------

// GET /admin/reports/top-products?status=PAID|CANCELED
func TopProductsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := TopProducts(db, c.DefaultQuery("status", "PAID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

// GET /admin/reports/pending?days=N
func PendingProductsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		days, err := strconv.Atoi(c.DefaultQuery("days", "10"))
		if err != nil || days < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a positive integer"})
			return
		}

		rows, err := PendingProducts(db, days)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

// GET /admin/reports/profit?period=DAY|WEEK|MONTH&value=N
func ProfitHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, err := strconv.Atoi(c.DefaultQuery("value", "1"))
		if err != nil || value < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "value must be a positive integer"})
			return
		}

		rows, err := ProfitByPeriod(db, c.DefaultQuery("period", "DAY"), value)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}
