package productController

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/YuliaVladimirov/Home-and-Garden-Online-Shop/models"
	"github.com/YuliaVladimirov/Home-and-Garden-Online-Shop/testutil"
)

func seedOrder(t *testing.T, db *gorm.DB, user models.User, status models.OrderStatus, createdAt time.Time, product models.Product, quantity int) {
	t.Helper()

	order := models.Order{
		UserID:          &user.ID,
		DeliveryAddress: "12 Garden Lane",
		DeliveryMethod:  models.DeliveryMethodCourier,
		Status:          status,
		CreatedAt:       createdAt,
		UpdatedAt:       createdAt,
	}
	require.NoError(t, db.Create(&order).Error)
	require.NoError(t, db.Create(&models.OrderItem{
		OrderID:         order.ID,
		ProductID:       product.ID,
		Quantity:        quantity,
		PriceAtPurchase: product.PurchasePrice(),
	}).Error)
}

func TestTopProducts(t *testing.T) {
	db := testutil.OpenDB(t)
	user := testutil.CreateUser(t, db, "report@example.com", "")
	shears := testutil.CreateProduct(t, db, "Shears", "10.00", "")
	rake := testutil.CreateProduct(t, db, "Rake", "12.00", "")

	now := time.Now()
	seedOrder(t, db, user, models.OrderStatusPaid, now, shears, 5)
	seedOrder(t, db, user, models.OrderStatusDelivered, now, shears, 2)
	seedOrder(t, db, user, models.OrderStatusOnTheWay, now, rake, 3)
	// Not part of the PAID group:
	seedOrder(t, db, user, models.OrderStatusCreated, now, rake, 50)
	seedOrder(t, db, user, models.OrderStatusCanceled, now, rake, 7)

	rows, err := TopProducts(db, "PAID")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, shears.ID, rows[0].ProductID)
	assert.Equal(t, 7, rows[0].Units)
	assert.True(t, rows[0].Total.Equal(decimal.RequireFromString("70.00")))
	assert.Equal(t, rake.ID, rows[1].ProductID)
	assert.Equal(t, 3, rows[1].Units)

	canceled, err := TopProducts(db, "CANCELED")
	require.NoError(t, err)
	require.Len(t, canceled, 1)
	assert.Equal(t, rake.ID, canceled[0].ProductID)
	assert.Equal(t, 7, canceled[0].Units)

	_, err = TopProducts(db, "SHIPPED")
	assert.Error(t, err)
}

func TestPendingProducts(t *testing.T) {
	db := testutil.OpenDB(t)
	user := testutil.CreateUser(t, db, "pending@example.com", "")
	gnome := testutil.CreateProduct(t, db, "Gnome", "25.00", "")

	now := time.Now()
	seedOrder(t, db, user, models.OrderStatusPendingPayment, now.AddDate(0, 0, -15), gnome, 2)
	seedOrder(t, db, user, models.OrderStatusPendingPayment, now.AddDate(0, 0, -1), gnome, 9)
	seedOrder(t, db, user, models.OrderStatusPaid, now.AddDate(0, 0, -15), gnome, 4)

	rows, err := PendingProducts(db, 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, gnome.ID, rows[0].ProductID)
	assert.Equal(t, 2, rows[0].Units, "only pending orders older than the cutoff count")
}

func TestProfitByPeriod(t *testing.T) {
	db := testutil.OpenDB(t)
	user := testutil.CreateUser(t, db, "profit@example.com", "")
	hose := testutil.CreateProduct(t, db, "Hose", "20.00", "")

	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)
	seedOrder(t, db, user, models.OrderStatusPaid, now, hose, 2)       // 40.00 today
	seedOrder(t, db, user, models.OrderStatusDelivered, now, hose, 1)  // 20.00 today
	seedOrder(t, db, user, models.OrderStatusPaid, yesterday, hose, 3) // 60.00 yesterday
	// Outside the window and outside the status group:
	seedOrder(t, db, user, models.OrderStatusPaid, now.AddDate(0, 0, -30), hose, 10)
	seedOrder(t, db, user, models.OrderStatusCanceled, now, hose, 10)

	rows, err := ProfitByPeriod(db, "DAY", 7)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, yesterday.Format("2006-01-02"), rows[0].Period)
	assert.True(t, rows[0].Total.Equal(decimal.RequireFromString("60.00")), "got %s", rows[0].Total)
	assert.Equal(t, now.Format("2006-01-02"), rows[1].Period)
	assert.True(t, rows[1].Total.Equal(decimal.RequireFromString("60.00")), "got %s", rows[1].Total)

	months, err := ProfitByPeriod(db, "MONTH", 3)
	require.NoError(t, err)
	require.NotEmpty(t, months)

	_, err = ProfitByPeriod(db, "YEAR", 1)
	assert.Error(t, err)
}

func TestPeriodKey(t *testing.T) {
	ts := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-03-04", periodKey(ts, "DAY"))
	assert.Equal(t, "2026-03", periodKey(ts, "MONTH"))
	assert.Equal(t, "2026-W10", periodKey(ts, "WEEK"))
}
