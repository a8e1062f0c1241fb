package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string
type DeliveryMethod string

const (
	// Order lifecycle: CREATED -> PENDING_PAYMENT -> PAID -> ON_THE_WAY -> DELIVERED,
	// with CANCELED reachable from the first two states only.
	OrderStatusCreated        OrderStatus = "CREATED"
	OrderStatusPendingPayment OrderStatus = "PENDING_PAYMENT"
	OrderStatusPaid           OrderStatus = "PAID"
	OrderStatusOnTheWay       OrderStatus = "ON_THE_WAY"
	OrderStatusDelivered      OrderStatus = "DELIVERED"
	OrderStatusCanceled       OrderStatus = "CANCELED"

	DeliveryMethodCourier DeliveryMethod = "COURIER_DELIVERY"
	DeliveryMethodPickup  DeliveryMethod = "CUSTOMER_PICKUP"
)

type Order struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	UserID          *string        `gorm:"index" json:"user_id"`
	Items           []OrderItem    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	DeliveryAddress string         `gorm:"not null" json:"delivery_address"`
	DeliveryMethod  DeliveryMethod `gorm:"type:VARCHAR(20);not null" json:"delivery_method"`
	// ContactPhone is copied from the user at checkout and never updated afterwards.
	ContactPhone string      `json:"contact_phone"`
	Status       OrderStatus `gorm:"type:VARCHAR(20);default:'CREATED'" json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	OrderID   uint `gorm:"index" json:"order_id"`
	ProductID uint `json:"product_id"`
	Quantity  int  `gorm:"not null" json:"quantity"`
	// PriceAtPurchase is snapshotted once at checkout: the product's discount
	// price if set, its regular price otherwise. Later catalog changes never
	// touch it.
	PriceAtPurchase decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price_at_purchase"`
}

// staffStatusTargets lists the statuses staff may set per current status.
// Any non-terminal order may be moved to any of the four targets, including
// e.g. CREATED straight to DELIVERED. The table keeps that permissiveness
// explicit instead of implied.
var staffStatusTargets = map[OrderStatus][]OrderStatus{
	OrderStatusCreated:        {OrderStatusPendingPayment, OrderStatusPaid, OrderStatusOnTheWay, OrderStatusDelivered},
	OrderStatusPendingPayment: {OrderStatusPendingPayment, OrderStatusPaid, OrderStatusOnTheWay, OrderStatusDelivered},
	OrderStatusPaid:           {OrderStatusPendingPayment, OrderStatusPaid, OrderStatusOnTheWay, OrderStatusDelivered},
	OrderStatusOnTheWay:       {OrderStatusPendingPayment, OrderStatusPaid, OrderStatusOnTheWay, OrderStatusDelivered},
}

// IsTerminal reports whether no further transitions are permitted.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCanceled
}

// CanTransitionTo reports whether staff may move an order from s to target.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, allowed := range staffStatusTargets[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// CancelableByOwner reports whether the owning customer may still self-cancel.
func (s OrderStatus) CancelableByOwner() bool {
	return s == OrderStatusCreated || s == OrderStatusPendingPayment
}

// ParseStaffStatus maps a request string to one of the statuses staff are
// allowed to set. CREATED and CANCELED are not settable through this path.
func ParseStaffStatus(status string) (OrderStatus, bool) {
	switch OrderStatus(status) {
	case OrderStatusPendingPayment, OrderStatusPaid, OrderStatusOnTheWay, OrderStatusDelivered:
		return OrderStatus(status), true
	default:
		return "", false
	}
}

func ParseDeliveryMethod(method string) (DeliveryMethod, bool) {
	switch DeliveryMethod(method) {
	case DeliveryMethodCourier, DeliveryMethodPickup:
		return DeliveryMethod(method), true
	default:
		return "", false
	}
}
