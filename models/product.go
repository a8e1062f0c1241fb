package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	// DiscountPrice, when set, is the authoritative price for checkout snapshots.
	DiscountPrice *decimal.Decimal `gorm:"type:decimal(10,2)" json:"discount_price,omitempty"`
	ImageURL      string           `json:"image_url"`
	CategoryID    uint             `gorm:"not null;index" json:"category_id"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// PurchasePrice is the price recorded on an order line created from this
// product right now.
func (p Product) PurchasePrice() decimal.Decimal {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}
