package models

type Favorite struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	UserID    string `gorm:"index;uniqueIndex:idx_user_product" json:"user_id"`
	ProductID uint   `gorm:"uniqueIndex:idx_user_product" json:"product_id"`
}
