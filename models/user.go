package models

import "time"

type Role string

const (
	RoleClient        Role = "CLIENT"
	RoleAdministrator Role = "ADMINISTRATOR"
)

type User struct {
	ID           string `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"unique;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Role         Role   `gorm:"type:VARCHAR(20);default:'CLIENT'" json:"role"`
	// RefreshToken holds the last issued refresh token; a refresh request must
	// present exactly this value.
	RefreshToken string     `json:"-"`
	Cart         Cart       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"cart"`
	Orders       []Order    `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"orders,omitempty"`
	Favorites    []Favorite `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"favorites,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
