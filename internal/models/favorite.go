package models

import (
	"time"
)

// Favorite marks a product as favorited by a user. The (user, product)
// pair is unique.
type Favorite struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_favorites_user_product" json:"userId"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_favorites_user_product" json:"productId"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`

	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName sets the table name.
func (Favorite) TableName() string {
	return "favorites"
}
