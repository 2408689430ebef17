package models

import (
	"time"
)

// Cart is the per-user cart, one row per user. TotalAmount is recomputed
// from live product prices on every mutation, never stored incrementally.
type Cart struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	UserID      uint       `gorm:"uniqueIndex;not null" json:"userId"`
	TotalAmount Money      `gorm:"type:decimal(20,2);not null;default:0" json:"totalAmount"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	Items       []CartItem `gorm:"foreignKey:CartID" json:"items"`
}

// TableName sets the table name.
func (Cart) TableName() string {
	return "carts"
}

// CartItem is one cart line. Lines are identified by the
// (product, colour, size) variant: adding the same variant again merges
// into the existing line.
type CartItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CartID    uint      `gorm:"not null;index" json:"-"`
	ProductID uint      `gorm:"not null;index" json:"productId"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
	Colour    string    `gorm:"type:varchar(50)" json:"colour"`
	Size      string    `gorm:"type:varchar(10)" json:"size"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName sets the table name.
func (CartItem) TableName() string {
	return "cart_items"
}

// SameVariant reports whether the line matches the given variant key.
func (i CartItem) SameVariant(productID uint, colour, size string) bool {
	return i.ProductID == productID && i.Colour == colour && i.Size == size
}
