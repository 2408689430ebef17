package models

import (
	"time"
)

// OrderItem is one order line with its price snapshot.
type OrderItem struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	OrderID    uint      `gorm:"not null;index" json:"-"`
	ProductID  uint      `gorm:"not null;index" json:"productId"`
	Name       string    `gorm:"type:varchar(100);not null" json:"name"` // product name snapshot
	Image      string    `gorm:"type:varchar(500)" json:"image"`
	Colour     string    `gorm:"type:varchar(50)" json:"colour"`
	Size       string    `gorm:"type:varchar(10)" json:"size"`
	Quantity   int       `gorm:"not null;default:1" json:"quantity"`
	UnitPrice  Money     `gorm:"type:decimal(20,2);not null;default:0" json:"unitPrice"`
	TotalPrice Money     `gorm:"type:decimal(20,2);not null;default:0" json:"totalPrice"`
	CreatedAt  time.Time `json:"createdAt"`
}

// TableName sets the table name.
func (OrderItem) TableName() string {
	return "order_items"
}
