package models

import (
	"time"

	"gorm.io/gorm"
)

// ShippingAddress is embedded into orders.
type ShippingAddress struct {
	Street  string `gorm:"type:varchar(200)" json:"street"`
	City    string `gorm:"type:varchar(100)" json:"city"`
	State   string `gorm:"type:varchar(100)" json:"state"`
	ZipCode string `gorm:"type:varchar(20)" json:"zipCode"`
	Country string `gorm:"type:varchar(100)" json:"country"`
}

// Order is the order table. Amounts and item prices are snapshots taken at
// checkout time and never change when the catalog does.
type Order struct {
	ID                uint            `gorm:"primarykey" json:"id"`
	OrderNo           string          `gorm:"uniqueIndex;not null" json:"orderNo"`
	UserID            uint            `gorm:"not null;index" json:"userId"`
	TotalAmount       Money           `gorm:"type:decimal(20,2);not null;default:0" json:"totalAmount"`
	ShippingAddress   ShippingAddress `gorm:"embedded;embeddedPrefix:shipping_" json:"shippingAddress"`
	PaymentMethod     string          `gorm:"type:varchar(30);not null" json:"paymentMethod"`
	PaymentStatus     string          `gorm:"type:varchar(20);not null;default:'pending';index" json:"paymentStatus"`
	Status            string          `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CheckoutSessionID string          `gorm:"index" json:"-"` // external payment session ref
	PaidAt            *time.Time      `json:"paidAt"`
	CreatedAt         time.Time       `gorm:"index" json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
	DeletedAt         gorm.DeletedAt  `gorm:"index" json:"-"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}

// TableName sets the table name.
func (Order) TableName() string {
	return "orders"
}
