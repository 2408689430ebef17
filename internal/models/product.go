package models

import (
	"time"

	"gorm.io/gorm"
)

// Product is the catalog table. Slug is unique and derived from the name
// when not supplied explicitly.
type Product struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Name        string         `gorm:"type:varchar(100);not null" json:"name"`
	Slug        string         `gorm:"uniqueIndex;not null" json:"slug"`
	Description string         `gorm:"type:varchar(2000);not null" json:"description"`
	Tags        StringArray    `gorm:"type:json" json:"tags"`
	Price       Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`
	Colour      string         `gorm:"type:varchar(50)" json:"colour"`
	Size        string         `gorm:"type:varchar(10)" json:"size"` // sm/md/lg/xl
	Images      StringArray    `gorm:"type:json;not null" json:"images"`
	InStock     bool           `gorm:"default:true;index" json:"inStock"`
	TotalStock  int            `gorm:"not null;default:0" json:"totalStock"`
	SoldCount   int            `gorm:"not null;default:0;index" json:"soldCount"`
	CreatedAt   time.Time      `gorm:"index" json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (Product) TableName() string {
	return "products"
}
