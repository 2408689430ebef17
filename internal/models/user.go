package models

import (
	"time"

	"gorm.io/gorm"
)

// User is the account table, covering both shoppers and admins. The role
// column only ever holds values from constants.Roles.
type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	Username     string         `gorm:"not null" json:"username"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"` // never serialized
	Phone        string         `gorm:"uniqueIndex;not null" json:"phone"`
	ProfileImage string         `gorm:"type:varchar(500)" json:"profileImage"`
	Role         string         `gorm:"type:varchar(20);not null;default:'user';index" json:"role"`
	CreatedAt    time.Time      `gorm:"index" json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (User) TableName() string {
	return "users"
}
