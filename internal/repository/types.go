package repository

import "github.com/shopspring/decimal"

// ProductListFilter filters the public catalog listing.
type ProductListFilter struct {
	Page     int
	PageSize int
	Tag      string
	Search   string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	InStock  *bool
	Sort     string
}

// OrderListFilter filters the order listing.
type OrderListFilter struct {
	Page     int
	PageSize int
	UserID   uint
	Status   string
}

// FavoriteListFilter filters a user's favorites listing.
type FavoriteListFilter struct {
	Page     int
	PageSize int
	UserID   uint
}
