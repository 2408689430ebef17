package constants

// User roles. The set is closed; authorization never compares free text
// outside of these values.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Roles lists every valid role.
var Roles = []string{RoleUser, RoleAdmin}

// IsValidRole reports whether role belongs to the closed role set.
func IsValidRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Product sizes.
const (
	SizeSmall  = "sm"
	SizeMedium = "md"
	SizeLarge  = "lg"
	SizeXLarge = "xl"
)

// Sizes lists every valid product size.
var Sizes = []string{SizeSmall, SizeMedium, SizeLarge, SizeXLarge}

// IsValidSize reports whether size belongs to the size enum.
func IsValidSize(size string) bool {
	for _, s := range Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// Order status values. Transitions happen only through explicit admin or
// payment-callback action, never implicitly.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// OrderStatuses lists every valid order status.
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// IsValidOrderStatus reports whether status belongs to the order status enum.
func IsValidOrderStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Payment status values.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

// Product list sort keys.
const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortNewest    = "newest"
	SortPopular   = "popular"
)

// Pagination bounds for public listings.
const (
	DefaultPage     = 1
	DefaultPageSize = 12
	MaxPageSize     = 50
)
