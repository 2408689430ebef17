package service

import "errors"

// Sentinel errors returned by services. Handlers map these onto HTTP
// responses; anything else is treated as an internal error.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrCartItemNotFound   = errors.New("cart item not found")
	ErrFavoriteNotFound   = errors.New("favorite not found")
	ErrEmailExists        = errors.New("email already registered")
	ErrPhoneExists        = errors.New("phone already registered")
	ErrSlugExists         = errors.New("product slug already exists")
	ErrFavoriteExists     = errors.New("product already favorited")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrCartEmpty          = errors.New("cart is empty")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrProductUnavailable = errors.New("product is out of stock")
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
	ErrInvalidInput       = errors.New("invalid input")
	ErrPaymentNotPaid     = errors.New("payment not completed")
	ErrGatewayUnavailable = errors.New("payment gateway not configured")
	ErrMediaUnavailable   = errors.New("media service not configured")
)
