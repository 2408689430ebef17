// Package public holds the shopper-facing API handlers.
package public

import "github.com/velora-shop/velora/internal/provider"

// Handler serves the public and authenticated shopper routes.
type Handler struct {
	*provider.Container
}

// New creates the public handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
