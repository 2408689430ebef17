// Package admin holds the admin-only API handlers. Every route here sits
// behind JWT auth plus the RBAC check.
package admin

import "github.com/velora-shop/velora/internal/provider"

// Handler serves the admin routes.
type Handler struct {
	*provider.Container
}

// New creates the admin handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
