package public

import (
	"strings"

	"github.com/velora-shop/velora/internal/http/handlers/shared"
	"github.com/velora-shop/velora/internal/http/response"
	"github.com/velora-shop/velora/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func parseListInput(c *gin.Context) (service.ListInput, bool) {
	page, limit := shared.ParsePagination(c)
	input := service.ListInput{
		Page:     page,
		PageSize: limit,
		Tag:      c.Query("category"),
		Sort:     c.DefaultQuery("sort", ""),
	}
	if raw := strings.TrimSpace(c.Query("minPrice")); raw != "" {
		value, err := decimal.NewFromString(raw)
		if err != nil {
			response.BadRequest(c, "minPrice must be a number")
			return input, false
		}
		input.MinPrice = &value
	}
	if raw := strings.TrimSpace(c.Query("maxPrice")); raw != "" {
		value, err := decimal.NewFromString(raw)
		if err != nil {
			response.BadRequest(c, "maxPrice must be a number")
			return input, false
		}
		input.MaxPrice = &value
	}
	if raw := strings.TrimSpace(c.Query("inStock")); raw != "" {
		inStock := raw == "true" || raw == "1"
		input.InStock = &inStock
	}
	return input, true
}

// ListProducts handles GET /products.
func (h *Handler) ListProducts(c *gin.Context) {
	input, ok := parseListInput(c)
	if !ok {
		return
	}
	products, total, err := h.ProductService.List(input)
	if err != nil {
		respondProductError(c, err)
		return
	}
	response.SuccessWithPage(c, "products fetched", products,
		response.NewPagination(input.Page, input.PageSize, total))
}

// SearchProducts handles GET /products/search?q=. The query matches
// name, description and tags, case-insensitively.
func (h *Handler) SearchProducts(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		response.BadRequest(c, "search query is required")
		return
	}
	input, ok := parseListInput(c)
	if !ok {
		return
	}
	input.Search = query

	products, total, err := h.ProductService.List(input)
	if err != nil {
		respondProductError(c, err)
		return
	}
	response.SuccessWithPage(c, "search results", products,
		response.NewPagination(input.Page, input.PageSize, total))
}

// ListCategories handles GET /products/categories.
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.ProductService.Categories()
	if err != nil {
		respondProductError(c, err)
		return
	}
	response.Success(c, "categories fetched", categories)
}

// GetProductBySlug handles GET /products/:slug.
func (h *Handler) GetProductBySlug(c *gin.Context) {
	product, err := h.ProductService.GetBySlug(c.Param("slug"))
	if err != nil {
		respondProductError(c, err)
		return
	}
	response.Success(c, "product fetched", product)
}

// GetProductByID handles GET /products/id/:id.
func (h *Handler) GetProductByID(c *gin.Context) {
	id, ok := shared.ParseUintParam(c, "id")
	if !ok {
		return
	}
	product, err := h.ProductService.GetByID(id)
	if err != nil {
		respondProductError(c, err)
		return
	}
	response.Success(c, "product fetched", product)
}
