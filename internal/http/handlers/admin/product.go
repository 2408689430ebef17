package admin

import (
	"github.com/velora-shop/velora/internal/http/handlers/shared"
	"github.com/velora-shop/velora/internal/http/response"
	"github.com/velora-shop/velora/internal/models"
	"github.com/velora-shop/velora/internal/service"

	"github.com/gin-gonic/gin"
)

type productRequest struct {
	Name        string       `json:"name" form:"name"`
	Slug        string       `json:"slug" form:"slug"`
	Description string       `json:"description" form:"description"`
	Tags        []string     `json:"tags" form:"tags"`
	Price       models.Money `json:"price" form:"-"`
	PriceForm   string       `form:"price" json:"-"`
	Colour      string       `json:"colour" form:"colour"`
	Size        string       `json:"size" form:"size"`
	Images      []string     `json:"images" form:"images"`
	InStock     *bool        `json:"inStock" form:"inStock"`
	TotalStock  int          `json:"totalStock" form:"totalStock"`
}

func (r *productRequest) toInput() (service.ProductInput, error) {
	price := r.Price
	if r.PriceForm != "" {
		parsed, err := models.NewMoneyFromString(r.PriceForm)
		if err != nil {
			return service.ProductInput{}, err
		}
		price = parsed
	}
	return service.ProductInput{
		Name:        r.Name,
		Slug:        r.Slug,
		Description: r.Description,
		Tags:        r.Tags,
		Price:       price,
		Colour:      r.Colour,
		Size:        r.Size,
		Images:      r.Images,
		InStock:     r.InStock,
		TotalStock:  r.TotalStock,
	}, nil
}

// bindProduct accepts JSON or multipart. Multipart "images" files are
// hosted and appended to any image URLs carried in the body.
func (h *Handler) bindProduct(c *gin.Context) (service.ProductInput, bool) {
	var req productRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return service.ProductInput{}, false
	}
	input, err := req.toInput()
	if err != nil {
		response.BadRequest(c, "price must be a number")
		return service.ProductInput{}, false
	}

	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, file := range form.File["images"] {
			url, err := h.UploadService.UploadImage(c.Request.Context(), file)
			if err != nil {
				respondProductAdminError(c, err)
				return service.ProductInput{}, false
			}
			input.Images = append(input.Images, url)
		}
	}
	return input, true
}

// CreateProduct handles POST /admin/products.
func (h *Handler) CreateProduct(c *gin.Context) {
	input, ok := h.bindProduct(c)
	if !ok {
		return
	}
	product, err := h.ProductService.Create(input)
	if err != nil {
		respondProductAdminError(c, err)
		return
	}
	response.Created(c, "product created", product)
}

// UpdateProduct handles PUT /admin/products/:id.
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := shared.ParseUintParam(c, "id")
	if !ok {
		return
	}
	input, ok := h.bindProduct(c)
	if !ok {
		return
	}
	product, err := h.ProductService.Update(id, input)
	if err != nil {
		respondProductAdminError(c, err)
		return
	}
	response.Success(c, "product updated", product)
}

// DeleteProduct handles DELETE /admin/products/:id.
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := shared.ParseUintParam(c, "id")
	if !ok {
		return
	}
	if err := h.ProductService.Delete(id); err != nil {
		respondProductAdminError(c, err)
		return
	}
	response.Success(c, "product deleted", nil)
}
