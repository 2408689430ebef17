package service

import (
	"strings"

	"github.com/velora-shop/velora/internal/constants"
	"github.com/velora-shop/velora/internal/models"
	"github.com/velora-shop/velora/internal/repository"

	"github.com/shopspring/decimal"
)

// ProductService handles catalog reads and admin catalog writes.
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates the product service.
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// ProductInput is the admin create/update payload.
type ProductInput struct {
	Name        string
	Slug        string // optional, derived from Name when empty
	Description string
	Tags        []string
	Price       models.Money
	Colour      string
	Size        string
	Images      []string
	InStock     *bool
	TotalStock  int
}

func (s *ProductService) validateInput(input ProductInput) error {
	fieldErrs := FieldErrors{}
	name := strings.TrimSpace(input.Name)
	if name == "" || len(name) > productNameMaxLen {
		fieldErrs.Add("name", "name is required and must be at most 100 characters")
	}
	if len(input.Description) > descriptionMaxLen {
		fieldErrs.Add("description", "description must be at most 2000 characters")
	}
	if input.Price.IsNegative() {
		fieldErrs.Add("price", "price must not be negative")
	}
	if input.Size != "" && !constants.IsValidSize(input.Size) {
		fieldErrs.Add("size", "size must be one of sm, md, lg, xl")
	}
	if len(input.Images) == 0 {
		fieldErrs.Add("images", "at least one image is required")
	}
	if input.TotalStock < 0 {
		fieldErrs.Add("totalStock", "totalStock must not be negative")
	}
	return fieldErrs.OrNil()
}

// resolveSlug validates a supplied slug or derives one from the name, and
// checks uniqueness either way.
func (s *ProductService) resolveSlug(input ProductInput, currentID uint) (string, error) {
	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		slug = Slugify(input.Name)
	}
	if slug == "" || !IsValidSlug(slug) {
		return "", FieldErrors{"slug": "slug must contain only lowercase letters, digits and hyphens"}
	}

	existing, err := s.productRepo.GetBySlug(slug)
	if err != nil {
		return "", err
	}
	if existing != nil && existing.ID != currentID {
		return "", ErrSlugExists
	}
	return slug, nil
}

// Create inserts a product. A colliding slug rejects the creation rather
// than mutating it to a unique value.
func (s *ProductService) Create(input ProductInput) (*models.Product, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}
	slug, err := s.resolveSlug(input, 0)
	if err != nil {
		return nil, err
	}

	inStock := input.TotalStock > 0
	if input.InStock != nil {
		inStock = *input.InStock
	}

	product := &models.Product{
		Name:        strings.TrimSpace(input.Name),
		Slug:        slug,
		Description: input.Description,
		Tags:        models.StringArray(input.Tags),
		Price:       input.Price,
		Colour:      strings.TrimSpace(input.Colour),
		Size:        input.Size,
		Images:      models.StringArray(input.Images),
		InStock:     inStock,
		TotalStock:  input.TotalStock,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update replaces the mutable fields of a product.
func (s *ProductService) Update(id uint, input ProductInput) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if err := s.validateInput(input); err != nil {
		return nil, err
	}
	slug, err := s.resolveSlug(input, product.ID)
	if err != nil {
		return nil, err
	}

	product.Name = strings.TrimSpace(input.Name)
	product.Slug = slug
	product.Description = input.Description
	product.Tags = models.StringArray(input.Tags)
	product.Price = input.Price
	product.Colour = strings.TrimSpace(input.Colour)
	product.Size = input.Size
	product.Images = models.StringArray(input.Images)
	product.TotalStock = input.TotalStock
	if input.InStock != nil {
		product.InStock = *input.InStock
	} else {
		product.InStock = input.TotalStock > 0
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes a product from the catalog.
func (s *ProductService) Delete(id uint) error {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	return s.productRepo.Delete(id)
}

// GetByID fetches one product.
func (s *ProductService) GetByID(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// GetBySlug fetches one product by slug.
func (s *ProductService) GetBySlug(slug string) (*models.Product, error) {
	product, err := s.productRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// ListInput is the public listing query.
type ListInput struct {
	Page     int
	PageSize int
	Tag      string
	Search   string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	InStock  *bool
	Sort     string
}

// List queries the catalog. Page/size are normalized to the public
// defaults and the size cap.
func (s *ProductService) List(input ListInput) ([]models.Product, int64, error) {
	page, pageSize := NormalizePagination(input.Page, input.PageSize)
	sort := input.Sort
	switch sort {
	case "", constants.SortNewest, constants.SortPriceAsc, constants.SortPriceDesc, constants.SortPopular:
	default:
		return nil, 0, FieldErrors{"sort": "sort must be one of price_asc, price_desc, newest, popular"}
	}
	return s.productRepo.List(repository.ProductListFilter{
		Page:     page,
		PageSize: pageSize,
		Tag:      strings.TrimSpace(input.Tag),
		Search:   strings.TrimSpace(input.Search),
		MinPrice: input.MinPrice,
		MaxPrice: input.MaxPrice,
		InStock:  input.InStock,
		Sort:     sort,
	})
}

// Categories lists every distinct tag in the catalog.
func (s *ProductService) Categories() ([]string, error) {
	return s.productRepo.DistinctTags()
}

// NormalizePagination clamps page and size to the public bounds.
func NormalizePagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = constants.DefaultPage
	}
	if pageSize <= 0 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}
	return page, pageSize
}
