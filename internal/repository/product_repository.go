package repository

import (
	"errors"
	"strings"

	"github.com/velora-shop/velora/internal/constants"
	"github.com/velora-shop/velora/internal/models"

	"gorm.io/gorm"
)

// ProductRepository is the catalog data access interface.
type ProductRepository interface {
	WithTx(tx *gorm.DB) ProductRepository
	Transaction(fn func(tx *gorm.DB) error) error
	GetByID(id uint) (*models.Product, error)
	GetBySlug(slug string) (*models.Product, error)
	ListByIDs(ids []uint) ([]models.Product, error)
	SlugExists(slug string) (bool, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id uint) error
	List(filter ProductListFilter) ([]models.Product, int64, error)
	DistinctTags() ([]string, error)
	RecordSale(productID uint, quantity int) (int64, error)
}

// GormProductRepository is the GORM implementation.
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a product repository.
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// WithTx returns a repository bound to the given transaction.
func (r *GormProductRepository) WithTx(tx *gorm.DB) ProductRepository {
	if tx == nil {
		return r
	}
	return &GormProductRepository{db: tx}
}

// Transaction runs fn inside a transaction.
func (r *GormProductRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// GetByID fetches a product by primary key.
func (r *GormProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// GetBySlug fetches a product by its slug.
func (r *GormProductRepository) GetBySlug(slug string) (*models.Product, error) {
	var product models.Product
	if err := r.db.Where("slug = ?", slug).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// ListByIDs batch-fetches products.
func (r *GormProductRepository) ListByIDs(ids []uint) ([]models.Product, error) {
	if len(ids) == 0 {
		return []models.Product{}, nil
	}
	var products []models.Product
	if err := r.db.Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// SlugExists reports whether the slug is already taken.
func (r *GormProductRepository) SlugExists(slug string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Product{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts a product.
func (r *GormProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// Update persists a product.
func (r *GormProductRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

// Delete soft-deletes a product.
func (r *GormProductRepository) Delete(id uint) error {
	return r.db.Delete(&models.Product{}, id).Error
}

// List queries the catalog with filters, sort and pagination. The tag
// filter and search match against the JSON-serialized tags column with
// LIKE, which behaves as case-insensitive substring match on both sqlite
// and postgres collations used here.
func (r *GormProductRepository) List(filter ProductListFilter) ([]models.Product, int64, error) {
	query := r.db.Model(&models.Product{})

	if filter.Tag != "" {
		query = query.Where("tags LIKE ?", "%\""+filter.Tag+"\"%")
	}
	if filter.Search != "" {
		like := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(tags) LIKE ?",
			like, like, like,
		)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.InStock != nil {
		query = query.Where("in_stock = ?", *filter.InStock)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var products []models.Product
	if err := query.Order(orderClause(filter.Sort)).Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func orderClause(sort string) string {
	switch sort {
	case constants.SortPriceAsc:
		return "price ASC, id DESC"
	case constants.SortPriceDesc:
		return "price DESC, id DESC"
	case constants.SortPopular:
		return "sold_count DESC, id DESC"
	default: // newest
		return "created_at DESC, id DESC"
	}
}

// DistinctTags collects every tag used across the catalog.
func (r *GormProductRepository) DistinctTags() ([]string, error) {
	var rows []models.StringArray
	if err := r.db.Model(&models.Product{}).Pluck("tags", &rows).Error; err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	tags := []string{}
	for _, row := range rows {
		for _, tag := range row {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	return tags, nil
}

// RecordSale decrements stock and increments sold count for a paid order
// line in one conditional update. Zero rows affected means the remaining
// stock was insufficient.
func (r *GormProductRepository) RecordSale(productID uint, quantity int) (int64, error) {
	if productID == 0 || quantity <= 0 {
		return 0, errors.New("invalid sale params")
	}
	result := r.db.Model(&models.Product{}).
		Where("id = ? AND total_stock >= ?", productID, quantity).
		Updates(map[string]interface{}{
			"total_stock": gorm.Expr("total_stock - ?", quantity),
			"sold_count":  gorm.Expr("sold_count + ?", quantity),
			"in_stock":    gorm.Expr("total_stock - ? > 0", quantity),
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
