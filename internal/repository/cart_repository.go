package repository

import (
	"errors"

	"github.com/velora-shop/velora/internal/models"

	"gorm.io/gorm"
)

// CartRepository is the cart data access interface.
type CartRepository interface {
	GetByUserID(userID uint) (*models.Cart, error)
	GetItem(cartID, itemID uint) (*models.CartItem, error)
	Create(cart *models.Cart) error
	Save(cart *models.Cart) error
	AddItem(item *models.CartItem) error
	UpdateItem(item *models.CartItem) error
	RemoveItem(cartID, itemID uint) (int64, error)
	ClearItems(cartID uint) error
	UpdateTotal(cartID uint, total models.Money) error
	CountItems(cartID uint) (int64, error)
}

// GormCartRepository is the GORM implementation.
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a cart repository.
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// GetByUserID fetches a user's cart with its lines and products preloaded.
func (r *GormCartRepository) GetByUserID(userID uint) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_items.id ASC")
		}).
		Preload("Items.Product").
		Where("user_id = ?", userID).
		First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

// GetItem fetches one cart line scoped by cart.
func (r *GormCartRepository) GetItem(cartID, itemID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.Where("cart_id = ? AND id = ?", cartID, itemID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// Create inserts a cart.
func (r *GormCartRepository) Create(cart *models.Cart) error {
	return r.db.Create(cart).Error
}

// Save persists a cart.
func (r *GormCartRepository) Save(cart *models.Cart) error {
	return r.db.Save(cart).Error
}

// AddItem inserts a cart line.
func (r *GormCartRepository) AddItem(item *models.CartItem) error {
	return r.db.Create(item).Error
}

// UpdateItem persists a cart line.
func (r *GormCartRepository) UpdateItem(item *models.CartItem) error {
	return r.db.Save(item).Error
}

// RemoveItem deletes one cart line scoped by cart.
func (r *GormCartRepository) RemoveItem(cartID, itemID uint) (int64, error) {
	result := r.db.Where("cart_id = ? AND id = ?", cartID, itemID).Delete(&models.CartItem{})
	return result.RowsAffected, result.Error
}

// ClearItems deletes every line of the cart.
func (r *GormCartRepository) ClearItems(cartID uint) error {
	return r.db.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error
}

// UpdateTotal writes the recomputed cart total.
func (r *GormCartRepository) UpdateTotal(cartID uint, total models.Money) error {
	return r.db.Model(&models.Cart{}).Where("id = ?", cartID).Update("total_amount", total).Error
}

// CountItems sums the quantities of every line in the cart.
func (r *GormCartRepository) CountItems(cartID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.CartItem{}).
		Where("cart_id = ?", cartID).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&count).Error
	return count, err
}
