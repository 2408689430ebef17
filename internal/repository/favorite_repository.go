package repository

import (
	"errors"

	"github.com/velora-shop/velora/internal/models"

	"gorm.io/gorm"
)

// FavoriteRepository is the favorites data access interface.
type FavoriteRepository interface {
	Get(userID, productID uint) (*models.Favorite, error)
	Create(favorite *models.Favorite) error
	Delete(userID, productID uint) (int64, error)
	List(filter FavoriteListFilter) ([]models.Favorite, int64, error)
}

// GormFavoriteRepository is the GORM implementation.
type GormFavoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository creates a favorites repository.
func NewFavoriteRepository(db *gorm.DB) *GormFavoriteRepository {
	return &GormFavoriteRepository{db: db}
}

// Get fetches one (user, product) favorite pair.
func (r *GormFavoriteRepository) Get(userID, productID uint) (*models.Favorite, error) {
	var favorite models.Favorite
	err := r.db.Where("user_id = ? AND product_id = ?", userID, productID).First(&favorite).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &favorite, nil
}

// Create inserts a favorite.
func (r *GormFavoriteRepository) Create(favorite *models.Favorite) error {
	return r.db.Create(favorite).Error
}

// Delete removes a favorite pair, reporting affected rows.
func (r *GormFavoriteRepository) Delete(userID, productID uint) (int64, error) {
	result := r.db.Where("user_id = ? AND product_id = ?", userID, productID).Delete(&models.Favorite{})
	return result.RowsAffected, result.Error
}

// List pages through a user's favorites with products preloaded.
func (r *GormFavoriteRepository) List(filter FavoriteListFilter) ([]models.Favorite, int64, error) {
	query := r.db.Model(&models.Favorite{}).Where("user_id = ?", filter.UserID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var favorites []models.Favorite
	if err := query.Preload("Product").Order("created_at DESC, id DESC").Find(&favorites).Error; err != nil {
		return nil, 0, err
	}
	return favorites, total, nil
}
