package service

import (
	"github.com/velora-shop/velora/internal/models"
	"github.com/velora-shop/velora/internal/repository"
)

// FavoriteService handles per-user product favorites.
type FavoriteService struct {
	favoriteRepo repository.FavoriteRepository
	productRepo  repository.ProductRepository
}

// NewFavoriteService creates the favorites service.
func NewFavoriteService(favoriteRepo repository.FavoriteRepository, productRepo repository.ProductRepository) *FavoriteService {
	return &FavoriteService{favoriteRepo: favoriteRepo, productRepo: productRepo}
}

// Add favorites a product. The (user, product) pair is unique; adding it
// again is a conflict.
func (s *FavoriteService) Add(userID, productID uint) (*models.Favorite, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	existing, err := s.favoriteRepo.Get(userID, productID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrFavoriteExists
	}

	favorite := &models.Favorite{UserID: userID, ProductID: productID}
	if err := s.favoriteRepo.Create(favorite); err != nil {
		return nil, err
	}
	favorite.Product = *product
	return favorite, nil
}

// Remove unfavorites a product.
func (s *FavoriteService) Remove(userID, productID uint) error {
	affected, err := s.favoriteRepo.Delete(userID, productID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}

// List pages through the user's favorites with products preloaded.
func (s *FavoriteService) List(userID uint, page, pageSize int) ([]models.Favorite, int64, error) {
	page, pageSize = NormalizePagination(page, pageSize)
	return s.favoriteRepo.List(repository.FavoriteListFilter{
		Page:     page,
		PageSize: pageSize,
		UserID:   userID,
	})
}

// IsFavorited reports whether the user has favorited the product.
func (s *FavoriteService) IsFavorited(userID, productID uint) (bool, error) {
	favorite, err := s.favoriteRepo.Get(userID, productID)
	if err != nil {
		return false, err
	}
	return favorite != nil, nil
}
