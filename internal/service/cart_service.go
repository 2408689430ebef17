package service

import (
	"github.com/velora-shop/velora/internal/models"
	"github.com/velora-shop/velora/internal/repository"

	"github.com/shopspring/decimal"
)

// CartService handles the per-user cart.
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService creates the cart service.
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{cartRepo: cartRepo, productRepo: productRepo}
}

// GetCart returns the user's cart, creating an empty one on first access.
func (s *CartService) GetCart(userID uint) (*models.Cart, error) {
	cart, err := s.cartRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if cart != nil {
		return cart, nil
	}
	cart = &models.Cart{UserID: userID, Items: []models.CartItem{}}
	if err := s.cartRepo.Create(cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Count returns the summed quantity across the cart's lines.
func (s *CartService) Count(userID uint) (int64, error) {
	cart, err := s.cartRepo.GetByUserID(userID)
	if err != nil {
		return 0, err
	}
	if cart == nil {
		return 0, nil
	}
	return s.cartRepo.CountItems(cart.ID)
}

// AddItemInput is the add-to-cart payload.
type AddItemInput struct {
	ProductID uint
	Quantity  int
	Colour    string
	Size      string
}

// AddItem puts a product variant into the cart. Adding a variant that is
// already present merges into the existing line instead of appending a
// duplicate.
func (s *CartService) AddItem(userID uint, input AddItemInput) (*models.Cart, error) {
	if input.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	product, err := s.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if !product.InStock {
		return nil, ErrProductUnavailable
	}

	cart, err := s.GetCart(userID)
	if err != nil {
		return nil, err
	}

	var existing *models.CartItem
	for i := range cart.Items {
		if cart.Items[i].SameVariant(input.ProductID, input.Colour, input.Size) {
			existing = &cart.Items[i]
			break
		}
	}

	requested := input.Quantity
	if existing != nil {
		requested += existing.Quantity
	}
	if product.TotalStock < requested {
		return nil, ErrInsufficientStock
	}

	if existing != nil {
		existing.Quantity = requested
		if err := s.cartRepo.UpdateItem(existing); err != nil {
			return nil, err
		}
	} else {
		item := &models.CartItem{
			CartID:    cart.ID,
			ProductID: input.ProductID,
			Quantity:  input.Quantity,
			Colour:    input.Colour,
			Size:      input.Size,
		}
		if err := s.cartRepo.AddItem(item); err != nil {
			return nil, err
		}
	}
	return s.refresh(userID)
}

// UpdateItem changes the quantity of one cart line.
func (s *CartService) UpdateItem(userID, itemID uint, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	cart, err := s.cartRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrCartItemNotFound
	}
	item, err := s.cartRepo.GetItem(cart.ID, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrCartItemNotFound
	}

	product, err := s.productRepo.GetByID(item.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if !product.InStock || product.TotalStock < quantity {
		return nil, ErrInsufficientStock
	}

	item.Quantity = quantity
	if err := s.cartRepo.UpdateItem(item); err != nil {
		return nil, err
	}
	return s.refresh(userID)
}

// RemoveItem deletes one cart line.
func (s *CartService) RemoveItem(userID, itemID uint) (*models.Cart, error) {
	cart, err := s.cartRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrCartItemNotFound
	}
	affected, err := s.cartRepo.RemoveItem(cart.ID, itemID)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrCartItemNotFound
	}
	return s.refresh(userID)
}

// Clear empties the cart.
func (s *CartService) Clear(userID uint) (*models.Cart, error) {
	cart, err := s.cartRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return s.GetCart(userID)
	}
	if err := s.cartRepo.ClearItems(cart.ID); err != nil {
		return nil, err
	}
	return s.refresh(userID)
}

// refresh reloads the cart and recomputes its total from live prices.
func (s *CartService) refresh(userID uint) (*models.Cart, error) {
	cart, err := s.cartRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	total := ComputeCartTotal(cart.Items)
	if err := s.cartRepo.UpdateTotal(cart.ID, total); err != nil {
		return nil, err
	}
	cart.TotalAmount = total
	return cart, nil
}

// ComputeCartTotal sums quantity times the current product price across
// the lines. An empty cart totals zero. Pure function, called explicitly
// after every mutation.
func ComputeCartTotal(items []models.CartItem) models.Money {
	total := decimal.Zero
	for _, item := range items {
		line := item.Product.Price.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	return models.NewMoneyFromDecimal(total)
}
