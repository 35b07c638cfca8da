package service

import (
	"shopbot/internal/domain"
	"shopbot/internal/repository"
)

// CartService handles cart mutations and lookups
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService creates a new cart service
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{cartRepo: cartRepo, productRepo: productRepo}
}

// Add puts quantity units of a product into the cart. Adding a product
// already present merges into the existing line.
func (s *CartService) Add(userID, productID, quantity int) error {
	if quantity <= 0 {
		return domain.ErrInvalidQuantity
	}
	if _, err := s.productRepo.GetByID(productID); err != nil {
		return err
	}
	return s.cartRepo.Add(userID, productID, quantity)
}

// Remove deletes one product line from the cart
func (s *CartService) Remove(userID, productID int) error {
	return s.cartRepo.Remove(userID, productID)
}

// SetQuantity replaces the quantity of an existing cart line
func (s *CartService) SetQuantity(userID, productID, quantity int) error {
	if quantity <= 0 {
		return domain.ErrInvalidQuantity
	}
	return s.cartRepo.SetQuantity(userID, productID, quantity)
}

// Items returns the user's cart lines
func (s *CartService) Items(userID int) ([]domain.CartItem, error) {
	return s.cartRepo.GetByUser(userID)
}
