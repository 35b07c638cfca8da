package service

import (
	"fmt"
	"time"

	"shopbot/internal/domain"
	"shopbot/internal/repository"
)

// OrderService handles checkout, order history and admin aggregates
type OrderService struct {
	orderRepo repository.OrderRepository
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo repository.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// Checkout turns every cart line into an order row and empties the cart
// atomically. Returns domain.ErrEmptyCart when there is nothing to order.
func (s *OrderService) Checkout(userID int, phone, address, deliveryType, paymentMethod string) (int, error) {
	if deliveryType == "" {
		deliveryType = domain.DeliveryCourier
	}
	return s.orderRepo.CreateFromCart(userID, phone, address, deliveryType, paymentMethod)
}

// History returns the user's orders
func (s *OrderService) History(userID int) ([]domain.Order, error) {
	return s.orderRepo.GetByUser(userID)
}

// All returns every order for the admin view
func (s *OrderService) All() ([]domain.Order, error) {
	return s.orderRepo.GetAll()
}

// UpdateStatus moves an order to a new status
func (s *OrderService) UpdateStatus(orderID int, status string) error {
	if !domain.ValidOrderStatus(status) {
		return fmt.Errorf("unknown order status %q", status)
	}
	return s.orderRepo.UpdateStatus(orderID, status)
}

// Statistics aggregates orders and revenue over the last 7 and 30 days
func (s *OrderService) Statistics() (*domain.Statistics, error) {
	now := time.Now()

	orders7, revenue7, err := s.orderRepo.Aggregate(now.AddDate(0, 0, -7))
	if err != nil {
		return nil, err
	}
	orders30, revenue30, err := s.orderRepo.Aggregate(now.AddDate(0, 0, -30))
	if err != nil {
		return nil, err
	}

	return &domain.Statistics{
		Last7DaysOrders:   orders7,
		Last7DaysRevenue:  revenue7,
		Last30DaysOrders:  orders30,
		Last30DaysRevenue: revenue30,
	}, nil
}
