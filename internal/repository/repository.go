package repository

import (
	"time"

	"shopbot/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	GetByTelegramID(telegramID int64) (*domain.User, error)
	Create(telegramID int64, firstName, language string) (*domain.User, error)
	UpdateLanguage(telegramID int64, language string) error
	GetAll() ([]domain.User, error)
}

// CategoryRepository defines category data operations
type CategoryRepository interface {
	GetAll() ([]domain.Category, error)
	GetByID(id int) (*domain.Category, error)
	Create(c *domain.Category) (int, error)
	Update(c *domain.Category) error
	Delete(id int) error
}

// ProductRepository defines product data operations
type ProductRepository interface {
	GetAll() ([]domain.Product, error)
	GetActiveByCategory(categoryID int) ([]domain.Product, error)
	GetByID(id int) (*domain.Product, error)
	Search(query string) ([]domain.Product, error)
	Create(p *domain.Product) (int, error)
	Update(p *domain.Product) error
	Delete(id int) error
}

// CartRepository defines cart data operations
type CartRepository interface {
	GetByUser(userID int) ([]domain.CartItem, error)
	Add(userID, productID, quantity int) error
	Remove(userID, productID int) error
	SetQuantity(userID, productID, quantity int) error
	Clear(userID int) error
}

// OrderRepository defines order data operations
type OrderRepository interface {
	// CreateFromCart snapshots every cart line into an order row and clears
	// the cart in a single transaction. Returns the number of orders created.
	CreateFromCart(userID int, phone, address, deliveryType, paymentMethod string) (int, error)
	GetByUser(userID int) ([]domain.Order, error)
	GetAll() ([]domain.Order, error)
	UpdateStatus(orderID int, status string) error
	Aggregate(since time.Time) (orders, revenue int, err error)
}

// MessageRepository defines support message operations
type MessageRepository interface {
	Create(userID int, adminID int64, text string) error
	GetByUser(userID int) ([]domain.Message, error)
}
