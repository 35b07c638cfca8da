package testutil

import (
	"time"

	"shopbot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user
func NewTestUser(id int, telegramID int64, name, language string) *domain.User {
	return &domain.User{
		ID:         id,
		TelegramID: telegramID,
		FirstName:  name,
		Language:   language,
		CreatedAt:  time.Now(),
	}
}

// NewTestProduct creates an active test product with the same name in all locales
func NewTestProduct(id, categoryID, price int, name string) domain.Product {
	return domain.Product{
		ID:         id,
		CategoryID: categoryID,
		NameUz:     name,
		NameRu:     name,
		NameEn:     name,
		Price:      price,
		IsActive:   true,
		CreatedAt:  time.Now(),
	}
}

// NewTestCartItem creates a test cart line
func NewTestCartItem(userID int, product domain.Product, quantity int) domain.CartItem {
	return domain.CartItem{
		UserID:    userID,
		Product:   product,
		Quantity:  quantity,
		CreatedAt: time.Now(),
	}
}
