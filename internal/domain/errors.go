package domain

import "errors"

// Error kinds the dispatcher recovers from locally. Anything that does not
// match one of these is treated as unexpected and takes the generic path.
var (
	ErrNotFound        = errors.New("not found")
	ErrNotRegistered   = errors.New("user not registered")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrInvalidPrice    = errors.New("price must be a number")
	ErrForbidden       = errors.New("admin rights required")
)
