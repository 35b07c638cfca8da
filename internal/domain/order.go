package domain

import "time"

// CartItem is one (user, product) line. At most one row exists per pair;
// adding the same product again increments Quantity.
type CartItem struct {
	ID        int
	UserID    int
	Product   Product
	Quantity  int
	CreatedAt time.Time
}

// LineTotal is quantity times unit price.
func (c *CartItem) LineTotal() int {
	return c.Quantity * c.Product.Price
}

// Order statuses.
const (
	OrderStatusNew        = "new"
	OrderStatusProcessing = "processing"
	OrderStatusClosed     = "closed"
)

// ValidOrderStatus reports whether s is a known order status.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusNew, OrderStatusProcessing, OrderStatusClosed:
		return true
	}
	return false
}

// Delivery types captured at checkout.
const (
	DeliveryCourier = "delivery"
	DeliveryPickup  = "pickup"
)

// Order is a snapshot of one cart line at checkout time.
type Order struct {
	ID            int
	UserID        int
	Product       Product
	Quantity      int
	Phone         string
	Address       string
	DeliveryType  string
	PaymentMethod string
	Status        string
	CreatedAt     time.Time
}

// Statistics holds aggregate order counts and revenue for the admin panel.
type Statistics struct {
	Last7DaysOrders   int
	Last7DaysRevenue  int
	Last30DaysOrders  int
	Last30DaysRevenue int
}
