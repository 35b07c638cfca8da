package postgres

import (
	"database/sql"
	"time"

	"shopbot/internal/domain"
)

// OrderRepo implements repository.OrderRepository
type OrderRepo struct {
	db *sql.DB
}

// NewOrderRepo creates a new order repository
func NewOrderRepo(db *sql.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

// CreateFromCart snapshots every cart line into an order row and clears the
// cart. Both statements run in one transaction so a failure mid-way never
// leaves a partial order set behind.
func (r *OrderRepo) CreateFromCart(userID int, phone, address, deliveryType, paymentMethod string) (int, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	insert := `
		INSERT INTO orders (user_id, product_id, quantity, phone, address, delivery_type, payment_method, status)
		SELECT c.user_id, c.product_id, c.quantity, $2, $3, $4, $5, 'new'
		FROM cart c
		WHERE c.user_id = $1
	`
	res, err := tx.Exec(insert, userID, phone, address, deliveryType, paymentMethod)
	if err != nil {
		return 0, err
	}

	created, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if created == 0 {
		return 0, domain.ErrEmptyCart
	}

	if _, err := tx.Exec(`DELETE FROM cart WHERE user_id = $1`, userID); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	return int(created), nil
}

const orderSelect = `
		SELECT o.id, o.user_id, o.quantity, o.phone, o.address, o.delivery_type, o.payment_method, o.status, o.created_at,
			p.id, COALESCE(p.category_id, 0), p.name_uz, p.name_ru, p.name_en,
			p.description_uz, p.description_ru, p.description_en,
			p.price, p.image_url, p.is_active, p.created_at
		FROM orders o
		JOIN products p ON p.id = o.product_id
`

func (r *OrderRepo) queryOrders(query string, args ...any) ([]domain.Order, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(
			&o.ID, &o.UserID, &o.Quantity, &o.Phone, &o.Address,
			&o.DeliveryType, &o.PaymentMethod, &o.Status, &o.CreatedAt,
			&o.Product.ID, &o.Product.CategoryID,
			&o.Product.NameUz, &o.Product.NameRu, &o.Product.NameEn,
			&o.Product.DescriptionUz, &o.Product.DescriptionRu, &o.Product.DescriptionEn,
			&o.Product.Price, &o.Product.ImageURL, &o.Product.IsActive, &o.Product.CreatedAt,
		); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, rows.Err()
}

// GetByUser returns the user's orders, newest first
func (r *OrderRepo) GetByUser(userID int) ([]domain.Order, error) {
	return r.queryOrders(orderSelect+` WHERE o.user_id = $1 ORDER BY o.created_at DESC`, userID)
}

// GetAll returns every order, newest first
func (r *OrderRepo) GetAll() ([]domain.Order, error) {
	return r.queryOrders(orderSelect + ` ORDER BY o.created_at DESC`)
}

// UpdateStatus changes the status of one order
func (r *OrderRepo) UpdateStatus(orderID int, status string) error {
	res, err := r.db.Exec(`UPDATE orders SET status = $2 WHERE id = $1`, orderID, status)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// Aggregate returns order count and revenue for orders created since the
// given time. Revenue is quantity times the current product price.
func (r *OrderRepo) Aggregate(since time.Time) (int, int, error) {
	var orders, revenue int
	query := `
		SELECT COUNT(*), COALESCE(SUM(o.quantity * p.price), 0)
		FROM orders o
		JOIN products p ON p.id = o.product_id
		WHERE o.created_at >= $1
	`
	err := r.db.QueryRow(query, since).Scan(&orders, &revenue)
	return orders, revenue, err
}
