package postgres

import (
	"database/sql"

	"shopbot/internal/domain"
)

// CartRepo implements repository.CartRepository
type CartRepo struct {
	db *sql.DB
}

// NewCartRepo creates a new cart repository
func NewCartRepo(db *sql.DB) *CartRepo {
	return &CartRepo{db: db}
}

// GetByUser returns the user's cart lines with their products
func (r *CartRepo) GetByUser(userID int) ([]domain.CartItem, error) {
	query := `
		SELECT c.id, c.user_id, c.quantity, c.created_at,
			p.id, COALESCE(p.category_id, 0), p.name_uz, p.name_ru, p.name_en,
			p.description_uz, p.description_ru, p.description_en,
			p.price, p.image_url, p.is_active, p.created_at
		FROM cart c
		JOIN products p ON p.id = c.product_id
		WHERE c.user_id = $1
		ORDER BY c.id
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.CartItem
	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.Quantity, &item.CreatedAt,
			&item.Product.ID, &item.Product.CategoryID,
			&item.Product.NameUz, &item.Product.NameRu, &item.Product.NameEn,
			&item.Product.DescriptionUz, &item.Product.DescriptionRu, &item.Product.DescriptionEn,
			&item.Product.Price, &item.Product.ImageURL, &item.Product.IsActive, &item.Product.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// Add inserts a cart line or increments the quantity of an existing one.
// The (user_id, product_id) pair is unique, so the same product never
// produces two rows.
func (r *CartRepo) Add(userID, productID, quantity int) error {
	query := `
		INSERT INTO cart (user_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET quantity = cart.quantity + EXCLUDED.quantity
	`
	_, err := r.db.Exec(query, userID, productID, quantity)
	return err
}

// Remove deletes one cart line
func (r *CartRepo) Remove(userID, productID int) error {
	_, err := r.db.Exec(`DELETE FROM cart WHERE user_id = $1 AND product_id = $2`, userID, productID)
	return err
}

// SetQuantity replaces the quantity of an existing cart line
func (r *CartRepo) SetQuantity(userID, productID, quantity int) error {
	query := `UPDATE cart SET quantity = $3 WHERE user_id = $1 AND product_id = $2`
	res, err := r.db.Exec(query, userID, productID, quantity)
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

// Clear removes every cart line of a user
func (r *CartRepo) Clear(userID int) error {
	_, err := r.db.Exec(`DELETE FROM cart WHERE user_id = $1`, userID)
	return err
}
