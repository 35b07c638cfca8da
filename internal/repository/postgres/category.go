package postgres

import (
	"database/sql"

	"shopbot/internal/domain"
)

// CategoryRepo implements repository.CategoryRepository
type CategoryRepo struct {
	db *sql.DB
}

// NewCategoryRepo creates a new category repository
func NewCategoryRepo(db *sql.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

// GetAll returns every category
func (r *CategoryRepo) GetAll() ([]domain.Category, error) {
	query := `
		SELECT id, name_uz, name_ru, name_en, created_at
		FROM categories
		ORDER BY id
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.NameUz, &c.NameRu, &c.NameEn, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

// GetByID returns one category or domain.ErrNotFound
func (r *CategoryRepo) GetByID(id int) (*domain.Category, error) {
	var c domain.Category
	query := `
		SELECT id, name_uz, name_ru, name_en, created_at
		FROM categories
		WHERE id = $1
	`
	err := r.db.QueryRow(query, id).Scan(&c.ID, &c.NameUz, &c.NameRu, &c.NameEn, &c.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// Create inserts a category and returns the generated id
func (r *CategoryRepo) Create(c *domain.Category) (int, error) {
	var id int
	query := `
		INSERT INTO categories (name_uz, name_ru, name_en)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.db.QueryRow(query, c.NameUz, c.NameRu, c.NameEn).Scan(&id)
	return id, err
}

// Update replaces the localized names of an existing category
func (r *CategoryRepo) Update(c *domain.Category) error {
	query := `
		UPDATE categories
		SET name_uz = $2, name_ru = $3, name_en = $4
		WHERE id = $1
	`
	res, err := r.db.Exec(query, c.ID, c.NameUz, c.NameRu, c.NameEn)
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

// Delete removes a category. Products keep existing with a detached category.
func (r *CategoryRepo) Delete(id int) error {
	_, err := r.db.Exec(`DELETE FROM categories WHERE id = $1`, id)
	return err
}
