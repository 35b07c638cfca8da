package postgres

import (
	"database/sql"

	"shopbot/internal/domain"
)

const productColumns = `id, COALESCE(category_id, 0), name_uz, name_ru, name_en,
		description_uz, description_ru, description_en, price, image_url, is_active, created_at`

// ProductRepo implements repository.ProductRepository
type ProductRepo struct {
	db *sql.DB
}

// NewProductRepo creates a new product repository
func NewProductRepo(db *sql.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

func scanProduct(row interface{ Scan(...any) error }) (domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID, &p.CategoryID, &p.NameUz, &p.NameRu, &p.NameEn,
		&p.DescriptionUz, &p.DescriptionRu, &p.DescriptionEn,
		&p.Price, &p.ImageURL, &p.IsActive, &p.CreatedAt,
	)
	return p, err
}

func (r *ProductRepo) queryProducts(query string, args ...any) ([]domain.Product, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

// GetAll returns every product, active or not
func (r *ProductRepo) GetAll() ([]domain.Product, error) {
	return r.queryProducts(`SELECT ` + productColumns + ` FROM products ORDER BY id`)
}

// GetActiveByCategory returns active products of one category
func (r *ProductRepo) GetActiveByCategory(categoryID int) ([]domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE category_id = $1 AND is_active = TRUE
		ORDER BY id
	`
	return r.queryProducts(query, categoryID)
}

// GetByID returns one product or domain.ErrNotFound
func (r *ProductRepo) GetByID(id int) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.db.QueryRow(query, id))

	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// Search matches the query against all three localized names
func (r *ProductRepo) Search(query string) ([]domain.Product, error) {
	sqlQuery := `
		SELECT ` + productColumns + `
		FROM products
		WHERE is_active = TRUE
			AND (name_uz ILIKE $1 OR name_ru ILIKE $1 OR name_en ILIKE $1)
		ORDER BY id
	`
	return r.queryProducts(sqlQuery, "%"+query+"%")
}

// Create inserts a product and returns the generated id
func (r *ProductRepo) Create(p *domain.Product) (int, error) {
	var id int
	query := `
		INSERT INTO products
			(category_id, name_uz, name_ru, name_en, description_uz, description_ru, description_en, price, image_url, is_active)
		VALUES (NULLIF($1, 0), $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	err := r.db.QueryRow(query,
		p.CategoryID, p.NameUz, p.NameRu, p.NameEn,
		p.DescriptionUz, p.DescriptionRu, p.DescriptionEn,
		p.Price, p.ImageURL, p.IsActive,
	).Scan(&id)
	return id, err
}

// Update replaces every editable field of an existing product
func (r *ProductRepo) Update(p *domain.Product) error {
	query := `
		UPDATE products
		SET category_id = NULLIF($2, 0), name_uz = $3, name_ru = $4, name_en = $5,
			description_uz = $6, description_ru = $7, description_en = $8,
			price = $9, image_url = $10, is_active = $11
		WHERE id = $1
	`
	res, err := r.db.Exec(query,
		p.ID, p.CategoryID, p.NameUz, p.NameRu, p.NameEn,
		p.DescriptionUz, p.DescriptionRu, p.DescriptionEn,
		p.Price, p.ImageURL, p.IsActive,
	)
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

// Delete removes a product together with its cart lines
func (r *ProductRepo) Delete(id int) error {
	_, err := r.db.Exec(`DELETE FROM products WHERE id = $1`, id)
	return err
}
