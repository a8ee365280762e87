package product

import (
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listProductsQuery = `
		SELECT id, name, price, image, description, category, rating, created_at, updated_at
		FROM products
		ORDER BY id
	`
	getProductQuery = `
		SELECT id, name, price, image, description, category, rating, created_at, updated_at
		FROM products
		WHERE id = $1
	`
	listByCategoryQuery = `
		SELECT id, name, price, image, description, category, rating, created_at, updated_at
		FROM products
		WHERE LOWER(category) = LOWER($1)
		ORDER BY id
	`
	searchProductsQuery = `
		SELECT id, name, price, image, description, category, rating, created_at, updated_at
		FROM products
		WHERE name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%'
		ORDER BY id
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() []Product {
	return r.queryProducts(listProductsQuery)
}

func (r *PostgresRepository) GetByID(id int) (Product, error) {
	p, err := scanProduct(r.db.QueryRow(getProductQuery, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return Product{}, ErrNotFound
		}
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) ListByCategory(category string) []Product {
	return r.queryProducts(listByCategoryQuery, category)
}

func (r *PostgresRepository) Search(query string) []Product {
	return r.queryProducts(searchProductsQuery, query)
}

func (r *PostgresRepository) queryProducts(query string, args ...any) []Product {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		// table may not exist yet; keep the API resilient
		return []Product{}
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			continue
		}
		out = append(out, p)
	}
	return out
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (Product, error) {
	var (
		p        Product
		desc     sql.NullString
		category sql.NullString
		rating   sql.NullInt64
		crAt     sql.NullString
		upAt     sql.NullString
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Price, &p.Image, &desc, &category, &rating, &crAt, &upAt); err != nil {
		return Product{}, err
	}
	p.Description = desc.String
	p.Category = category.String
	p.Rating = int(rating.Int64)
	p.CreatedAt = crAt.String
	p.UpdatedAt = upAt.String
	return p, nil
}
