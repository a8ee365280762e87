package order

import (
	"database/sql"
	"encoding/json"
)

// PostgresRepository stores order lines as a JSONB column.
type PostgresRepository struct {
	db *sql.DB
}

const (
	listOrdersQuery = `
		SELECT id, customer, email, lines, total, status, created_at, updated_at
		FROM orders
		ORDER BY created_at DESC
	`
	getOrderQuery = `
		SELECT id, customer, email, lines, total, status, created_at, updated_at
		FROM orders
		WHERE id = $1
	`
	updateOrderStatusQuery = `UPDATE orders SET status = $1, updated_at = $2 WHERE id = $3`
	deleteOrderQuery       = `DELETE FROM orders WHERE id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() []Order {
	rows, err := r.db.Query(listOrdersQuery)
	if err != nil {
		return []Order{}
	}
	defer rows.Close()

	out := make([]Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			continue
		}
		out = append(out, o)
	}
	return out
}

func (r *PostgresRepository) GetByID(id int) (Order, error) {
	o, err := scanOrder(r.db.QueryRow(getOrderQuery, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return Order{}, ErrNotFound
		}
		return Order{}, err
	}
	return o, nil
}

func (r *PostgresRepository) UpdateStatus(id int, status, updatedAt string) (Order, error) {
	result, err := r.db.Exec(updateOrderStatusQuery, status, updatedAt, id)
	if err != nil {
		return Order{}, err
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return Order{}, ErrNotFound
	}
	return r.GetByID(id)
}

func (r *PostgresRepository) Delete(id int) error {
	result, err := r.db.Exec(deleteOrderQuery, id)
	if err != nil {
		return err
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (Order, error) {
	var (
		o        Order
		rawLines sql.NullString
	)
	if err := row.Scan(&o.ID, &o.Customer, &o.Email, &rawLines, &o.Total, &o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return Order{}, err
	}
	if rawLines.Valid && rawLines.String != "" {
		if err := json.Unmarshal([]byte(rawLines.String), &o.Lines); err != nil {
			return Order{}, err
		}
	}
	if o.Lines == nil {
		o.Lines = []Line{}
	}
	return o, nil
}
