package wishlist

import (
	"database/sql"

	"github.com/lib/pq"
)

// PostgresRepository stores the wishlist as an integer[] column on the
// users row.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(userID int) ([]int, error) {
	var ids pq.Int64Array
	if err := r.db.QueryRow(`SELECT COALESCE(wishlist, '{}') FROM users WHERE id = $1`, userID).Scan(&ids); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}

	out := make([]int, 0, len(ids))
	for _, id := range ids {
		out = append(out, int(id))
	}
	return out, nil
}

func (r *PostgresRepository) Save(userID int, productIDs []int, updatedAt string) error {
	arr := make(pq.Int64Array, 0, len(productIDs))
	for _, id := range productIDs {
		arr = append(arr, int64(id))
	}

	result, err := r.db.Exec(`UPDATE users SET wishlist = $1, updated_at = $2 WHERE id = $3`, arr, updatedAt, userID)
	if err != nil {
		return err
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
