package cart

import (
	"database/sql"
	"encoding/json"
	"strconv"
)

// PostgresRepository stores each user's cart as a JSONB map of
// productID -> quantity on the users row.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(userID int) (map[int]int, error) {
	var raw sql.NullString
	if err := r.db.QueryRow(`SELECT cart FROM users WHERE id = $1`, userID).Scan(&raw); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}

	items := make(map[int]int)
	if !raw.Valid || raw.String == "" {
		return items, nil
	}

	var m map[string]int
	if err := json.Unmarshal([]byte(raw.String), &m); err != nil {
		return nil, err
	}
	for k, qty := range m {
		pid, err := strconv.Atoi(k)
		if err != nil {
			continue
		}
		items[pid] = qty
	}
	return items, nil
}

func (r *PostgresRepository) Save(userID int, items map[int]int, updatedAt string) error {
	m := make(map[string]int, len(items))
	for pid, qty := range items {
		m[strconv.Itoa(pid)] = qty
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return err
	}

	result, err := r.db.Exec(`UPDATE users SET cart = $1, updated_at = $2 WHERE id = $3`, string(raw), updatedAt, userID)
	if err != nil {
		return err
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
