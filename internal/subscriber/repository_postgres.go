package subscriber

import (
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listSubscribersQuery = `
		SELECT id, email, name, status, subscribed_at
		FROM subscribers
		ORDER BY subscribed_at DESC
	`
	getSubscriberByEmailQuery = `
		SELECT id, email, name, status, subscribed_at
		FROM subscribers
		WHERE email = $1
	`
	insertSubscriberQuery = `
		INSERT INTO subscribers (id, email, name, status, subscribed_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	updateSubscriberStatusQuery = `UPDATE subscribers SET status = $1 WHERE id = $2`
	deleteSubscriberQuery       = `DELETE FROM subscribers WHERE id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() []Subscriber {
	rows, err := r.db.Query(listSubscribersQuery)
	if err != nil {
		return []Subscriber{}
	}
	defer rows.Close()

	out := make([]Subscriber, 0)
	for rows.Next() {
		var (
			s    Subscriber
			name sql.NullString
		)
		if err := rows.Scan(&s.ID, &s.Email, &name, &s.Status, &s.SubscribedAt); err != nil {
			continue
		}
		s.Name = name.String
		out = append(out, s)
	}
	return out
}

func (r *PostgresRepository) GetByEmail(email string) (Subscriber, error) {
	var (
		s    Subscriber
		name sql.NullString
	)
	err := r.db.QueryRow(getSubscriberByEmailQuery, email).Scan(&s.ID, &s.Email, &name, &s.Status, &s.SubscribedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return Subscriber{}, ErrNotFound
		}
		return Subscriber{}, err
	}
	s.Name = name.String
	return s, nil
}

func (r *PostgresRepository) Create(sub Subscriber) (Subscriber, error) {
	_, err := r.db.Exec(insertSubscriberQuery, sub.ID, sub.Email, sub.Name, sub.Status, sub.SubscribedAt)
	if err != nil {
		return Subscriber{}, err
	}
	return sub, nil
}

func (r *PostgresRepository) UpdateStatus(id, status string) (Subscriber, error) {
	result, err := r.db.Exec(updateSubscriberStatusQuery, status, id)
	if err != nil {
		return Subscriber{}, err
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return Subscriber{}, ErrNotFound
	}

	var (
		s    Subscriber
		name sql.NullString
	)
	err = r.db.QueryRow(`SELECT id, email, name, status, subscribed_at FROM subscribers WHERE id = $1`, id).
		Scan(&s.ID, &s.Email, &name, &s.Status, &s.SubscribedAt)
	if err != nil {
		return Subscriber{}, err
	}
	s.Name = name.String
	return s, nil
}

func (r *PostgresRepository) Delete(id string) error {
	result, err := r.db.Exec(deleteSubscriberQuery, id)
	if err != nil {
		return err
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
