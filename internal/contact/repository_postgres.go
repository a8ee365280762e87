package contact

import (
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listContactsQuery = `
		SELECT id, name, email, subject, message, created_at
		FROM contacts
		ORDER BY created_at DESC
	`
	insertContactQuery = `
		INSERT INTO contacts (id, name, email, subject, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	deleteContactQuery = `DELETE FROM contacts WHERE id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() []Contact {
	rows, err := r.db.Query(listContactsQuery)
	if err != nil {
		return []Contact{}
	}
	defer rows.Close()

	out := make([]Contact, 0)
	for rows.Next() {
		var c Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message, &c.CreatedAt); err != nil {
			continue
		}
		out = append(out, c)
	}
	return out
}

func (r *PostgresRepository) Create(contact Contact) (Contact, error) {
	_, err := r.db.Exec(insertContactQuery, contact.ID, contact.Name, contact.Email, contact.Subject, contact.Message, contact.CreatedAt)
	if err != nil {
		return Contact{}, err
	}
	return contact, nil
}

func (r *PostgresRepository) Delete(id string) error {
	result, err := r.db.Exec(deleteContactQuery, id)
	if err != nil {
		return err
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
