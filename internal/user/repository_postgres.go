package user

import (
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

const (
	listUsersQuery = `
		SELECT id, name, email, password, phone, avatar, role, created_at, updated_at
		FROM users
		ORDER BY id
	`
	getUserByIDQuery = `
		SELECT id, name, email, password, phone, avatar, role, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	getUserByEmailQuery = `
		SELECT id, name, email, password, phone, avatar, role, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	insertUserQuery = `
		INSERT INTO users (name, email, password, phone, avatar, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	updateUserQuery = `
		UPDATE users
		SET name = $1, email = $2, phone = $3, avatar = $4, updated_at = $5
		WHERE id = $6
	`
	deleteUserQuery = `DELETE FROM users WHERE id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() []User {
	rows, err := r.db.Query(listUsersQuery)
	if err != nil {
		return []User{}
	}
	defer rows.Close()

	users := make([]User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			continue
		}
		users = append(users, user)
	}

	return users
}

func (r *PostgresRepository) GetByID(id int) (User, error) {
	user, err := scanUser(r.db.QueryRow(getUserByIDQuery, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return user, nil
}

func (r *PostgresRepository) GetByEmail(email string) (User, error) {
	user, err := scanUser(r.db.QueryRow(getUserByEmailQuery, email))
	if err != nil {
		if err == sql.ErrNoRows {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return user, nil
}

func (r *PostgresRepository) Create(user User) (User, error) {
	var id int
	avatarVal := sql.NullString{}
	if user.Avatar != nil {
		avatarVal = sql.NullString{String: *user.Avatar, Valid: true}
	}
	err := r.db.QueryRow(
		insertUserQuery,
		user.Name,
		user.Email,
		user.Password,
		user.Phone,
		avatarVal,
		user.Role,
		user.CreatedAt,
		user.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return User{}, err
	}

	user.ID = id
	return user, nil
}

func (r *PostgresRepository) Update(id int, userUpdate User) (User, error) {
	// send raw nil when the avatar was removed so the column becomes NULL
	var avatarArg any
	if userUpdate.Avatar != nil {
		avatarArg = *userUpdate.Avatar
	}
	result, err := r.db.Exec(
		updateUserQuery,
		userUpdate.Name,
		userUpdate.Email,
		userUpdate.Phone,
		avatarArg,
		userUpdate.UpdatedAt,
		id,
	)
	if err != nil {
		return User{}, err
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return User{}, ErrNotFound
	}

	return r.GetByID(id)
}

func (r *PostgresRepository) Delete(id int) error {
	result, err := r.db.Exec(deleteUserQuery, id)
	if err != nil {
		return err
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanUser(row rowScanner) (User, error) {
	var (
		u      User
		phone  sql.NullString
		avatar sql.NullString
		crAt   sql.NullString
		upAt   sql.NullString
	)
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &phone, &avatar, &u.Role, &crAt, &upAt); err != nil {
		return User{}, err
	}
	u.Phone = phone.String
	if avatar.Valid {
		u.Avatar = &avatar.String
	}
	u.CreatedAt = crAt.String
	u.UpdatedAt = upAt.String
	return u, nil
}
