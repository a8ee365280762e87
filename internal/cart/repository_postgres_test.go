package cart

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPostgresGet(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("SELECT cart FROM users").WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"cart"}).AddRow(`{"1":2,"4":1}`))

	items, err := repo.Get(7)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if items[1] != 2 || items[4] != 1 {
		t.Fatalf("unexpected cart %v", items)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresGet_NullCart(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("SELECT cart FROM users").WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"cart"}).AddRow(nil))

	items, err := repo.Get(7)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected an empty cart, got %v", items)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresGet_UnknownUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("SELECT cart FROM users").WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"cart"}))

	if _, err := repo.Get(99); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresSave(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("UPDATE users SET cart").
		WithArgs(`{"3":2}`, "2026-01-01T00:00:00Z", 7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Save(7, map[int]int{3: 2}, "2026-01-01T00:00:00Z"); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresSave_UnknownUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("UPDATE users SET cart").
		WithArgs(`{}`, "2026-01-01T00:00:00Z", 99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Save(99, nil, "2026-01-01T00:00:00Z"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
