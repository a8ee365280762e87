package order

import "testing"

func seedOrders() []Order {
	return []Order{
		{ID: 1001, Customer: "Amy Tran", Email: "amy@example.com", Status: StatusPending},
		{ID: 1002, Customer: "Ben Ross", Email: "ben@example.com", Status: StatusShipped},
		{ID: 1003, Customer: "Cara Nole", Email: "cara@example.com", Status: StatusPending},
	}
}

func TestList_Filters(t *testing.T) {
	s := NewService(NewInMemoryRepository(seedOrders()))

	if got := len(s.List("", "")); got != 3 {
		t.Fatalf("expected all 3 orders, got %d", got)
	}
	if got := len(s.List("", StatusPending)); got != 2 {
		t.Fatalf("expected 2 pending orders, got %d", got)
	}
	// search matches order id, customer name and email
	if got := s.List("1002", ""); len(got) != 1 || got[0].ID != 1002 {
		t.Fatalf("expected id search to match 1002, got %+v", got)
	}
	if got := s.List("BEN", ""); len(got) != 1 || got[0].ID != 1002 {
		t.Fatalf("expected name search to match Ben, got %+v", got)
	}
	if got := s.List("cara@", StatusShipped); len(got) != 0 {
		t.Fatalf("expected combined filters to match nothing, got %+v", got)
	}
}

func TestUpdateStatus(t *testing.T) {
	s := NewService(NewInMemoryRepository(seedOrders()))

	updated, err := s.UpdateStatus(1001, StatusDelivered)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Status != StatusDelivered {
		t.Fatalf("expected delivered, got %s", updated.Status)
	}
	if updated.UpdatedAt == "" {
		t.Fatal("expected updatedAt to be stamped")
	}

	if _, err := s.UpdateStatus(1001, "teleported"); err != ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if _, err := s.UpdateStatus(9999, StatusPaid); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	s := NewService(NewInMemoryRepository(seedOrders()))

	if err := s.Delete(1003); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := s.GetByID(1003); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := s.Delete(1003); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for second delete, got %v", err)
	}
}
