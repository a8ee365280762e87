package notification

import "testing"

func seedNotifications() []Notification {
	return []Notification{
		{ID: 1, Title: "New order", Category: "orders"},
		{ID: 2, Title: "Stock low", Category: "inventory"},
		{ID: 3, Title: "Order shipped", Category: "orders", Read: true},
	}
}

func TestList_CategoryFilter(t *testing.T) {
	s := NewService(NewInMemoryRepository(seedNotifications()))

	if got := len(s.List("")); got != 3 {
		t.Fatalf("expected all 3 notifications, got %d", got)
	}
	if got := len(s.List("Orders")); got != 2 {
		t.Fatalf("expected case-insensitive category match to find 2, got %d", got)
	}
	if got := len(s.List("billing")); got != 0 {
		t.Fatalf("expected no billing notifications, got %d", got)
	}
}

func TestMarkRead(t *testing.T) {
	s := NewService(NewInMemoryRepository(seedNotifications()))

	n, err := s.MarkRead(1)
	if err != nil {
		t.Fatalf("mark read failed: %v", err)
	}
	if !n.Read {
		t.Fatal("expected notification to be read")
	}
	if _, err := s.MarkRead(99); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMarkAllRead(t *testing.T) {
	s := NewService(NewInMemoryRepository(seedNotifications()))

	// only the two unread ones are counted
	if got := s.MarkAllRead(); got != 2 {
		t.Fatalf("expected 2 marked, got %d", got)
	}
	if got := s.MarkAllRead(); got != 0 {
		t.Fatalf("expected 0 on second pass, got %d", got)
	}
	for _, n := range s.List("") {
		if !n.Read {
			t.Fatalf("expected all read, %d is not", n.ID)
		}
	}
}
