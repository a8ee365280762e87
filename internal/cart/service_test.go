package cart

import (
	"math"
	"testing"

	"github.com/oakratch/storefront-backend/internal/product"
)

func newTestService() *Service {
	catalog := product.NewService(product.NewInMemoryRepository([]product.Product{
		{ID: 1, Name: "Lamp", Price: 49.99, Image: "/lamp.jpg"},
		{ID: 2, Name: "Stand", Price: 24.5, Image: "/stand.jpg"},
		{ID: 3, Name: "Pillow", Price: 32, Image: "/pillow.jpg"},
	}))
	return NewService(NewInMemoryRepository(), catalog)
}

func TestAdd_MergesQuantities(t *testing.T) {
	s := newTestService()

	if _, err := s.Add(1, 1, 2); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	summary, err := s.Add(1, 1, 3)
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	if len(summary.Items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(summary.Items))
	}
	if summary.Items[0].Quantity != 5 {
		t.Fatalf("expected merged quantity 5, got %d", summary.Items[0].Quantity)
	}
}

func TestAdd_DefaultsQuantityToOne(t *testing.T) {
	s := newTestService()

	summary, err := s.Add(1, 2, 0)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if summary.Items[0].Quantity != 1 {
		t.Fatalf("expected quantity 1, got %d", summary.Items[0].Quantity)
	}
}

func TestAdd_UnknownProduct(t *testing.T) {
	s := newTestService()

	if _, err := s.Add(1, 99, 1); err != product.ErrNotFound {
		t.Fatalf("expected product.ErrNotFound, got %v", err)
	}
}

func TestUpdateQuantity_ZeroRemoves(t *testing.T) {
	s := newTestService()

	if _, err := s.Add(1, 1, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	summary, err := s.UpdateQuantity(1, 1, 0)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if len(summary.Items) != 0 {
		t.Fatalf("expected empty cart after setting quantity to zero, got %d lines", len(summary.Items))
	}

	// same result as an explicit remove
	if _, err := s.Add(1, 1, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	summary, err = s.Remove(1, 1)
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if len(summary.Items) != 0 {
		t.Fatalf("expected empty cart after remove, got %d lines", len(summary.Items))
	}
}

func TestUpdateQuantity_SetsExactly(t *testing.T) {
	s := newTestService()

	if _, err := s.Add(1, 1, 5); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	summary, err := s.UpdateQuantity(1, 1, 2)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if summary.Items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", summary.Items[0].Quantity)
	}
}

func TestRemove_AbsentProductIsNoop(t *testing.T) {
	s := newTestService()

	if _, err := s.Add(1, 1, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	summary, err := s.Remove(1, 3)
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if len(summary.Items) != 1 {
		t.Fatalf("expected cart untouched, got %d lines", len(summary.Items))
	}
}

func TestTotalAndItemCount(t *testing.T) {
	s := newTestService()

	if _, err := s.Add(1, 1, 2); err != nil { // 2 * 49.99
		t.Fatalf("add failed: %v", err)
	}
	summary, err := s.Add(1, 3, 3) // 3 * 32
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	want := 2*49.99 + 3*32.0
	if math.Abs(summary.Total-want) > 1e-9 {
		t.Fatalf("expected total %v, got %v", want, summary.Total)
	}
	if summary.ItemCount != 5 {
		t.Fatalf("expected item count 5, got %d", summary.ItemCount)
	}
}

func TestTotal_AddThenRemoveRoundTrip(t *testing.T) {
	s := newTestService()

	before, err := s.Add(1, 1, 2)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := s.Add(1, 2, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	after, err := s.Remove(1, 2)
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	if math.Abs(after.Total-before.Total) > 1e-9 {
		t.Fatalf("expected total restored to %v, got %v", before.Total, after.Total)
	}
}

func TestClear(t *testing.T) {
	s := newTestService()

	if _, err := s.Add(1, 1, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := s.Clear(1); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	summary, err := s.Get(1)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(summary.Items) != 0 || summary.Total != 0 || summary.ItemCount != 0 {
		t.Fatalf("expected empty cart after clear, got %+v", summary)
	}
}
