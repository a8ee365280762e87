package subscriber

import (
	"bytes"
	"encoding/csv"
	"testing"
)

func TestSubscribe_Dedupes(t *testing.T) {
	s := NewService(NewInMemoryRepository(nil))

	if _, err := s.Subscribe("Jenny@Example.com", "Jenny"); err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}
	// email comparison is case-insensitive
	if _, err := s.Subscribe("jenny@example.com", "Jenny"); err != ErrEmailExists {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestSubscribe_ReactivatesUnsubscribed(t *testing.T) {
	s := NewService(NewInMemoryRepository([]Subscriber{
		{ID: "s1", Email: "old@example.com", Name: "Old", Status: StatusUnsubscribed},
	}))

	sub, err := s.Subscribe("old@example.com", "Old")
	if err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}
	if sub.ID != "s1" || sub.Status != StatusActive {
		t.Fatalf("expected reactivation of s1, got %+v", sub)
	}
	if got := len(s.List("", "")); got != 1 {
		t.Fatalf("expected a single record, got %d", got)
	}
}

func TestSubscribe_InvalidEmail(t *testing.T) {
	s := NewService(NewInMemoryRepository(nil))

	for _, email := range []string{"", "   ", "not-an-email"} {
		if _, err := s.Subscribe(email, "X"); err != ErrInvalidEmail {
			t.Fatalf("expected ErrInvalidEmail for %q, got %v", email, err)
		}
	}
}

func TestList_Filters(t *testing.T) {
	s := NewService(NewInMemoryRepository([]Subscriber{
		{ID: "s1", Email: "amy@example.com", Name: "Amy", Status: StatusActive},
		{ID: "s2", Email: "ben@example.com", Name: "Ben", Status: StatusUnsubscribed},
		{ID: "s3", Email: "cara@other.com", Name: "Cara", Status: StatusActive},
	}))

	if got := len(s.List("", StatusActive)); got != 2 {
		t.Fatalf("expected 2 active subscribers, got %d", got)
	}
	if got := s.List("BEN", ""); len(got) != 1 || got[0].ID != "s2" {
		t.Fatalf("expected search to match Ben, got %+v", got)
	}
	if got := len(s.List("example.com", StatusActive)); got != 1 {
		t.Fatalf("expected combined filters to match 1, got %d", got)
	}
}

func TestUpdateStatus_Invalid(t *testing.T) {
	s := NewService(NewInMemoryRepository([]Subscriber{
		{ID: "s1", Email: "amy@example.com", Status: StatusActive},
	}))

	if _, err := s.UpdateStatus("s1", "banned"); err == nil {
		t.Fatal("expected an error for an unknown status")
	}
	if _, err := s.UpdateStatus("missing", StatusActive); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestExportCSV_RoundTrip(t *testing.T) {
	s := NewService(NewInMemoryRepository([]Subscriber{
		{ID: "s1", Email: "amy@example.com", Name: `Amy "A", Jr.`, Status: StatusActive, SubscribedAt: "2024-01-01T00:00:00Z"},
	}))

	out, err := s.ExportCSV("", "")
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("exported CSV does not re-parse: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header plus one row, got %d records", len(records))
	}
	if records[0][0] != "id" || records[0][4] != "subscribedAt" {
		t.Fatalf("unexpected header: %v", records[0])
	}
	// commas and quotes in a field survive the round trip
	if records[1][2] != `Amy "A", Jr.` {
		t.Fatalf("name field did not round-trip, got %q", records[1][2])
	}
}
