package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/f3rmion/bmi/internal/bmi"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "sub", "history.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndRecent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)

	inputs := [][2]string{{"180", "75"}, {"160", "45"}, {"170", "90"}}
	for i, in := range inputs {
		res, err := bmi.Compute(in[0], in[1])
		if err != nil {
			t.Fatalf("Compute: %v", err)
		}
		if _, err := s.Record(ctx, NewEntry(res, base.Add(time.Duration(i)*time.Minute))); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	entries, err := s.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	newest := entries[0]
	if newest.BMI != "31.1" || newest.Category != bmi.Obese {
		t.Errorf("newest = %s %s, want 31.1 Obese", newest.BMI, newest.Category)
	}
	if newest.Height != 170 || newest.Weight != 90 {
		t.Errorf("newest inputs = %v/%v", newest.Height, newest.Weight)
	}
	if !newest.CreatedAt.Equal(base.Add(2 * time.Minute)) {
		t.Errorf("created_at = %v", newest.CreatedAt)
	}
	if entries[2].BMI != "23.1" {
		t.Errorf("oldest = %s, want 23.1", entries[2].BMI)
	}
}

func TestRecentLimit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	res, _ := bmi.Compute("180", "75")

	for i := 0; i < 5; i++ {
		if _, err := s.Record(ctx, NewEntry(res, time.Now())); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	entries, err := s.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("expected 2 entries, got %d", len(entries))
	}
}

func TestClear(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	res, _ := bmi.Compute("160", "45")

	s.Record(ctx, NewEntry(res, time.Now()))
	s.Record(ctx, NewEntry(res, time.Now()))

	n, err := s.Clear(ctx)
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if n != 2 {
		t.Errorf("cleared %d, want 2", n)
	}

	entries, err := s.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty history, got %d", len(entries))
	}
}

func TestReopenKeepsEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	ctx := context.Background()
	res, _ := bmi.Compute("180", "75")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := s.Record(ctx, NewEntry(res, time.Now())); err != nil {
		t.Fatalf("Record: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	entries, err := s.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 1 || entries[0].Category != bmi.Normal {
		t.Errorf("unexpected entries after reopen: %+v", entries)
	}
	if s.Path() != path {
		t.Errorf("Path() = %q, want %q", s.Path(), path)
	}
}
