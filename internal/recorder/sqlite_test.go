package recorder

import (
	"path/filepath"
	"testing"
	"time"
)

func TestSQLiteRecorder_RoundTrip(t *testing.T) {
	r, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer r.Close()

	if err := r.RecordQuote(&QuoteRecord{Symbol: "AAPL", Price: 101.5, DayOpen: 100, Change: 1.5, Percent: 1.5}); err != nil {
		t.Fatalf("record quote: %v", err)
	}
	if err := r.RecordCycle(&CycleRecord{Symbols: 2, Failures: 1, Duration: 120 * time.Millisecond}); err != nil {
		t.Fatalf("record cycle: %v", err)
	}

	// A past cutoff removes nothing.
	n, err := r.PruneBefore(time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("prune: %v", err)
	}
	if n != 0 {
		t.Errorf("expected 0 pruned, got %d", n)
	}

	// A future cutoff removes both rows.
	n, err = r.PruneBefore(time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("prune: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 pruned, got %d", n)
	}
}

func TestSQLiteRecorder_MigrateIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	for i := 0; i < 2; i++ {
		r, err := NewSQLiteRecorder(path)
		if err != nil {
			t.Fatalf("open %d: %v", i, err)
		}
		if err := r.Close(); err != nil {
			t.Fatalf("close %d: %v", i, err)
		}
	}
}
