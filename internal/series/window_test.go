package series

import (
	"testing"
	"time"

	"github.com/mhsendur/StockPriceTracker/internal/model"
)

func makePoints(n int) []model.HistoryPoint {
	start := time.Date(2025, 1, 2, 9, 30, 0, 0, time.UTC)
	points := make([]model.HistoryPoint, n)
	for i := range points {
		points[i] = model.HistoryPoint{
			Time:  start.Add(time.Duration(i) * 5 * time.Minute),
			Close: 100 + float64(i),
		}
	}
	return points
}

func TestWindow_Truncates(t *testing.T) {
	points := makePoints(50)
	got := Window(points, 24)
	if len(got) != 24 {
		t.Fatalf("expected 24 points, got %d", len(got))
	}
	// Must be exactly the last 24 in original order.
	for i, p := range got {
		want := points[50-24+i]
		if p != want {
			t.Errorf("point %d: expected %+v, got %+v", i, want, p)
		}
	}
}

func TestWindow_ShortSeries(t *testing.T) {
	points := makePoints(10)
	got := Window(points, 24)
	if len(got) != 10 {
		t.Fatalf("expected all 10 points, got %d", len(got))
	}
}

func TestWindow_Empty(t *testing.T) {
	if got := Window(nil, 24); len(got) != 0 {
		t.Fatalf("expected empty window, got %d points", len(got))
	}
}

func TestWindow_NonPositiveSize(t *testing.T) {
	if got := Window(makePoints(5), 0); got != nil {
		t.Fatalf("expected nil for size 0, got %v", got)
	}
}

func TestHistoryPointLabel(t *testing.T) {
	p := model.HistoryPoint{Time: time.Date(2025, 1, 2, 14, 5, 0, 0, time.UTC)}
	if p.Label() != "14:05" {
		t.Errorf("expected 14:05, got %s", p.Label())
	}
}
