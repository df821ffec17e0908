package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/mhsendur/StockPriceTracker/internal/model"
)

func points(closes ...float64) []model.HistoryPoint {
	base := time.Date(2025, 1, 2, 9, 30, 0, 0, time.UTC)
	out := make([]model.HistoryPoint, len(closes))
	for i, c := range closes {
		out[i] = model.HistoryPoint{Time: base.Add(time.Duration(i) * 5 * time.Minute), Close: c}
	}
	return out
}

func TestRenderChart_Dimensions(t *testing.T) {
	chart := renderChart(points(100, 101, 102, 103, 104, 105), 4)
	lines := strings.Split(chart, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(lines))
	}
	for i, line := range lines {
		if n := len([]rune(line)); n != 6 {
			t.Errorf("row %d: expected 6 columns, got %d", i, n)
		}
	}
}

func TestRenderChart_Empty(t *testing.T) {
	if got := renderChart(nil, 4); got != "" {
		t.Errorf("expected empty chart, got %q", got)
	}
}

func TestRenderChart_FlatSeriesVisible(t *testing.T) {
	chart := renderChart(points(100, 100, 100), 4)
	if strings.TrimSpace(chart) == "" {
		t.Error("flat series must still render a visible band")
	}
}

func TestRenderChart_ExtremesTouchBounds(t *testing.T) {
	chart := renderChart(points(100, 200), 4)
	lines := strings.Split(chart, "\n")
	top := []rune(lines[0])
	if top[1] != '█' {
		t.Errorf("high point must fill the top row, got %q", top[1])
	}
	if top[0] != ' ' {
		t.Errorf("low point must not reach the top row, got %q", top[0])
	}
}

func TestChartAxis(t *testing.T) {
	series := points(100, 101, 102, 103, 104, 105, 106, 107, 108, 109, 110, 111)
	axis := chartAxis(series)
	if !strings.HasPrefix(axis, "09:30") {
		t.Errorf("axis start: %q", axis)
	}
	if !strings.HasSuffix(axis, "10:25") {
		t.Errorf("axis end: %q", axis)
	}
	if len(axis) != len(series) {
		t.Errorf("axis width %d, chart width %d", len(axis), len(series))
	}
}

func TestChartRange(t *testing.T) {
	got := chartRange(points(101.5, 99.25, 103.75))
	if got != "low $99.25  high $103.75" {
		t.Errorf("range line: %q", got)
	}
}
