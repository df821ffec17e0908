package metrics

import (
	"errors"
	"testing"

	"github.com/mhsendur/StockPriceTracker/internal/model"
)

func TestCompute_Basic(t *testing.T) {
	tests := []struct {
		name    string
		price   float64
		dayOpen float64
		change  float64
		percent float64
		sign    model.Sign
	}{
		{"gain", 101.50, 100.00, 1.50, 1.50, model.SignPositive},
		{"loss", 98.00, 100.00, -2.00, -2.00, model.SignNegative},
		{"flat", 100.00, 100.00, 0, 0, model.SignNeutral},
		{"small open", 1.02, 1.00, 0.02, 2.0, model.SignPositive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Compute(&model.Snapshot{Symbol: "AAPL", Price: tt.price, DayOpen: tt.dayOpen})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if m.Change != tt.change {
				t.Errorf("change: expected %v, got %v", tt.change, m.Change)
			}
			if m.Percent != tt.percent {
				t.Errorf("percent: expected %v, got %v", tt.percent, m.Percent)
			}
			if m.Sign != tt.sign {
				t.Errorf("sign: expected %v, got %v", tt.sign, m.Sign)
			}
			// percentChange == absoluteChange / dayOpen * 100 exactly
			if m.Percent != m.Change/tt.dayOpen*100 {
				t.Errorf("percent/change mismatch: %v vs %v", m.Percent, m.Change/tt.dayOpen*100)
			}
		})
	}
}

func TestCompute_ZeroOpen(t *testing.T) {
	_, err := Compute(&model.Snapshot{Symbol: "X", Price: 10, DayOpen: 0})
	if !errors.Is(err, ErrZeroOpen) {
		t.Fatalf("expected ErrZeroOpen, got %v", err)
	}
}

func TestCompute_NilSnapshot(t *testing.T) {
	if _, err := Compute(nil); err == nil {
		t.Fatal("expected error for nil snapshot")
	}
}

func TestFormatRow(t *testing.T) {
	m, err := Compute(&model.Snapshot{Symbol: "AAPL", Price: 101.50, DayOpen: 100.00})
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	u := FormatRow(7, m)
	if u.Handle != 7 || u.Symbol != "AAPL" {
		t.Errorf("identity: got handle=%d symbol=%s", u.Handle, u.Symbol)
	}
	if u.Price != "$101.50" {
		t.Errorf("price: got %q", u.Price)
	}
	if u.Change != "+1.50" {
		t.Errorf("change: got %q", u.Change)
	}
	if u.Percent != "+1.50%" {
		t.Errorf("percent: got %q", u.Percent)
	}
	if u.Sign != model.SignPositive {
		t.Errorf("sign: got %v", u.Sign)
	}
}

func TestErrorRow(t *testing.T) {
	u := ErrorRow(3, "GOOG")
	if u.Price != "Error" || u.Change != "N/A" || u.Percent != "N/A" {
		t.Errorf("unexpected error row: %+v", u)
	}
	if u.Sign != model.SignNeutral {
		t.Errorf("error rows must be neutral, got %v", u.Sign)
	}
}
