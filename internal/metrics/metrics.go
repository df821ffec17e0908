package metrics

import (
	"errors"
	"fmt"

	"github.com/mhsendur/StockPriceTracker/internal/model"
)

// ErrZeroOpen reports a snapshot whose day-open price is zero. Division by a
// zero open is treated as a data-quality failure, same as a failed fetch.
var ErrZeroOpen = errors.New("day open is zero")

// Compute derives change, percent change, and sign from a snapshot.
func Compute(snap *model.Snapshot) (model.RowMetrics, error) {
	if snap == nil {
		return model.RowMetrics{}, errors.New("nil snapshot")
	}
	if snap.DayOpen == 0 {
		return model.RowMetrics{}, ErrZeroOpen
	}

	change := snap.Price - snap.DayOpen
	m := model.RowMetrics{
		Symbol:  snap.Symbol,
		Price:   snap.Price,
		Change:  change,
		Percent: change / snap.DayOpen * 100,
	}
	switch {
	case change > 0:
		m.Sign = model.SignPositive
	case change < 0:
		m.Sign = model.SignNegative
	default:
		m.Sign = model.SignNeutral
	}
	return m, nil
}

// FormatRow renders computed metrics into the display tuple for one row.
func FormatRow(h model.RowHandle, m model.RowMetrics) model.RowUpdate {
	return model.RowUpdate{
		Handle:  h,
		Symbol:  m.Symbol,
		Price:   fmt.Sprintf("$%.2f", m.Price),
		Change:  fmt.Sprintf("%+.2f", m.Change),
		Percent: fmt.Sprintf("%+.2f%%", m.Percent),
		Sign:    m.Sign,
	}
}

// ErrorRow renders the per-symbol failure display state.
func ErrorRow(h model.RowHandle, symbol string) model.RowUpdate {
	return model.RowUpdate{
		Handle:  h,
		Symbol:  symbol,
		Price:   "Error",
		Change:  "N/A",
		Percent: "N/A",
		Sign:    model.SignNeutral,
	}
}

// LoadingRow renders the placeholder shown between row creation and the first
// completed fetch.
func LoadingRow(h model.RowHandle, symbol string) model.RowUpdate {
	return model.RowUpdate{
		Handle:  h,
		Symbol:  symbol,
		Price:   "Loading...",
		Change:  "Loading...",
		Percent: "Loading...",
		Sign:    model.SignNeutral,
	}
}
