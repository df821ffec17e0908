package engine

import "github.com/mhsendur/StockPriceTracker/internal/model"

// Presenter receives display updates from the refresh engine. Row handles are
// allocated by the watchlist store; the presenter only keeps them alongside
// whatever it materializes for a row.
type Presenter interface {
	// UpsertRow creates or updates the table row identified by u.Handle.
	UpsertRow(u model.RowUpdate)
	// RemoveRow deletes the row for a symbol that left the watchlist.
	RemoveRow(h model.RowHandle)
	// RenderChart draws the trend chart for symbol. An empty series renders a
	// "no data" state; an empty symbol means nothing is selected.
	RenderChart(symbol string, points []model.HistoryPoint)
	// SetStatus shows the last-refreshed line.
	SetStatus(text string)
}
