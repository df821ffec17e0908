package tui

import (
	"log"

	"github.com/mhsendur/StockPriceTracker/internal/model"
)

// LogPresenter writes display updates to the process log instead of a
// terminal UI. Used for headless runs (ui.mode: log).
type LogPresenter struct{}

func NewLogPresenter() *LogPresenter { return &LogPresenter{} }

func (l *LogPresenter) UpsertRow(u model.RowUpdate) {
	log.Printf("[INFO] row %s: price=%s change=%s percent=%s sign=%s",
		u.Symbol, u.Price, u.Change, u.Percent, u.Sign)
}

func (l *LogPresenter) RemoveRow(h model.RowHandle) {
	log.Printf("[INFO] row removed: handle=%d", h)
}

func (l *LogPresenter) RenderChart(symbol string, points []model.HistoryPoint) {
	if symbol == "" {
		log.Println("[INFO] chart: no symbol selected")
		return
	}
	log.Printf("[INFO] chart %s: %d points", symbol, len(points))
}

func (l *LogPresenter) SetStatus(text string) {
	log.Printf("[INFO] %s", text)
}
