package gateway

import (
	"context"

	"github.com/mhsendur/StockPriceTracker/internal/model"
)

// Gateway defines the interface for fetching market data.
type Gateway interface {
	// FetchSnapshot returns the current price and day-open for one symbol.
	FetchSnapshot(ctx context.Context, symbol string) (*model.Snapshot, error)
	// FetchHistory returns a chronologically ordered series of recent close
	// prices for one symbol, e.g. period "1d" at granularity "5m".
	FetchHistory(ctx context.Context, symbol, period, granularity string) ([]model.HistoryPoint, error)
	Name() string
}
