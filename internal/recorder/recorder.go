package recorder

import "time"

// QuoteRecord is one successfully fetched and computed row.
type QuoteRecord struct {
	Symbol  string
	Price   float64
	DayOpen float64
	Change  float64
	Percent float64
}

// CycleRecord summarizes one completed refresh cycle.
type CycleRecord struct {
	Symbols  int
	Failures int
	Duration time.Duration
}

// Recorder persists fetched quotes and cycle summaries for later inspection.
// Records are write-only audit output; nothing is ever read back into the
// watchlist or the chart.
type Recorder interface {
	RecordQuote(q *QuoteRecord) error
	RecordCycle(c *CycleRecord) error
	// PruneBefore deletes records older than cutoff and reports how many rows
	// were removed.
	PruneBefore(cutoff time.Time) (int64, error)
	Close() error
}
