package model

import (
	"strings"
	"time"
)

// NormalizeSymbol upper-cases a raw ticker and strips surrounding whitespace.
// Watchlist membership and row identity key off the normalized form.
func NormalizeSymbol(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// Snapshot is a single fetched (price, day-open) reading for one symbol.
// Snapshots live only for the tick that fetched them.
type Snapshot struct {
	Symbol    string
	Price     float64
	DayOpen   float64
	FetchedAt time.Time
}

// HistoryPoint is one close-price sample in a recent intraday series.
type HistoryPoint struct {
	Time  time.Time
	Close float64
}

// Label returns the HH:MM axis label for the point.
func (p HistoryPoint) Label() string {
	return p.Time.Format("15:04")
}
