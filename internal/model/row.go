package model

// Sign buckets a row's change for display coloring.
type Sign int

const (
	SignNeutral Sign = iota
	SignPositive
	SignNegative
)

func (s Sign) String() string {
	switch s {
	case SignPositive:
		return "positive"
	case SignNegative:
		return "negative"
	default:
		return "neutral"
	}
}

// RowHandle identifies a display row. Handles are allocated by the watchlist
// store when a symbol is added and are never reused within a run.
type RowHandle int64

// RowMetrics holds the figures derived from one snapshot.
type RowMetrics struct {
	Symbol  string
	Price   float64
	Change  float64
	Percent float64
	Sign    Sign
}

// RowUpdate is the formatted display tuple handed to the presenter.
type RowUpdate struct {
	Handle  RowHandle
	Symbol  string
	Price   string
	Change  string
	Percent string
	Sign    Sign
}
