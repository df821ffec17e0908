// Package series selects the chart window from a fetched history series.
package series

import "github.com/mhsendur/StockPriceTracker/internal/model"

// DefaultWindowSize covers two hours of five-minute bars.
const DefaultWindowSize = 24

// Window returns the last size points of a chronologically ordered series.
// When fewer points are available it returns them all; an empty input yields
// an empty window. The result aliases the input slice.
func Window(points []model.HistoryPoint, size int) []model.HistoryPoint {
	if size <= 0 {
		return nil
	}
	if len(points) > size {
		return points[len(points)-size:]
	}
	return points
}
