package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/mhsendur/StockPriceTracker/internal/model"
)

// chartHeight is the number of terminal rows the trend chart occupies.
const chartHeight = 6

var blockRunes = []rune(" ▁▂▃▄▅▆▇█")

// renderChart draws a block-character trend chart, one column per point,
// newest on the right. Returns the chart body without title or axis labels.
func renderChart(points []model.HistoryPoint, height int) string {
	if len(points) == 0 || height <= 0 {
		return ""
	}

	low, high := points[0].Close, points[0].Close
	for _, p := range points {
		if p.Close < low {
			low = p.Close
		}
		if p.Close > high {
			high = p.Close
		}
	}
	span := high - low
	if span == 0 {
		span = 1 // flat series renders as a mid-level band
	}

	// Each column gets a level in [0, height*8]: full cells plus a partial
	// top cell out of the eight block steps.
	levels := make([]int, len(points))
	for i, p := range points {
		frac := (p.Close - low) / span
		levels[i] = int(math.Round(frac * float64(height*8)))
		if levels[i] == 0 {
			levels[i] = 1 // keep the lowest point visible
		}
	}

	var b strings.Builder
	for row := height - 1; row >= 0; row-- {
		for _, lv := range levels {
			cell := lv - row*8
			switch {
			case cell <= 0:
				b.WriteRune(' ')
			case cell >= 8:
				b.WriteRune('█')
			default:
				b.WriteRune(blockRunes[cell])
			}
		}
		if row > 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// chartAxis returns the label line under the chart: first and last HH:MM
// stamps padded to the chart width.
func chartAxis(points []model.HistoryPoint) string {
	if len(points) == 0 {
		return ""
	}
	first := points[0].Label()
	last := points[len(points)-1].Label()
	gap := len(points) - len(first) - len(last)
	if gap < 1 {
		return first
	}
	return first + strings.Repeat(" ", gap) + last
}

// chartRange returns the "low – high" summary line for the chart.
func chartRange(points []model.HistoryPoint) string {
	if len(points) == 0 {
		return ""
	}
	low, high := points[0].Close, points[0].Close
	for _, p := range points {
		if p.Close < low {
			low = p.Close
		}
		if p.Close > high {
			high = p.Close
		}
	}
	return fmt.Sprintf("low $%.2f  high $%.2f", low, high)
}
