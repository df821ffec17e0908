package gateway

import (
	"context"
	"time"

	"github.com/mhsendur/StockPriceTracker/internal/model"
)

// MockGateway returns controllable fixed data for development and testing.
type MockGateway struct {
	Price   float64
	DayOpen float64
	History []model.HistoryPoint
}

func (m *MockGateway) Name() string { return "mock" }

func (m *MockGateway) FetchSnapshot(_ context.Context, symbol string) (*model.Snapshot, error) {
	open := m.DayOpen
	if open == 0 {
		open = m.Price * 0.99
	}
	return &model.Snapshot{
		Symbol:    symbol,
		Price:     m.Price,
		DayOpen:   open,
		FetchedAt: time.Now(),
	}, nil
}

func (m *MockGateway) FetchHistory(_ context.Context, _, _, granularity string) ([]model.HistoryPoint, error) {
	if m.History != nil {
		return m.History, nil
	}
	step := 5 * time.Minute
	if d, err := time.ParseDuration(granularity); err == nil {
		step = d
	}
	return generateMockHistory(m.Price, 48, step), nil
}

func generateMockHistory(basePrice float64, count int, step time.Duration) []model.HistoryPoint {
	points := make([]model.HistoryPoint, count)
	start := time.Now().Add(-time.Duration(count) * step)
	for i := 0; i < count; i++ {
		points[i] = model.HistoryPoint{
			Time:  start.Add(time.Duration(i) * step),
			Close: basePrice * (1 + float64(i-count/2)*0.001),
		}
	}
	return points
}
