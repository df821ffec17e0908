package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/mhsendur/StockPriceTracker/internal/model"
)

// RESTGateway implements Gateway against a self-hosted quote API, for
// deployments that proxy or cache upstream data behind their own service.
type RESTGateway struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewRESTGateway creates a REST gateway with optional proxy support.
func NewRESTGateway(baseURL, apiKey, proxyURL string) *RESTGateway {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &RESTGateway{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   15 * time.Second,
			Transport: transport,
		},
	}
}

func (g *RESTGateway) Name() string { return "rest" }

func (g *RESTGateway) get(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	if g.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.APIKey)
	}
	resp, err := g.Client.Do(req)
	if err != nil {
		return fmt.Errorf("quote api fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("quote api: status %d, body: %s", resp.StatusCode, string(body))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("quote api decode: %w", err)
	}
	return nil
}

func (g *RESTGateway) FetchSnapshot(ctx context.Context, symbol string) (*model.Snapshot, error) {
	endpoint := fmt.Sprintf("%s/api/v1/quote?symbol=%s", g.BaseURL, url.QueryEscape(symbol))
	var result struct {
		Price   float64 `json:"price"`
		DayOpen float64 `json:"day_open"`
	}
	if err := g.get(ctx, endpoint, &result); err != nil {
		return nil, err
	}
	return &model.Snapshot{
		Symbol:    symbol,
		Price:     result.Price,
		DayOpen:   result.DayOpen,
		FetchedAt: time.Now(),
	}, nil
}

func (g *RESTGateway) FetchHistory(ctx context.Context, symbol, period, granularity string) ([]model.HistoryPoint, error) {
	endpoint := fmt.Sprintf("%s/api/v1/history?symbol=%s&period=%s&interval=%s",
		g.BaseURL, url.QueryEscape(symbol), url.QueryEscape(period), url.QueryEscape(granularity))
	var rows []struct {
		Timestamp int64   `json:"timestamp"`
		Close     float64 `json:"close"`
	}
	if err := g.get(ctx, endpoint, &rows); err != nil {
		return nil, err
	}
	points := make([]model.HistoryPoint, len(rows))
	for i, r := range rows {
		points[i] = model.HistoryPoint{Time: time.Unix(r.Timestamp, 0), Close: r.Close}
	}
	// Ensure chronological order
	sort.Slice(points, func(i, j int) bool { return points[i].Time.Before(points[j].Time) })
	return points, nil
}
