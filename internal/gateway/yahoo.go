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

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/time/rate"

	"github.com/mhsendur/StockPriceTracker/internal/model"
)

const yahooBaseURL = "https://query1.finance.yahoo.com"

// YahooGateway implements Gateway using the Yahoo Finance public chart API.
type YahooGateway struct {
	Client  *http.Client
	BaseURL string
	// Limiter keeps the per-symbol polling of a full watchlist under the
	// unauthenticated API's tolerance.
	Limiter   *rate.Limiter
	SymbolMap map[string]string // maps internal symbol to Yahoo ticker
}

// NewYahooGateway creates a Yahoo Finance gateway with optional proxy support.
func NewYahooGateway(proxyURL string) *YahooGateway {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &YahooGateway{
		Client: &http.Client{
			Timeout:   15 * time.Second,
			Transport: transport,
		},
		BaseURL: yahooBaseURL,
		Limiter: rate.NewLimiter(rate.Every(200*time.Millisecond), 5),
		SymbolMap: map[string]string{
			"SPX500": "^GSPC",
			"SPX":    "^GSPC",
			"SP500":  "^GSPC",
		},
	}
}

func (g *YahooGateway) Name() string { return "yahoo" }

func (g *YahooGateway) yahooSymbol(symbol string) string {
	if mapped, ok := g.SymbolMap[symbol]; ok {
		return mapped
	}
	return symbol
}

// yahooChart is the response structure from the Yahoo Finance chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open  []interface{} `json:"open"`
					Close []interface{} `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func toFloat(v interface{}) float64 {
	if v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

// bar is one (time, open, close) sample decoded from a chart response.
type bar struct {
	Time  time.Time
	Open  float64
	Close float64
}

func (g *YahooGateway) fetchChart(ctx context.Context, symbol, interval, rng string) ([]bar, error) {
	if err := g.Limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("yahoo rate limit: %w", err)
	}

	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=%s&range=%s",
		g.BaseURL, url.PathEscape(g.yahooSymbol(symbol)), interval, rng)

	var body []byte
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("User-Agent", "Mozilla/5.0")

		resp, err := g.Client.Do(req)
		if err != nil {
			return fmt.Errorf("yahoo fetch: %w", err)
		}
		defer resp.Body.Close()

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("yahoo read body: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 10 * time.Second
	if err := backoff.Retry(operation, backoff.WithContext(bo, ctx)); err != nil {
		return nil, err
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return nil, fmt.Errorf("yahoo: no data returned for %s", symbol)
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo: no quote data for %s", symbol)
	}
	quote := result.Indicators.Quote[0]
	bars := make([]bar, 0, len(result.Timestamp))

	for i, ts := range result.Timestamp {
		if i >= len(quote.Close) || i >= len(quote.Open) {
			break
		}
		o := toFloat(quote.Open[i])
		c := toFloat(quote.Close[i])
		if o == 0 && c == 0 {
			continue // skip null bars (halts, pre-open gaps)
		}
		bars = append(bars, bar{Time: time.Unix(ts, 0), Open: o, Close: c})
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars, nil
}

// FetchSnapshot derives the current price from the latest intraday minute bar
// and the day-open from the first bar of the session.
func (g *YahooGateway) FetchSnapshot(ctx context.Context, symbol string) (*model.Snapshot, error) {
	bars, err := g.fetchChart(ctx, symbol, "1m", "1d")
	if err != nil {
		return nil, err
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("yahoo: empty intraday series for %s", symbol)
	}
	return &model.Snapshot{
		Symbol:    symbol,
		Price:     bars[len(bars)-1].Close,
		DayOpen:   bars[0].Open,
		FetchedAt: time.Now(),
	}, nil
}

func (g *YahooGateway) FetchHistory(ctx context.Context, symbol, period, granularity string) ([]model.HistoryPoint, error) {
	bars, err := g.fetchChart(ctx, symbol, granularity, period)
	if err != nil {
		return nil, err
	}
	points := make([]model.HistoryPoint, len(bars))
	for i, b := range bars {
		points[i] = model.HistoryPoint{Time: b.Time, Close: b.Close}
	}
	return points, nil
}
