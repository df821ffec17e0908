// Package engine drives the periodic watchlist refresh cycle.
package engine

import (
	"context"
	"log"
	"time"

	"github.com/mhsendur/StockPriceTracker/internal/gateway"
	"github.com/mhsendur/StockPriceTracker/internal/metrics"
	"github.com/mhsendur/StockPriceTracker/internal/model"
	"github.com/mhsendur/StockPriceTracker/internal/recorder"
	"github.com/mhsendur/StockPriceTracker/internal/series"
	"github.com/mhsendur/StockPriceTracker/internal/watchlist"
)

const statusTimeLayout = "2006-01-02 15:04:05"

// Options configures the refresh engine.
type Options struct {
	Interval     time.Duration // delay between the end of one cycle and the next
	WindowSize   int           // chart points kept from the fetched history
	Period       string        // history lookback, e.g. "1d"
	Granularity  string        // history bar size, e.g. "5m"
	FetchTimeout time.Duration // per-call bound on gateway fetches
}

func (o *Options) fillDefaults() {
	if o.Interval <= 0 {
		o.Interval = 30 * time.Second
	}
	if o.WindowSize <= 0 {
		o.WindowSize = series.DefaultWindowSize
	}
	if o.Period == "" {
		o.Period = "1d"
	}
	if o.Granularity == "" {
		o.Granularity = "5m"
	}
	if o.FetchTimeout <= 0 {
		o.FetchTimeout = 10 * time.Second
	}
}

// Engine owns the refresh loop. All state mutation happens on the loop
// goroutine: scheduled cycles and user actions are interleaved there, never
// concurrent with each other, so cycles cannot overlap and an add/remove
// cannot race a running cycle.
type Engine struct {
	gw      gateway.Gateway
	store   *watchlist.Store
	pres    Presenter
	rec     recorder.Recorder
	opts    Options
	actions chan func(context.Context)
	done    chan struct{}
}

// New creates an Engine. A nil rec disables recording.
func New(gw gateway.Gateway, store *watchlist.Store, pres Presenter, rec recorder.Recorder, opts Options) *Engine {
	opts.fillDefaults()
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	return &Engine{
		gw:      gw,
		store:   store,
		pres:    pres,
		rec:     rec,
		opts:    opts,
		actions: make(chan func(context.Context), 16),
		done:    make(chan struct{}),
	}
}

// Seed adds the initial symbols and shows their placeholder rows. Call before
// Run; the first cycle fills the rows in.
func (e *Engine) Seed(symbols []string) {
	for _, raw := range symbols {
		sym := model.NormalizeSymbol(raw)
		if h, ok := e.store.Add(sym); ok {
			e.pres.UpsertRow(metrics.LoadingRow(h, sym))
		}
	}
}

// Run drives the refresh loop until ctx is cancelled. The first cycle starts
// immediately; each following cycle is armed a fixed delay after the previous
// one finished, so slow fetches stretch the effective period but never stack.
// An in-flight cycle always runs to completion before Run returns.
func (e *Engine) Run(ctx context.Context) {
	defer close(e.done)
	log.Printf("[INFO] refresh engine started (interval=%s)", e.opts.Interval)

	timer := time.NewTimer(0)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Println("[INFO] refresh engine stopped")
			return
		case fn := <-e.actions:
			fn(ctx)
		case <-timer.C:
			e.runCycle(ctx)
			timer.Reset(e.opts.Interval)
		}
	}
}

// AddSymbol adds a symbol to the watchlist and refreshes its row once,
// without waiting for the next scheduled cycle.
func (e *Engine) AddSymbol(raw string) {
	e.do(func(ctx context.Context) { e.handleAdd(ctx, raw) })
}

// RemoveSymbol drops a symbol and its row; the chart follows the selection.
func (e *Engine) RemoveSymbol(raw string) {
	e.do(func(ctx context.Context) { e.handleRemove(ctx, raw) })
}

// SelectSymbol changes the charted symbol and redraws immediately.
func (e *Engine) SelectSymbol(raw string) {
	e.do(func(ctx context.Context) { e.handleSelect(ctx, raw) })
}

// Done returns a channel closed once the run loop has exited, after any
// in-flight cycle finished.
func (e *Engine) Done() <-chan struct{} { return e.done }

// do hands an action to the loop goroutine, where it runs serialized with
// refresh cycles.
func (e *Engine) do(fn func(context.Context)) {
	select {
	case e.actions <- fn:
	case <-e.done:
	}
}

func (e *Engine) handleAdd(ctx context.Context, raw string) {
	sym := model.NormalizeSymbol(raw)
	h, ok := e.store.Add(sym)
	if !ok {
		log.Printf("[INFO] add %q ignored: empty or already tracked", raw)
		return
	}
	e.pres.UpsertRow(metrics.LoadingRow(h, sym))
	e.refreshRow(ctx, sym)
	if e.store.Selection() == sym {
		e.refreshChart(ctx)
	}
}

func (e *Engine) handleRemove(ctx context.Context, raw string) {
	before := e.store.Selection()
	h, ok := e.store.Remove(raw)
	if !ok {
		return
	}
	e.pres.RemoveRow(h)
	if sel := e.store.Selection(); sel != before {
		e.refreshChart(ctx)
	}
}

func (e *Engine) handleSelect(ctx context.Context, raw string) {
	if e.store.Select(raw) {
		e.refreshChart(ctx)
	}
}

// runCycle refreshes every row in watchlist order, then the chart, then the
// status line. The symbol list is fixed at cycle start; symbols added while a
// fetch is in progress are picked up next cycle.
func (e *Engine) runCycle(ctx context.Context) {
	started := time.Now()
	symbols := e.store.Symbols()

	failures := 0
	for _, sym := range symbols {
		if !e.refreshRow(ctx, sym) {
			failures++
		}
	}
	e.refreshChart(ctx)

	completed := time.Now()
	e.pres.SetStatus("Last Updated: " + completed.Format(statusTimeLayout))

	if err := e.rec.RecordCycle(&recorder.CycleRecord{
		Symbols:  len(symbols),
		Failures: failures,
		Duration: completed.Sub(started),
	}); err != nil {
		log.Printf("[ERROR] record cycle: %v", err)
	}
}

// refreshRow fetches and displays one symbol. Any failure, including a zero
// day-open, degrades to the error row and never aborts the caller.
func (e *Engine) refreshRow(ctx context.Context, sym string) bool {
	h, ok := e.store.Handle(sym)
	if !ok {
		return false
	}

	fctx, cancel := context.WithTimeout(ctx, e.opts.FetchTimeout)
	snap, err := e.gw.FetchSnapshot(fctx, sym)
	cancel()

	var m model.RowMetrics
	if err == nil {
		m, err = metrics.Compute(snap)
	}
	if err != nil {
		log.Printf("[WARN] refresh %s: %v", sym, err)
		e.pres.UpsertRow(metrics.ErrorRow(h, sym))
		return false
	}

	e.pres.UpsertRow(metrics.FormatRow(h, m))
	if err := e.rec.RecordQuote(&recorder.QuoteRecord{
		Symbol:  m.Symbol,
		Price:   m.Price,
		DayOpen: snap.DayOpen,
		Change:  m.Change,
		Percent: m.Percent,
	}); err != nil {
		log.Printf("[ERROR] record quote %s: %v", sym, err)
	}
	return true
}

// refreshChart rebuilds the chart window from a fresh history fetch for the
// current selection. No cross-cycle series state is kept.
func (e *Engine) refreshChart(ctx context.Context) {
	sym := e.store.Selection()
	if sym == "" {
		e.pres.RenderChart("", nil)
		return
	}

	fctx, cancel := context.WithTimeout(ctx, e.opts.FetchTimeout)
	points, err := e.gw.FetchHistory(fctx, sym, e.opts.Period, e.opts.Granularity)
	cancel()
	if err != nil {
		log.Printf("[WARN] history %s: %v", sym, err)
		e.pres.RenderChart(sym, nil)
		return
	}
	e.pres.RenderChart(sym, series.Window(points, e.opts.WindowSize))
}
