// Package tui renders the watchlist dashboard in the terminal.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mhsendur/StockPriceTracker/internal/model"
)

// Messages delivered from the engine into the bubbletea program.
type rowMsg model.RowUpdate
type rowRemovedMsg model.RowHandle
type chartMsg struct {
	symbol string
	points []model.HistoryPoint
}
type statusMsg string

// Presenter bridges the engine's presenter contract onto a running bubbletea
// program. Sends block briefly until the program's event loop is consuming,
// so the engine must run on its own goroutine.
type Presenter struct {
	prog *tea.Program
}

func NewPresenter() *Presenter { return &Presenter{} }

// Attach binds the presenter to its program. Must happen before the engine
// starts emitting updates.
func (p *Presenter) Attach(prog *tea.Program) { p.prog = prog }

func (p *Presenter) UpsertRow(u model.RowUpdate) { p.prog.Send(rowMsg(u)) }

func (p *Presenter) RemoveRow(h model.RowHandle) { p.prog.Send(rowRemovedMsg(h)) }

func (p *Presenter) RenderChart(symbol string, points []model.HistoryPoint) {
	p.prog.Send(chartMsg{symbol: symbol, points: points})
}

func (p *Presenter) SetStatus(text string) { p.prog.Send(statusMsg(text)) }
