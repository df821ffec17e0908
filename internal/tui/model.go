package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mhsendur/StockPriceTracker/internal/model"
)

// Styles.
var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	colHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	gainStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	lossStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	neutralStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	chartStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	highlightBG    = lipgloss.Color("236")
)

func signStyle(s model.Sign) lipgloss.Style {
	switch s {
	case model.SignPositive:
		return gainStyle
	case model.SignNegative:
		return lossStyle
	default:
		return neutralStyle
	}
}

// hlStyle returns a copy of s with the highlight background applied when hl is true.
func hlStyle(s lipgloss.Style, hl bool) lipgloss.Style {
	if hl {
		return s.Background(highlightBG)
	}
	return s
}

// Actions is the subset of the refresh engine the UI drives.
type Actions interface {
	AddSymbol(raw string)
	RemoveSymbol(raw string)
	SelectSymbol(raw string)
}

// Model is the bubbletea model for the dashboard.
type Model struct {
	eng  Actions
	quit func() // cancels the engine context

	rows   []model.RowUpdate // display order == watchlist insertion order
	cursor int

	chartSymbol string
	chart       []model.HistoryPoint
	status      string

	input         textinput.Model
	width, height int
}

// NewModel creates the dashboard model. quit is invoked once when the user
// exits, before the program shuts down.
func NewModel(eng Actions, quit func()) Model {
	ti := textinput.New()
	ti.Placeholder = "add symbol"
	ti.CharLimit = 10
	ti.Width = 12
	ti.Focus()
	return Model{
		eng:    eng,
		quit:   quit,
		status: "Last Updated: Not yet updated",
		input:  ti,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quit()
			return m, tea.Quit

		case tea.KeyEnter:
			raw := m.input.Value()
			m.input.Reset()
			if strings.TrimSpace(raw) == "" {
				return m, nil
			}
			eng := m.eng
			return m, func() tea.Msg {
				eng.AddSymbol(raw)
				return nil
			}

		case tea.KeyUp, tea.KeyDown:
			if len(m.rows) == 0 {
				return m, nil
			}
			if msg.Type == tea.KeyUp && m.cursor > 0 {
				m.cursor--
			}
			if msg.Type == tea.KeyDown && m.cursor < len(m.rows)-1 {
				m.cursor++
			}
			sym := m.rows[m.cursor].Symbol
			eng := m.eng
			return m, func() tea.Msg {
				eng.SelectSymbol(sym)
				return nil
			}

		case tea.KeyDelete, tea.KeyCtrlX:
			if len(m.rows) == 0 {
				return m, nil
			}
			sym := m.rows[m.cursor].Symbol
			eng := m.eng
			return m, func() tea.Msg {
				eng.RemoveSymbol(sym)
				return nil
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case rowMsg:
		u := model.RowUpdate(msg)
		for i, r := range m.rows {
			if r.Handle == u.Handle {
				m.rows[i] = u
				return m, nil
			}
		}
		m.rows = append(m.rows, u)
		return m, nil

	case rowRemovedMsg:
		for i, r := range m.rows {
			if r.Handle == model.RowHandle(msg) {
				m.rows = append(m.rows[:i], m.rows[i+1:]...)
				break
			}
		}
		if m.cursor >= len(m.rows) && m.cursor > 0 {
			m.cursor = len(m.rows) - 1
		}
		return m, nil

	case chartMsg:
		m.chartSymbol = msg.symbol
		m.chart = msg.points
		return m, nil

	case statusMsg:
		m.status = string(msg)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

const rowFormat = "%-8s %14s %12s %12s"

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Real-Time Stock Price Tracker"))
	b.WriteString("\n\n")

	b.WriteString(colHeaderStyle.Render(fmt.Sprintf(rowFormat, "Symbol", "Price", "Change", "% Change")))
	b.WriteByte('\n')
	for i, r := range m.rows {
		line := fmt.Sprintf(rowFormat, r.Symbol, r.Price, r.Change, r.Percent)
		b.WriteString(hlStyle(signStyle(r.Sign), i == m.cursor).Render(line))
		b.WriteByte('\n')
	}
	if len(m.rows) == 0 {
		b.WriteString(dimStyle.Render("watchlist is empty"))
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(dimStyle.Render(m.status))
	b.WriteString("\n\n")

	b.WriteString(m.renderChartSection())
	b.WriteString("\n\n")

	b.WriteString("Add Stock: ")
	b.WriteString(m.input.View())
	b.WriteByte('\n')
	b.WriteString(dimStyle.Render("enter add · ↑/↓ select · del remove · esc quit"))

	return b.String()
}

func (m Model) renderChartSection() string {
	if m.chartSymbol == "" {
		return dimStyle.Render("No Stocks Selected")
	}
	if len(m.chart) == 0 {
		return titleStyle.Render("Live Price Trend: "+m.chartSymbol) + "\n" +
			dimStyle.Render("no data")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Live Price Trend: " + m.chartSymbol))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render(chartRange(m.chart)))
	b.WriteByte('\n')
	b.WriteString(chartStyle.Render(renderChart(m.chart, chartHeight)))
	b.WriteByte('\n')
	b.WriteString(dimStyle.Render(chartAxis(m.chart)))
	return b.String()
}
