package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"notecal/config"
	"notecal/grid"
	"notecal/render"
)

// Lines reserved for the header row and the footer.
const previewChrome = 4

type previewModel struct {
	theme  render.Theme
	styles previewStyles
	cfg    *config.Config
	now    func() time.Time

	ref    time.Time
	grid   *grid.Grid
	err    error
	offset int
	height int
}

type previewStyles struct {
	footer  lipgloss.Style
	help    lipgloss.Style
	failure lipgloss.Style
}

func newPreviewStyles() previewStyles {
	base := lipgloss.NewStyle().Padding(0).Margin(0)

	return previewStyles{
		footer:  base.Copy().Foreground(lipgloss.Color("248")),
		help:    base.Copy().Foreground(lipgloss.Color("244")),
		failure: base.Copy().Foreground(lipgloss.Color("203")).Bold(true),
	}
}

func newPreviewModel(cfg *config.Config, ref time.Time, now func() time.Time) previewModel {
	m := previewModel{
		theme:  render.NewTheme(),
		styles: newPreviewStyles(),
		cfg:    cfg,
		now:    now,
		ref:    ref,
	}
	m.rebuild()
	m.offset = m.todayRow()
	m.clampOffset()
	return m
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "left", "h":
			m.shift(-1)
		case "right", "l":
			m.shift(1)
		case "p":
			m.shift(-7)
		case "n":
			m.shift(7)
		case "t", "T":
			m.ref = m.now()
			m.rebuild()
			m.offset = m.todayRow()
		case "up", "k":
			m.offset--
		case "down", "j":
			m.offset++
		}
	}
	m.clampOffset()
	return m, nil
}

func (m *previewModel) shift(days int) {
	m.ref = m.ref.AddDate(0, 0, days)
	m.rebuild()
}

func (m *previewModel) rebuild() {
	m.grid, m.err = grid.Build(m.ref, m.cfg.WeeksBefore, m.cfg.WeeksAfter)
}

func (m previewModel) todayRow() int {
	if m.grid == nil {
		return 0
	}
	for i, w := range m.grid.Weeks {
		for _, d := range w.Days {
			if d.IsToday {
				return max(i-m.visibleRows()/2, 0)
			}
		}
	}
	return 0
}

func (m previewModel) visibleRows() int {
	if m.grid == nil {
		return 0
	}
	if m.height <= previewChrome {
		return len(m.grid.Weeks)
	}
	return min(m.height-previewChrome, len(m.grid.Weeks))
}

func (m *previewModel) clampOffset() {
	if m.grid == nil {
		m.offset = 0
		return
	}
	maxOffset := len(m.grid.Weeks) - m.visibleRows()
	if m.offset > maxOffset {
		m.offset = maxOffset
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m previewModel) View() string {
	var b strings.Builder

	if m.err != nil {
		b.WriteString(m.styles.failure.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
		b.WriteString(m.styles.help.Render("q: Quit"))
		return b.String()
	}

	lines := render.TerminalLines(m.grid, m.theme)
	b.WriteString(lines[0])
	b.WriteString("\n")
	weeks := lines[1:]
	end := min(m.offset+m.visibleRows(), len(weeks))
	for _, line := range weeks[m.offset:end] {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	selected := fmt.Sprintf("Reference: %s  Weeks: %d  Window: %s → %s",
		m.grid.Anchor.Format(time.DateOnly),
		len(m.grid.Weeks),
		m.grid.Start.Format(time.DateOnly),
		m.grid.Stop.AddDate(0, 0, -1).Format(time.DateOnly))
	b.WriteString(m.styles.footer.Render(selected))
	b.WriteString("\n")

	help := "h/l: Day  p/n: Week  Up/Down: Scroll  t: Today  q: Quit"
	b.WriteString(m.styles.help.Render(help))

	return b.String()
}
