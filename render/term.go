package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"notecal/grid"
)

const monthColumnWidth = 15

// Theme holds the lipgloss styles used by Terminal.
type Theme struct {
	Header      lipgloss.Style
	Month       lipgloss.Style
	Day         lipgloss.Style
	WeekendLite lipgloss.Style
	WeekendFull lipgloss.Style
	Today       lipgloss.Style
	Separator   lipgloss.Style
}

// NewTheme styles for the terminal the process writes to.
func NewTheme() Theme {
	return themeFrom(lipgloss.NewStyle())
}

// PlainTheme renders without escape sequences, for files and HTTP responses.
func PlainTheme() Theme {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return themeFrom(r.NewStyle())
}

func themeFrom(base lipgloss.Style) Theme {
	base = base.Padding(0).Margin(0)

	return Theme{
		Header:      base.Copy().Foreground(lipgloss.Color("111")).Bold(true),
		Month:       base.Copy().Foreground(lipgloss.Color("213")).Bold(true),
		Day:         base.Copy().Foreground(lipgloss.Color("252")),
		WeekendLite: base.Copy().Foreground(lipgloss.Color("147")),
		WeekendFull: base.Copy().Foreground(lipgloss.Color("105")).Bold(true),
		Today:       base.Copy().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("57")).Bold(true),
		Separator:   base.Copy().Foreground(lipgloss.Color("244")),
	}
}

// Terminal renders g as text lines: a weekday header, then one line per week
// with the month name on the first week of each month and the year on the
// second. A thin bar separates days of different months, a thick bar days of
// different years. Days above a month change are underlined.
func Terminal(g *grid.Grid, theme Theme) string {
	lines := TerminalLines(g, theme)
	return strings.Join(lines, "\n")
}

// TerminalLines is Terminal split per line, header first.
func TerminalLines(g *grid.Grid, theme Theme) []string {
	if g == nil {
		return nil
	}

	lines := make([]string, 0, len(g.Weeks)+1)

	var header strings.Builder
	header.WriteString(strings.Repeat(" ", monthColumnWidth))
	for i, label := range grid.WeekdayLabels {
		if i > 0 {
			header.WriteString(" ")
		}
		header.WriteString(theme.Header.Render(fmt.Sprintf("%2s", label)))
	}
	lines = append(lines, header.String())

	runIndex := 0
	for i, week := range g.Weeks {
		if i > 0 && week.MonthLabel == g.Weeks[i-1].MonthLabel {
			runIndex++
		} else {
			runIndex = 0
		}

		var b strings.Builder
		b.WriteString(theme.Month.Render(padRight(monthColumnText(week.MonthLabel, runIndex, g.Span(week.MonthLabel)), monthColumnWidth)))
		for j, day := range week.Days {
			b.WriteString(dayCell(day, theme))
			if j < len(week.Days)-1 {
				b.WriteString(separator(day, theme))
			}
		}
		lines = append(lines, b.String())
	}

	return lines
}

func monthColumnText(label string, runIndex, span int) string {
	name, year, _ := strings.Cut(label, "\n")
	if span == 1 {
		return name + " " + year
	}
	switch runIndex {
	case 0:
		return name
	case 1:
		return year
	}
	return ""
}

func dayCell(day grid.Day, theme Theme) string {
	style := theme.Day
	switch {
	case day.IsToday:
		style = theme.Today
	case day.IsSunday:
		style = theme.WeekendFull
	case day.IsSaturday:
		style = theme.WeekendLite
	}
	if day.ClosesMonthBelow {
		style = style.Copy().Underline(true)
	}
	if day.ClosesYearBelow {
		style = style.Copy().Bold(true)
	}
	return style.Render(fmt.Sprintf("%2d", day.DayOfMonth))
}

func separator(day grid.Day, theme Theme) string {
	switch {
	case day.ClosesYearRight:
		return theme.Separator.Render("┃")
	case day.ClosesMonthRight:
		return theme.Separator.Render("│")
	}
	return " "
}

func padRight(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return text + strings.Repeat(" ", width-w)
}
