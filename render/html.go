package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"strings"

	"notecal/grid"
)

const pageTemplate = `<!DOCTYPE html>
<html lang="fr">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
{{- if .Favicon}}
<link rel="icon" type="image/png" href="{{.Favicon}}">
{{- end}}
<style>
{{.CSS}}
</style>
</head>
<body>
<div class="workspace"><div class="main-table-outer"><table class="main-table">
<tr class="header-line"><th class="header month">Month</th>{{range .Weekdays}}<th class="header">{{.}}</th>{{end}}</tr>
{{- range .Rows}}
<tr class="line">{{with .Month}}<td class="{{.Class}}" rowspan="{{.RowSpan}}">{{.Text}}</td>{{end}}{{range .Days}}<td class="{{.Class}}">{{.Text}}</td>{{end}}</tr>
{{- end}}
</table></div></div>
</body>
</html>
`

var page = template.Must(template.New("page").Parse(pageTemplate))

type PageOptions struct {
	Title    string
	PageSize string
	// Favicon embeds the calendar icon as a data URI.
	Favicon  bool
}

type cell struct {
	Text    string
	Class   string
	RowSpan int
}

type row struct {
	Month *cell
	Days  []cell
}

type pageData struct {
	Title    string
	Favicon  template.URL
	CSS      template.CSS
	Weekdays []string
	Rows     []row
}

// HTML writes the printable page for g. Nothing is written to w unless the
// whole page rendered.
func HTML(w io.Writer, g *grid.Grid, opts PageOptions) error {
	if g == nil {
		return fmt.Errorf("render: nil grid")
	}
	if !ValidPageSize(opts.PageSize) {
		return fmt.Errorf("render: invalid page size %q", opts.PageSize)
	}

	data := pageData{
		Title:    opts.Title,
		CSS:      template.CSS(CSS(Styles(opts.PageSize))),
		Weekdays: grid.WeekdayLabels[:],
		Rows:     rows(g),
	}

	if opts.Favicon {
		weekday := 0
		if today, ok := g.Today(); ok {
			weekday = mondayColumn(today)
		}
		uri, err := IconDataURI(64, weekday)
		if err != nil {
			return fmt.Errorf("render: favicon: %w", err)
		}
		data.Favicon = template.URL(uri)
	}

	buf := new(bytes.Buffer)
	if err := page.Execute(buf, data); err != nil {
		return fmt.Errorf("render: execute page: %w", err)
	}

	_, err := buf.WriteTo(w)
	return err
}

func rows(g *grid.Grid) []row {
	result := make([]row, 0, len(g.Weeks))
	for _, week := range g.Weeks {
		r := row{Days: make([]cell, 0, len(week.Days))}
		if week.IsFirstMonthWeek {
			r.Month = &cell{
				Text:    week.MonthLabel,
				Class:   strings.Join(monthClasses(week), " "),
				RowSpan: g.Span(week.MonthLabel),
			}
		}
		for _, day := range week.Days {
			r.Days = append(r.Days, cell{
				Text:  strconv.Itoa(day.DayOfMonth),
				Class: strings.Join(dayClasses(day), " "),
			})
		}
		result = append(result, r)
	}
	return result
}

func monthClasses(week grid.Week) []string {
	classes := []string{"month"}
	if week.ClosesMonthBelow {
		classes = append(classes, "month-below")
	}
	if week.ClosesYearBelow {
		classes = append(classes, "year-below")
	}
	return classes
}

func dayClasses(day grid.Day) []string {
	classes := []string{"day"}
	if day.ClosesMonthBelow {
		classes = append(classes, "month-below")
	}
	if day.ClosesYearBelow {
		classes = append(classes, "year-below")
	}
	if day.ClosesMonthRight {
		classes = append(classes, "month-right")
	}
	if day.ClosesYearRight {
		classes = append(classes, "year-right")
	}
	if day.IsSaturday {
		classes = append(classes, "weekend-lite")
	}
	if day.IsSunday {
		classes = append(classes, "weekend-full")
	}
	if day.IsToday {
		classes = append(classes, "today")
	}
	return classes
}

func mondayColumn(day grid.Day) int {
	return (int(day.Date.Weekday()) + 6) % 7
}
