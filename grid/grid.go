// Package grid lays out the week-by-week calendar window shown on the
// printable page.
package grid

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidArgument is returned for negative or oversized window sizes.
var ErrInvalidArgument = errors.New("invalid argument")

// MaxWeeks bounds the window, weeksBefore + weeksAfter + 1, to about two
// thousand years.
const MaxWeeks = 100000

type Day struct {
	Date       time.Time
	DayOfMonth int
	IsToday    bool
	IsSaturday bool
	IsSunday   bool

	ClosesMonthRight bool
	ClosesMonthBelow bool
	ClosesYearRight  bool
	ClosesYearBelow  bool
}

type Week struct {
	MonthLabel       string
	Days             [7]Day
	IsFirstMonthWeek bool

	// Bottom border of the month-label cell spanning this week's month.
	ClosesMonthBelow bool
	ClosesYearBelow  bool
}

// Grid is the laid out window. It is not modified after Build returns.
type Grid struct {
	Weeks      []Week
	MonthSpans map[string]int
	LastMonth  string

	Anchor time.Time
	Start  time.Time
	Stop   time.Time
}

// Build lays out the weeks around ref. The window starts on the Monday
// weeksBefore weeks before the week of ref and ends after the Sunday
// weeksAfter weeks after it. Only the UTC calendar date of ref matters.
func Build(ref time.Time, weeksBefore, weeksAfter int) (*Grid, error) {
	if weeksBefore < 0 {
		return nil, fmt.Errorf("%w: weeks before must be non-negative, got %d", ErrInvalidArgument, weeksBefore)
	}
	if weeksAfter < 0 {
		return nil, fmt.Errorf("%w: weeks after must be non-negative, got %d", ErrInvalidArgument, weeksAfter)
	}
	if weeksBefore >= MaxWeeks || weeksAfter >= MaxWeeks-weeksBefore {
		return nil, fmt.Errorf("%w: window of %d weeks before and %d after exceeds %d weeks", ErrInvalidArgument, weeksBefore, weeksAfter, MaxWeeks)
	}

	anchor := truncateDay(ref)
	monday := anchor.AddDate(0, 0, -mondayIndex(anchor.Weekday()))
	start := monday.AddDate(0, 0, -7*weeksBefore)
	stop := monday.AddDate(0, 0, 7*(weeksAfter+1))

	g := &Grid{
		Weeks:      make([]Week, 0, weeksBefore+weeksAfter+1),
		MonthSpans: make(map[string]int),
		Anchor:     anchor,
		Start:      start,
		Stop:       stop,
	}

	var current *Week
	for d := start; d.Before(stop); d = d.AddDate(0, 0, 1) {
		index := mondayIndex(d.Weekday())
		if index == 0 {
			g.Weeks = append(g.Weeks, Week{MonthLabel: MonthLabel(d.Year(), d.Month())})
			current = &g.Weeks[len(g.Weeks)-1]
			g.LastMonth = current.MonthLabel
			if _, seen := g.MonthSpans[current.MonthLabel]; !seen {
				current.IsFirstMonthWeek = true
			}
			g.MonthSpans[current.MonthLabel]++
		}
		current.Days[index] = newDay(d, anchor, stop)
	}

	markMonthHeaders(g.Weeks)
	if len(g.Weeks) > 0 {
		g.Weeks[0].ClosesMonthBelow = false
		g.Weeks[0].ClosesYearBelow = false
	}

	return g, nil
}

func newDay(d, anchor, stop time.Time) Day {
	nextDay := d.AddDate(0, 0, 1)
	nextWeek := d.AddDate(0, 0, 7)
	hasRight := nextDay.Before(stop) && d.Weekday() != time.Sunday
	hasBelow := nextWeek.Before(stop)

	return Day{
		Date:             d,
		DayOfMonth:       d.Day(),
		IsToday:          d.Equal(anchor),
		IsSaturday:       d.Weekday() == time.Saturday,
		IsSunday:         d.Weekday() == time.Sunday,
		ClosesMonthRight: hasRight && nextDay.Month() != d.Month(),
		ClosesYearRight:  hasRight && nextDay.Year() != d.Year(),
		ClosesMonthBelow: hasBelow && nextWeek.Month() != d.Month(),
		ClosesYearBelow:  hasBelow && nextWeek.Year() != d.Year(),
	}
}

// markMonthHeaders sets the header flags of every week from the week that
// follows its month run. The last run of the grid has nothing below it.
func markMonthHeaders(weeks []Week) {
	runStart := 0
	for i := range weeks {
		if i+1 < len(weeks) && weeks[i+1].MonthLabel == weeks[i].MonthLabel {
			continue
		}
		closesMonth := i+1 < len(weeks)
		closesYear := closesMonth && weeks[i+1].Days[0].Date.Year() != weeks[i].Days[0].Date.Year()
		for j := runStart; j <= i; j++ {
			weeks[j].ClosesMonthBelow = closesMonth
			weeks[j].ClosesYearBelow = closesYear
		}
		runStart = i + 1
	}
}

func truncateDay(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Today returns the day matching the anchor date.
func (g *Grid) Today() (Day, bool) {
	for _, w := range g.Weeks {
		for _, d := range w.Days {
			if d.IsToday {
				return d, true
			}
		}
	}
	return Day{}, false
}

// MonthLabels returns the distinct labels in the order they first appear.
func (g *Grid) MonthLabels() []string {
	labels := make([]string, 0, len(g.MonthSpans))
	for _, w := range g.Weeks {
		if w.IsFirstMonthWeek {
			labels = append(labels, w.MonthLabel)
		}
	}
	return labels
}

func (g *Grid) Span(label string) int {
	return g.MonthSpans[label]
}
