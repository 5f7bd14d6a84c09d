package grid

import (
	"fmt"
	"time"
)

var monthNames = [13]string{
	"",
	"Janvier",
	"Février",
	"Mars",
	"Avril",
	"Mai",
	"Juin",
	"Juillet",
	"Août",
	"Septembre",
	"Octobre",
	"Novembre",
	"Décembre",
}

// WeekdayLabels is the header row, Monday first.
var WeekdayLabels = [7]string{"L", "M", "M", "J", "V", "S", "D"}

// MonthName returns the French name of month, or "" outside 1–12.
func MonthName(month time.Month) string {
	if month < time.January || month > time.December {
		return ""
	}
	return monthNames[month]
}

// MonthLabel is the text of a month-label cell: the month name, a newline and
// the four digit year.
func MonthLabel(year int, month time.Month) string {
	return fmt.Sprintf("%s\n%04d", MonthName(month), year)
}

func mondayIndex(weekday time.Weekday) int {
	return (int(weekday) + 6) % 7
}
