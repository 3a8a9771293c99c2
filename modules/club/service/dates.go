package service

import (
	"fmt"
	"time"
)

// beautifyDate renders an event date as, e.g.,
// "Sunday, 16th of July at 15:00".
func beautifyDate(ts time.Time) string {
	return fmt.Sprintf("%s, %d%s of %s at %s",
		ts.Weekday(),
		ts.Day(),
		ordinalSuffix(ts.Day()),
		ts.Month(),
		ts.Format("15:04"),
	)
}

func ordinalSuffix(day int) string {
	switch day {
	case 1, 21, 31:
		return "st"
	case 2, 22:
		return "nd"
	case 3, 23:
		return "rd"
	default:
		return "th"
	}
}
