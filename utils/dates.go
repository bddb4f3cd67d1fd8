package utils

import (
	"fmt"
	"time"

	"github.com/elC0mpa/aws-costpilot/model"
)

// HistoryLimitMonths is how far back a window may reach. Cost Explorer
// keeps 14 months of history; 13 leaves margin for partial months.
const HistoryLimitMonths = 13

// DefaultWindowDays is the window used when the caller supplies no dates
const DefaultWindowDays = 30

// ParseError reports a malformed date string. It is never retried.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid date %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidateDateWindow builds a usable [start, end) window from optional
// caller-supplied date strings. Missing values default to the last
// DefaultWindowDays days. The result is clamped into
// [today - HistoryLimitMonths, today], and a start at or after the end is
// pulled back to one day before it. Any clamp sets Adjusted.
func ValidateDateWindow(startDate, endDate string) (model.DateWindow, error) {
	today := truncateToDay(time.Now())
	earliest := today.AddDate(0, -HistoryLimitMonths, 0)

	window := model.DateWindow{}

	if endDate == "" {
		window.End = today
	} else {
		end, err := parseDate(endDate)
		if err != nil {
			return model.DateWindow{}, err
		}
		window.End = end
	}

	if startDate == "" {
		window.Start = window.End.AddDate(0, 0, -DefaultWindowDays)
	} else {
		start, err := parseDate(startDate)
		if err != nil {
			return model.DateWindow{}, err
		}
		window.Start = start
	}

	if window.End.After(today) {
		window.End = today
		window.Adjusted = true
	}
	// keep one day of room above the history floor so the start can still
	// precede the end after clamping
	if window.End.Before(earliest.AddDate(0, 0, 1)) {
		window.End = earliest.AddDate(0, 0, 1)
		window.Adjusted = true
	}
	if window.Start.Before(earliest) {
		window.Start = earliest
		window.Adjusted = true
	}
	if !window.Start.Before(window.End) {
		window.Start = window.End.AddDate(0, 0, -1)
		window.Adjusted = true
	}

	return window, nil
}

// LastNDaysWindow returns the trailing n-day window ending today
func LastNDaysWindow(n int) model.DateWindow {
	today := truncateToDay(time.Now())
	return model.DateWindow{
		Start: today.AddDate(0, 0, -n),
		End:   today,
	}
}

// LastNMonthsWindow returns a window starting at the first day of the
// month n months ago and ending today
func LastNMonthsWindow(n int) model.DateWindow {
	today := truncateToDay(time.Now())
	start := today.AddDate(0, -n, 0)
	start = time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, start.Location())
	return model.DateWindow{Start: start, End: today}
}

// MonthWindow returns the [first day, last day] window of the month
// containing the given period start date
func MonthWindow(periodStart string) (model.DateWindow, error) {
	start, err := parseDate(periodStart)
	if err != nil {
		return model.DateWindow{}, err
	}
	first := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, start.Location())
	end := first.AddDate(0, 1, 0)
	if today := truncateToDay(time.Now()); end.After(today) {
		end = today
	}
	if !first.Before(end) {
		end = first.AddDate(0, 0, 1)
	}
	return model.DateWindow{Start: first, End: end}, nil
}

func parseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(model.DateFormat, value)
	if err != nil {
		return time.Time{}, &ParseError{Input: value, Err: err}
	}
	return parsed, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
