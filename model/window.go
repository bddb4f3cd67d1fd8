package model

import "time"

// DateFormat is the date layout Cost Explorer expects
const DateFormat = "2006-01-02"

// DateWindow is a validated [Start, End) range. Adjusted reports whether
// the requested range was clamped or defaulted during validation.
type DateWindow struct {
	Start    time.Time
	End      time.Time
	Adjusted bool
}

// StartString returns the start date in Cost Explorer format
func (w DateWindow) StartString() string {
	return w.Start.Format(DateFormat)
}

// EndString returns the end date in Cost Explorer format
func (w DateWindow) EndString() string {
	return w.End.Format(DateFormat)
}

// Days returns the length of the window in days
func (w DateWindow) Days() int {
	return int(w.End.Sub(w.Start).Hours() / 24)
}
