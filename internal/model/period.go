package model

import (
	"fmt"
	"time"
)

// DateFormat is the calendar date layout used in files, flags and the backend.
const DateFormat = time.DateOnly

// Period is an inclusive range of calendar dates. Times of day are ignored.
type Period struct {
	Start time.Time
	End   time.Time
}

// NewPeriod truncates both bounds to calendar dates.
func NewPeriod(start, end time.Time) Period {
	return Period{Start: CalendarDate(start), End: CalendarDate(end)}
}

// CalendarDate returns the date of t, as read in t's own location, at
// midnight UTC.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Empty reports whether the period contains no dates (start after end).
func (p Period) Empty() bool {
	return CalendarDate(p.Start).After(CalendarDate(p.End))
}

// Contains reports whether the calendar date of t lies within the period.
func (p Period) Contains(t time.Time) bool {
	d := CalendarDate(t)
	return !d.Before(CalendarDate(p.Start)) && !d.After(CalendarDate(p.End))
}

func (p Period) String() string {
	return p.Start.Format(DateFormat) + ".." + p.End.Format(DateFormat)
}

// ParsePeriod parses two YYYY-MM-DD dates.
func ParsePeriod(from, to string) (Period, error) {
	start, err := time.Parse(DateFormat, from)
	if err != nil {
		return Period{}, fmt.Errorf("parsing start date %q: %w", from, err)
	}
	end, err := time.Parse(DateFormat, to)
	if err != nil {
		return Period{}, fmt.Errorf("parsing end date %q: %w", to, err)
	}
	return NewPeriod(start, end), nil
}

// FiscalYearToDate returns the period from the most recent fiscal year start
// ("MM-DD") through now.
func FiscalYearToDate(yearStart string, now time.Time) (Period, error) {
	md, err := time.Parse("01-02", yearStart)
	if err != nil {
		return Period{}, fmt.Errorf("parsing fiscal year start %q: %w", yearStart, err)
	}

	today := CalendarDate(now)
	start := fiscalStart(today.Year(), md)
	if start.After(today) {
		start = fiscalStart(today.Year()-1, md)
	}
	return Period{Start: start, End: today}, nil
}

// fiscalStart returns the fiscal year start in year. A 02-29 start falls on
// the last day of February in common years.
func fiscalStart(year int, md time.Time) time.Time {
	day := md.Day()
	if last := time.Date(year, md.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day(); day > last {
		day = last
	}
	return time.Date(year, md.Month(), day, 0, 0, 0, 0, time.UTC)
}
