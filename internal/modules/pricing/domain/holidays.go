package domain

import (
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/pl"
)

// HolidayCalendar resolves a point in time to its DayTag. Holiday dates are
// precomputed for an explicit year window at construction; dates outside the
// window fall back to plain weekday tagging. That fallback is an accepted
// limitation of the window approach, not something lookups report.
//
// Lookups compare civil dates in the calendar's location, never instants.
type HolidayCalendar struct {
	loc       *time.Location
	firstYear int
	lastYear  int
	dates     map[string]struct{}
}

const civilDateKey = "2006-01-02"

// NewHolidayCalendar precomputes the observed dates of the given holiday
// definitions for every year in [firstYear, lastYear].
func NewHolidayCalendar(loc *time.Location, firstYear, lastYear int, holidays []*cal.Holiday) *HolidayCalendar {
	if loc == nil {
		loc = time.Local
	}
	if lastYear < firstYear {
		firstYear, lastYear = lastYear, firstYear
	}
	dates := make(map[string]struct{})
	for year := firstYear; year <= lastYear; year++ {
		for _, h := range holidays {
			actual, observed := h.Calc(year)
			if !actual.IsZero() {
				dates[actual.Format(civilDateKey)] = struct{}{}
			}
			if !observed.IsZero() {
				dates[observed.Format(civilDateKey)] = struct{}{}
			}
		}
	}
	return &HolidayCalendar{loc: loc, firstYear: firstYear, lastYear: lastYear, dates: dates}
}

// NewPolishHolidayCalendar builds a HolidayCalendar for Polish public
// holidays, the locale of every club in the catalog.
func NewPolishHolidayCalendar(loc *time.Location, firstYear, lastYear int) *HolidayCalendar {
	return NewHolidayCalendar(loc, firstYear, lastYear, pl.Holidays)
}

// Location returns the civil calendar location the engine operates in.
func (c *HolidayCalendar) Location() *time.Location {
	return c.loc
}

// DayTag maps an instant to its day classification: the holiday row when the
// local civil date is a public holiday inside the precomputed window, the ISO
// weekday otherwise.
func (c *HolidayCalendar) DayTag(at time.Time) DayTag {
	local := at.In(c.loc)
	if local.Year() >= c.firstYear && local.Year() <= c.lastYear {
		if _, ok := c.dates[local.Format(civilDateKey)]; ok {
			return TagHoliday
		}
	}
	return weekdayTag(local.Weekday())
}

// civilDate truncates an instant to midnight of its civil date in loc.
func civilDate(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
