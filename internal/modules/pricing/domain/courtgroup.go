package domain

import (
	"errors"
	"time"
)

var (
	// ErrInvalidRange reports a price query whose start is not strictly
	// before its end.
	ErrInvalidRange = errors.New("start must be before end")
	// ErrNotHalfHourAligned reports a price query whose bounds do not sit on
	// half-hour boundaries.
	ErrNotHalfHourAligned = errors.New("times must be half-hour aligned")
)

// Court identifies one physical court. Pricing is shared across its group.
type Court struct {
	ID      string `json:"id"`
	Surface string `json:"surface"`
	Type    string `json:"type"`
}

// CourtGroup owns the pricing periods for a homogeneous set of courts and
// answers every price query at half-hour granularity.
type CourtGroup struct {
	Surface string
	Type    string
	Courts  []Court

	periods []Period
	cal     *HolidayCalendar
}

// newCourtGroup compiles every period document. Period errors bubble up for
// the club constructor to contextualize.
func newCourtGroup(doc GroupDocument, cal *HolidayCalendar) (*CourtGroup, error) {
	g := &CourtGroup{
		Surface: doc.Surface,
		Type:    doc.Type,
		cal:     cal,
	}
	for _, id := range doc.Courts {
		g.Courts = append(g.Courts, Court{ID: id, Surface: doc.Surface, Type: doc.Type})
	}
	for _, pd := range doc.Prices {
		period, err := newPeriodFromDocument(pd, cal.Location())
		if err != nil {
			return nil, err
		}
		g.periods = append(g.periods, period)
	}
	return g, nil
}

// Key names the group in diagnostics, e.g. "clay indoor".
func (g *CourtGroup) Key() string {
	return g.Surface + " " + g.Type
}

// Periods exposes the configured periods for validation.
func (g *CourtGroup) Periods() []Period {
	return g.periods
}

// ActivePeriod returns the first period whose range contains the date, or
// the closed sentinel when none does.
func (g *CourtGroup) ActivePeriod(date time.Time) Period {
	for _, p := range g.periods {
		if p.Contains(date, g.cal.Location()) {
			return p
		}
	}
	return Period{}
}

// IsClosed reports whether the group has no bookable schedule on the date.
func (g *CourtGroup) IsClosed(date time.Time) bool {
	return g.ActivePeriod(date).Closed()
}

// Price sums the half-hour rates between start and end. The active period is
// resolved once from start and used for the whole range, even if the range
// crosses a period boundary; ranges that long are not meaningful bookings.
// The second return is false when the group is closed or any visited slot has
// no price: one unpriced slot makes the whole range unpriceable.
func (g *CourtGroup) Price(start, end time.Time) (float64, bool, error) {
	if !start.Before(end) {
		return 0, false, ErrInvalidRange
	}
	loc := g.cal.Location()
	// Alignment is checked on the calendar's wall clock, not the caller's.
	if !halfHourAligned(start.In(loc)) || !halfHourAligned(end.In(loc)) {
		return 0, false, ErrNotHalfHourAligned
	}

	table, open := g.ActivePeriod(start).Schedule()
	if !open {
		return 0, false, nil
	}

	total := 0.0
	for cur := start; cur.Before(end); cur = cur.Add(30 * time.Minute) {
		local := cur.In(loc)
		slot := local.Hour()*2 + local.Minute()/30
		rate, ok := table.HalfHourRate(g.cal.DayTag(cur), slot)
		if !ok {
			return 0, false, nil
		}
		total += rate
	}
	return total, true, nil
}

// MinMaxForDay returns the hourly price range of the date's DayTag row.
func (g *CourtGroup) MinMaxForDay(date time.Time) (MinMax, bool) {
	table, open := g.ActivePeriod(date).Schedule()
	if !open {
		return MinMax{}, false
	}
	return table.MinMaxOver(g.cal.DayTag(date))
}

// MinMaxForWeekday returns the hourly price range across the Monday..Friday
// rows of the period active on the date.
func (g *CourtGroup) MinMaxForWeekday(date time.Time) (MinMax, bool) {
	table, open := g.ActivePeriod(date).Schedule()
	if !open {
		return MinMax{}, false
	}
	return table.MinMaxOver(weekdayTags...)
}

// MinMaxForWeekend returns the hourly price range across the Saturday,
// Sunday and holiday rows of the period active on the date.
func (g *CourtGroup) MinMaxForWeekend(date time.Time) (MinMax, bool) {
	table, open := g.ActivePeriod(date).Schedule()
	if !open {
		return MinMax{}, false
	}
	return table.MinMaxOver(weekendTags...)
}

func halfHourAligned(t time.Time) bool {
	return (t.Minute() == 0 || t.Minute() == 30) && t.Second() == 0 && t.Nanosecond() == 0
}
