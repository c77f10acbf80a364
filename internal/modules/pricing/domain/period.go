package domain

import (
	"fmt"
	"time"
)

const periodDateLayout = "2006-01-02"

// Period is one pricing period: an inclusive civil-date range plus its
// compiled rate table. A period without rules is closed: the courts are not
// bookable at all inside its range. The zero Period is the closed sentinel
// returned when no period covers a date, so callers can treat "no period"
// and "explicitly closed" uniformly.
type Period struct {
	From  time.Time
	To    time.Time
	table *RateTable
}

// NewPeriod compiles the rules into a period covering [from, to], both
// truncated to midnight in loc. No rules means a closed period.
func NewPeriod(from, to time.Time, rules []Rule, loc *time.Location) Period {
	p := Period{
		From: civilDate(from, loc),
		To:   civilDate(to, loc),
	}
	if len(rules) > 0 {
		p.table = CompileRateTable(rules)
	}
	return p
}

// newPeriodFromDocument parses the document dates and schedule. Errors name
// the offending field so the aggregate constructor can prefix club context.
func newPeriodFromDocument(doc PeriodDocument, loc *time.Location) (Period, error) {
	from, err := time.ParseInLocation(periodDateLayout, doc.From, loc)
	if err != nil {
		return Period{}, fmt.Errorf("bad period start %q", doc.From)
	}
	to, err := time.ParseInLocation(periodDateLayout, doc.To, loc)
	if err != nil {
		return Period{}, fmt.Errorf("bad period end %q", doc.To)
	}
	if to.Before(from) {
		return Period{}, fmt.Errorf("period %s-%s ends before it starts", doc.From, doc.To)
	}
	rules, err := ParseSchedule(doc.Schedule)
	if err != nil {
		return Period{}, err
	}
	return NewPeriod(from, to, rules, loc), nil
}

// Closed reports whether the period has no schedule.
func (p Period) Closed() bool {
	return p.table == nil
}

// Schedule returns the compiled rate table, or false for a closed period.
// Callers branch on the second value instead of probing Closed separately.
func (p Period) Schedule() (*RateTable, bool) {
	if p.table == nil {
		return nil, false
	}
	return p.table, true
}

// Contains reports whether the civil date of at falls inside [From, To].
func (p Period) Contains(at time.Time, loc *time.Location) bool {
	if p.From.IsZero() && p.To.IsZero() {
		return false
	}
	date := civilDate(at, loc)
	return !date.Before(p.From) && !date.After(p.To)
}
