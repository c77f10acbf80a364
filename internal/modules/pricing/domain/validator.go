package domain

import (
	"fmt"
	"net/url"
	"sort"
	"time"
)

// Report is the diagnostic result of a full schedule validation. It is a
// report, not a gate: validation collects every finding and never aborts on
// the first bad club.
type Report struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// Operating hours probed by the completeness check: every whole hour with a
// start in [08:00, 21:00].
const (
	probeFirstHour = 8
	probeLastHour  = 21
)

// completenessDayCap bounds the completeness walk to one representative year
// per period, keeping validation O(days x hours) regardless of how long a
// period is configured to run.
const completenessDayCap = 366

// Validate statically verifies the whole system: club metadata hygiene,
// period gap/overlap structure, and schedule completeness. A group with a
// structural gap or overlap skips the completeness probe, which would only
// cascade misleading errors out of the already-reported problem.
func Validate(s *PricingSystem) Report {
	var errs []string
	for _, club := range s.clubs {
		errs = append(errs, validateClubMetadata(club)...)
		for _, group := range club.Groups {
			structural := validatePeriodStructure(club, group)
			errs = append(errs, structural...)
			if len(structural) == 0 {
				errs = append(errs, validateCompleteness(club, group, s.cal.Location())...)
			}
		}
	}
	return Report{IsValid: len(errs) == 0, Errors: errs}
}

func validateClubMetadata(club *Club) []string {
	var errs []string
	if club.Name == "" {
		errs = append(errs, fmt.Sprintf("Club %s: missing name", club.ID))
	}
	if club.Address == "" {
		errs = append(errs, fmt.Sprintf("Club %s: missing address", club.ID))
	}
	for field, link := range map[string]string{"googleMapsLink": club.GoogleMapsLink, "website": club.Website} {
		if link == "" {
			continue
		}
		u, err := url.Parse(link)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, fmt.Sprintf("Club %s: malformed %s %q", club.ID, field, link))
		}
	}
	return errs
}

// validatePeriodStructure checks adjacent periods, sorted by start date, for
// gaps and overlaps. Dates are inclusive on both ends, so periods are
// contiguous exactly when the next one starts the day after the current one
// ends. Closed periods are exempt from gap detection: an intentionally closed
// range creates no obligation to price its neighborhood.
func validatePeriodStructure(club *Club, group *CourtGroup) []string {
	periods := append([]Period(nil), group.periods...)
	if len(periods) < 2 {
		return nil
	}
	sort.Slice(periods, func(i, j int) bool {
		return periods[i].From.Before(periods[j].From)
	})

	var errs []string
	for i := 0; i < len(periods)-1; i++ {
		current, next := periods[i], periods[i+1]

		if next.From.After(current.To.AddDate(0, 0, 1)) && !current.Closed() && !next.Closed() {
			errs = append(errs, fmt.Sprintf(
				"Gap found in schedule for club %s, court group %s, between %s and %s",
				club.Name, group.Key(),
				current.To.Format(periodDateLayout), next.From.Format(periodDateLayout)))
		}

		if !next.From.After(current.To) {
			errs = append(errs, fmt.Sprintf(
				"Overlap found in schedule for club %s, court group %s, between periods %s-%s and %s-%s",
				club.Name, group.Key(),
				current.From.Format(periodDateLayout), current.To.Format(periodDateLayout),
				next.From.Format(periodDateLayout), next.To.Format(periodDateLayout)))
		}
	}
	return errs
}

// validateCompleteness probes every operating hour of every covered day and
// reports each unresolvable price. Closed periods are skipped.
func validateCompleteness(club *Club, group *CourtGroup, loc *time.Location) []string {
	var errs []string
	for _, period := range group.periods {
		if period.Closed() {
			continue
		}
		days := 0
		for day := period.From; !day.After(period.To) && days < completenessDayCap; day = day.AddDate(0, 0, 1) {
			for hour := probeFirstHour; hour <= probeLastHour; hour++ {
				start := time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, loc)
				_, ok, err := group.Price(start, start.Add(time.Hour))
				if err == nil && ok {
					continue
				}
				errs = append(errs, fmt.Sprintf(
					"Missing price for club %s, court group %s, at %s",
					club.Name, group.Key(), start.Format("2006-01-02 15:04")))
			}
			days++
		}
	}
	return errs
}
