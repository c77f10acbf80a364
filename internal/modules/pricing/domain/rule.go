package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidRule reports a schedule rule that could not be parsed.
var ErrInvalidRule = errors.New("invalid schedule rule")

// DayMatch selects which DayTag rows a rule writes into.
type DayMatch int

const (
	// MatchDay applies to a single DayTag row.
	MatchDay DayMatch = iota
	// MatchAll is the wildcard "*": every row, lowest precedence.
	MatchAll
	// MatchOverride is "!": every row including holiday, highest precedence.
	MatchOverride
)

// Rule is one configured schedule entry, parsed once at catalog load. The
// hour range is half-open; StartHour > EndHour wraps past midnight. The rate
// is the listed price for a full hour.
type Rule struct {
	Match      DayMatch
	Day        DayTag // meaningful only when Match == MatchDay
	StartHour  int
	EndHour    int
	HourlyRate float64
}

var dayCodes = map[string]DayTag{
	"mo": TagMonday,
	"tu": TagTuesday,
	"we": TagWednesday,
	"th": TagThursday,
	"fr": TagFriday,
	"st": TagSaturday,
	"sa": TagSaturday,
	"su": TagSunday,
	"hl": TagHoliday,
}

// ParseRule decodes a "day:start-end" key and its price value into a typed
// Rule. Keys look like "mo:7-22", "*:6-15" or "!:7-22"; prices are the hourly
// rate as a decimal string.
func ParseRule(key, price string) (Rule, error) {
	dayPart, timePart, ok := strings.Cut(strings.TrimSpace(key), ":")
	if !ok {
		return Rule{}, fmt.Errorf("%w: %q: missing time range", ErrInvalidRule, key)
	}

	var rule Rule
	switch day := strings.ToLower(strings.TrimSpace(dayPart)); day {
	case "*":
		rule.Match = MatchAll
	case "!":
		rule.Match = MatchOverride
	default:
		tag, known := dayCodes[day]
		if !known {
			return Rule{}, fmt.Errorf("%w: %q: unknown day code %q", ErrInvalidRule, key, day)
		}
		rule.Match = MatchDay
		rule.Day = tag
	}

	start, end, err := parseHourRange(timePart)
	if err != nil {
		return Rule{}, fmt.Errorf("%w: %q: %v", ErrInvalidRule, key, err)
	}
	rule.StartHour, rule.EndHour = start, end

	rate, err := strconv.ParseFloat(strings.TrimSpace(price), 64)
	if err != nil {
		return Rule{}, fmt.Errorf("%w: %q: bad price %q", ErrInvalidRule, key, price)
	}
	if rate < 0 {
		return Rule{}, fmt.Errorf("%w: %q: negative price %q", ErrInvalidRule, key, price)
	}
	rule.HourlyRate = rate

	return rule, nil
}

// ParseSchedule converts a rule map into typed rules. Map iteration order
// does not matter: precedence is decided by DayMatch at compile time, not by
// rule position.
func ParseSchedule(schedule map[string]string) ([]Rule, error) {
	if len(schedule) == 0 {
		return nil, nil
	}
	rules := make([]Rule, 0, len(schedule))
	for key, price := range schedule {
		rule, err := ParseRule(key, price)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func parseHourRange(s string) (int, int, error) {
	startPart, endPart, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return 0, 0, fmt.Errorf("time range %q is not start-end", s)
	}
	start, err := parseHour(startPart)
	if err != nil {
		return 0, 0, err
	}
	end, err := parseHour(endPart)
	if err != nil {
		return 0, 0, err
	}
	if start == 24 {
		return 0, 0, fmt.Errorf("time range %q starts at 24", s)
	}
	if start == end {
		return 0, 0, fmt.Errorf("time range %q is empty", s)
	}
	return start, end, nil
}

// parseHour accepts 0..24; 24 is only meaningful as the exclusive end of a
// range reaching midnight.
func parseHour(s string) (int, error) {
	h, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("bad hour %q", s)
	}
	if h < 0 || h > 24 {
		return 0, fmt.Errorf("hour %d out of range", h)
	}
	return h, nil
}
