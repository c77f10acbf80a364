package domain

import "time"

// DayTag classifies a calendar date for rate lookup: one of the seven
// weekdays, or the public-holiday row that takes over the whole date.
type DayTag int

const (
	TagMonday DayTag = iota
	TagTuesday
	TagWednesday
	TagThursday
	TagFriday
	TagSaturday
	TagSunday
	TagHoliday

	numDayTags = int(TagHoliday) + 1
)

// weekdayTags selects the Monday..Friday rows for weekday min-max queries.
var weekdayTags = []DayTag{TagMonday, TagTuesday, TagWednesday, TagThursday, TagFriday}

// weekendTags selects the Saturday, Sunday and holiday rows. Holidays price
// like weekends in every schedule observed so far, so summaries group them
// together.
var weekendTags = []DayTag{TagSaturday, TagSunday, TagHoliday}

// String returns the two-letter code used in schedule rule keys.
func (t DayTag) String() string {
	switch t {
	case TagMonday:
		return "mo"
	case TagTuesday:
		return "tu"
	case TagWednesday:
		return "we"
	case TagThursday:
		return "th"
	case TagFriday:
		return "fr"
	case TagSaturday:
		return "st"
	case TagSunday:
		return "su"
	case TagHoliday:
		return "hl"
	default:
		return "??"
	}
}

func weekdayTag(wd time.Weekday) DayTag {
	switch wd {
	case time.Monday:
		return TagMonday
	case time.Tuesday:
		return TagTuesday
	case time.Wednesday:
		return TagWednesday
	case time.Thursday:
		return TagThursday
	case time.Friday:
		return TagFriday
	case time.Saturday:
		return TagSaturday
	default:
		return TagSunday
	}
}
