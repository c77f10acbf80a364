package domain

// SlotsPerDay is the number of half-hour slots a day is divided into. All
// price resolution happens at this granularity.
const SlotsPerDay = 48

// RateTable is the dense (DayTag, half-hour slot) -> price lookup compiled
// from a period's rules. Cells hold the price of one half hour, i.e. half the
// listed hourly rate; unwritten cells stay unset and read as no price.
// Tables are built once per period and never mutated afterwards, so they are
// safe for concurrent readers.
type RateTable struct {
	cells [numDayTags][SlotsPerDay]float64
	set   [numDayTags][SlotsPerDay]bool
}

// MinMax is an hourly-rate price range for display.
type MinMax struct {
	Min float64 `json:"minPrice"`
	Max float64 `json:"maxPrice"`
}

// CompileRateTable applies rules in precedence order: wildcard rules first,
// then specific-day rules, then universal overrides. Later writes overwrite
// earlier ones cell by cell, so the pass order is the whole precedence
// mechanism.
func CompileRateTable(rules []Rule) *RateTable {
	t := &RateTable{}
	for _, r := range rules {
		if r.Match == MatchAll {
			for tag := 0; tag < numDayTags; tag++ {
				t.write(DayTag(tag), r)
			}
		}
	}
	for _, r := range rules {
		if r.Match == MatchDay {
			t.write(r.Day, r)
		}
	}
	for _, r := range rules {
		if r.Match == MatchOverride {
			for tag := 0; tag < numDayTags; tag++ {
				t.write(DayTag(tag), r)
			}
		}
	}
	return t
}

// write fills both half-hour cells of every hour in the rule's range,
// wrapping past midnight when the range does not run forward.
func (t *RateTable) write(tag DayTag, r Rule) {
	half := r.HourlyRate / 2
	writeHour := func(h int) {
		t.cells[tag][h*2] = half
		t.set[tag][h*2] = true
		t.cells[tag][h*2+1] = half
		t.set[tag][h*2+1] = true
	}
	if r.StartHour < r.EndHour {
		for h := r.StartHour; h < r.EndHour; h++ {
			writeHour(h)
		}
		return
	}
	for h := r.StartHour; h < 24; h++ {
		writeHour(h)
	}
	for h := 0; h < r.EndHour; h++ {
		writeHour(h)
	}
}

// HalfHourRate returns the price of one half-hour slot, or false when the
// cell is unset.
func (t *RateTable) HalfHourRate(tag DayTag, slot int) (float64, bool) {
	if slot < 0 || slot >= SlotsPerDay || int(tag) < 0 || int(tag) >= numDayTags {
		return 0, false
	}
	if !t.set[tag][slot] {
		return 0, false
	}
	return t.cells[tag][slot], true
}

// MinMaxOver scans the union of the given rows and returns the hourly-rate
// range over all set cells. False when every visited cell is unset.
func (t *RateTable) MinMaxOver(tags ...DayTag) (MinMax, bool) {
	var mm MinMax
	found := false
	for _, tag := range tags {
		for slot := 0; slot < SlotsPerDay; slot++ {
			rate, ok := t.HalfHourRate(tag, slot)
			if !ok {
				continue
			}
			hourly := rate * 2
			if !found || hourly < mm.Min {
				mm.Min = hourly
			}
			if !found || hourly > mm.Max {
				mm.Max = hourly
			}
			found = true
		}
	}
	return mm, found
}
