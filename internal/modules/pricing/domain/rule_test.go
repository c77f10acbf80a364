package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRule(t *testing.T) {
	testCases := []struct {
		name  string
		key   string
		price string
		exp   Rule
	}{
		{
			name:  "wildcard",
			key:   "*:7-22",
			price: "100",
			exp:   Rule{Match: MatchAll, StartHour: 7, EndHour: 22, HourlyRate: 100},
		},
		{
			name:  "specific day",
			key:   "mo:6-15",
			price: "85",
			exp:   Rule{Match: MatchDay, Day: TagMonday, StartHour: 6, EndHour: 15, HourlyRate: 85},
		},
		{
			name:  "saturday legacy code",
			key:   "st:7-22",
			price: "90",
			exp:   Rule{Match: MatchDay, Day: TagSaturday, StartHour: 7, EndHour: 22, HourlyRate: 90},
		},
		{
			name:  "saturday iso code",
			key:   "sa:7-22",
			price: "90",
			exp:   Rule{Match: MatchDay, Day: TagSaturday, StartHour: 7, EndHour: 22, HourlyRate: 90},
		},
		{
			name:  "holiday row",
			key:   "hl:8-20",
			price: "70",
			exp:   Rule{Match: MatchDay, Day: TagHoliday, StartHour: 8, EndHour: 20, HourlyRate: 70},
		},
		{
			name:  "universal override",
			key:   "!:18-22",
			price: "150",
			exp:   Rule{Match: MatchOverride, StartHour: 18, EndHour: 22, HourlyRate: 150},
		},
		{
			name:  "overnight range",
			key:   "*:23-6",
			price: "60",
			exp:   Rule{Match: MatchAll, StartHour: 23, EndHour: 6, HourlyRate: 60},
		},
		{
			name:  "midnight as 24",
			key:   "*:15-24",
			price: "110",
			exp:   Rule{Match: MatchAll, StartHour: 15, EndHour: 24, HourlyRate: 110},
		},
		{
			name:  "whitespace tolerated",
			key:   " fr : 7-22 ",
			price: " 120 ",
			exp:   Rule{Match: MatchDay, Day: TagFriday, StartHour: 7, EndHour: 22, HourlyRate: 120},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseRule(tc.key, tc.price)
			require.NoError(t, err)
			assert.Equal(t, tc.exp, got)
		})
	}
}

func TestParseRuleErrors(t *testing.T) {
	testCases := []struct {
		name  string
		key   string
		price string
	}{
		{name: "missing time range", key: "mo", price: "100"},
		{name: "unknown day code", key: "xx:7-22", price: "100"},
		{name: "empty range", key: "*:7-7", price: "100"},
		{name: "hour out of range", key: "*:7-25", price: "100"},
		{name: "not a number", key: "*:ab-22", price: "100"},
		{name: "bad price", key: "*:7-22", price: "cheap"},
		{name: "negative price", key: "*:7-22", price: "-10"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseRule(tc.key, tc.price)
			require.ErrorIs(t, err, ErrInvalidRule)
		})
	}
}

func TestParseSchedule(t *testing.T) {
	rules, err := ParseSchedule(map[string]string{
		"*:7-15":  "100",
		"*:15-22": "120",
		"su:7-22": "90",
	})
	require.NoError(t, err)
	assert.Len(t, rules, 3)

	_, err = ParseSchedule(map[string]string{"*:7-22": "100", "??": "80"})
	require.ErrorIs(t, err, ErrInvalidRule)

	rules, err = ParseSchedule(nil)
	require.NoError(t, err)
	assert.Nil(t, rules)
}
