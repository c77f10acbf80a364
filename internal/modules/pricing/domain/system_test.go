package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() Catalog {
	return Catalog{
		{
			ID:             "matchpoint",
			Name:           "MatchPoint",
			Address:        "Fabryczna 10, Wrocław",
			GoogleMapsLink: "https://maps.example.com/matchpoint",
			Website:        "https://matchpoint.example.com",
			Courts: []GroupDocument{
				{
					Surface: "clay",
					Type:    "indoor",
					Courts:  []string{"1", "2", "3"},
					Prices: []PeriodDocument{
						{From: "2024-01-01", To: "2024-12-31", Schedule: map[string]string{"*:7-22": "100"}},
					},
				},
				{
					Surface: "hard",
					Type:    "outdoor",
					Courts:  []string{"4", "5"},
					Prices:  []PeriodDocument{{From: "2024-10-01", To: "2025-04-30"}},
				},
			},
		},
		{
			ID:      "krzycka",
			Name:    "Krzycka Park",
			Address: "Krzycka 1, Wrocław",
			Courts: []GroupDocument{
				{
					Surface: "clay",
					Type:    "outdoor",
					Courts:  []string{"1"},
					Prices: []PeriodDocument{
						{From: "2024-05-01", To: "2024-09-30", Schedule: map[string]string{"*:7-22": "50"}},
					},
				},
			},
		},
	}
}

func TestNewPricingSystem(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Warsaw")
	require.NoError(t, err)
	cal := NewPolishHolidayCalendar(loc, 2023, 2025)

	sys, err := NewPricingSystem(testCatalog(), cal)
	require.NoError(t, err)

	clubs := sys.List()
	require.Len(t, clubs, 2)
	assert.Equal(t, "matchpoint", clubs[0].ID)
	assert.Len(t, clubs[0].Groups, 2)
	assert.Len(t, clubs[0].Groups[0].Courts, 3)

	club, err := sys.Club("krzycka")
	require.NoError(t, err)
	assert.Equal(t, "Krzycka Park", club.Name)

	_, err = sys.Club("nowhere")
	assert.ErrorIs(t, err, ErrClubNotFound)

	group, err := sys.Group("matchpoint", 1)
	require.NoError(t, err)
	assert.Equal(t, "hard outdoor", group.Key())

	_, err = sys.Group("matchpoint", 5)
	assert.ErrorIs(t, err, ErrGroupNotFound)
	_, err = sys.Group("nowhere", 0)
	assert.ErrorIs(t, err, ErrClubNotFound)
}

func TestNewPricingSystemFailsFast(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Warsaw")
	require.NoError(t, err)
	cal := NewPolishHolidayCalendar(loc, 2023, 2025)

	testCases := []struct {
		name     string
		mutate   func(Catalog) Catalog
		fragment string
	}{
		{
			name: "bad rule key names the club",
			mutate: func(c Catalog) Catalog {
				c[0].Courts[0].Prices[0].Schedule = map[string]string{"xx:7-22": "100"}
				return c
			},
			fragment: "MatchPoint",
		},
		{
			name: "bad period date",
			mutate: func(c Catalog) Catalog {
				c[1].Courts[0].Prices[0].From = "May 1st"
				return c
			},
			fragment: "Krzycka Park",
		},
		{
			name: "inverted period",
			mutate: func(c Catalog) Catalog {
				c[0].Courts[0].Prices[0].From = "2024-12-31"
				c[0].Courts[0].Prices[0].To = "2024-01-01"
				return c
			},
			fragment: "ends before it starts",
		},
		{
			name: "duplicate club id",
			mutate: func(c Catalog) Catalog {
				c[1].ID = "matchpoint"
				return c
			},
			fragment: "duplicate id",
		},
		{
			name: "missing club id",
			mutate: func(c Catalog) Catalog {
				c[0].ID = ""
				return c
			},
			fragment: "missing id",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewPricingSystem(tc.mutate(testCatalog()), cal)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.fragment)
		})
	}
}

func TestNewPricingSystemRequiresCalendar(t *testing.T) {
	_, err := NewPricingSystem(testCatalog(), nil)
	require.Error(t, err)
}
