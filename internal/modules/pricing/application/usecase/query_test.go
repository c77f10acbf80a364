package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kortyPricing/internal/modules/pricing/domain"
)

func loadedQuery(t *testing.T) (*QueryUseCase, *time.Location) {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Warsaw")
	require.NoError(t, err)
	snapshot := NewSnapshotUseCase(&stubSource{catalog: validCatalog()}, testCalendar(t))
	_, err = snapshot.Reload(context.Background())
	require.NoError(t, err)
	return NewQueryUseCase(snapshot), loc
}

func TestQueryListClubs(t *testing.T) {
	uc, loc := loadedQuery(t)
	date := time.Date(2024, 11, 6, 0, 0, 0, 0, loc)

	clubs, err := uc.ListClubs(date)
	require.NoError(t, err)
	require.Len(t, clubs, 1)

	club := clubs[0]
	assert.Equal(t, "matchpoint", club.ID)
	require.Len(t, club.Groups, 1)

	group := club.Groups[0]
	assert.Equal(t, []string{"1", "2"}, group.Courts)
	assert.False(t, group.Closed)
	require.NotNil(t, group.Weekday)
	assert.Equal(t, domain.MinMax{Min: 60, Max: 100}, *group.Weekday)
	require.NotNil(t, group.Weekend)
}

func TestQueryListClubsOutsideAnyPeriod(t *testing.T) {
	uc, loc := loadedQuery(t)
	date := time.Date(2030, 6, 1, 0, 0, 0, 0, loc)

	clubs, err := uc.ListClubs(date)
	require.NoError(t, err)
	group := clubs[0].Groups[0]
	assert.True(t, group.Closed)
	assert.Nil(t, group.Weekday)
	assert.Nil(t, group.Weekend)
}

func TestQueryQuote(t *testing.T) {
	uc, loc := loadedQuery(t)
	start := time.Date(2024, 11, 4, 10, 0, 0, 0, loc)

	quote, err := uc.Quote("matchpoint", 0, start, start.Add(90*time.Minute))
	require.NoError(t, err)
	assert.True(t, quote.Available)
	assert.Equal(t, 150.0, quote.Price)
	assert.Equal(t, "PLN", quote.Currency)

	_, err = uc.Quote("nowhere", 0, start, start.Add(time.Hour))
	assert.ErrorIs(t, err, domain.ErrClubNotFound)

	_, err = uc.Quote("matchpoint", 7, start, start.Add(time.Hour))
	assert.ErrorIs(t, err, domain.ErrGroupNotFound)

	_, err = uc.Quote("matchpoint", 0, start, start.Add(10*time.Minute))
	assert.ErrorIs(t, err, domain.ErrNotHalfHourAligned)
}

func TestQuerySummary(t *testing.T) {
	uc, loc := loadedQuery(t)
	date := time.Date(2024, 11, 2, 0, 0, 0, 0, loc)

	view, err := uc.Summary("matchpoint", 0, date)
	require.NoError(t, err)
	assert.Equal(t, "2024-11-02", view.Date)
	assert.False(t, view.Closed)
	require.NotNil(t, view.Day)
	assert.Equal(t, domain.MinMax{Min: 60, Max: 100}, *view.Day)
	require.NotNil(t, view.Weekday)
	require.NotNil(t, view.Weekend)
}
