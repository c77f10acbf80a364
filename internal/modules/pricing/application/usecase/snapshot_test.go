package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kortyPricing/internal/modules/pricing/domain"
)

type stubSource struct {
	catalog domain.Catalog
	err     error
}

func (s *stubSource) Load(context.Context) (domain.Catalog, error) { return s.catalog, s.err }
func (s *stubSource) Decode([]byte) (domain.Catalog, error)        { return s.catalog, s.err }

func testCalendar(t *testing.T) *domain.HolidayCalendar {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Warsaw")
	require.NoError(t, err)
	return domain.NewPolishHolidayCalendar(loc, 2023, 2025)
}

func validCatalog() domain.Catalog {
	return domain.Catalog{{
		ID:      "matchpoint",
		Name:    "MatchPoint",
		Address: "Fabryczna 10, Wrocław",
		Courts: []domain.GroupDocument{{
			Surface: "clay",
			Type:    "indoor",
			Courts:  []string{"1", "2"},
			Prices: []domain.PeriodDocument{{
				From:     "2024-01-01",
				To:       "2024-12-31",
				Schedule: map[string]string{"*:7-22": "100", "*:22-7": "60"},
			}},
		}},
	}}
}

func TestSnapshotReloadSwapsIn(t *testing.T) {
	uc := NewSnapshotUseCase(&stubSource{catalog: validCatalog()}, testCalendar(t))

	_, err := uc.Current()
	require.ErrorIs(t, err, ErrNotLoaded)

	report, err := uc.Reload(context.Background())
	require.NoError(t, err)
	assert.True(t, report.IsValid)

	sys, err := uc.Current()
	require.NoError(t, err)
	assert.Len(t, sys.List(), 1)
}

func TestSnapshotReloadSourceError(t *testing.T) {
	uc := NewSnapshotUseCase(&stubSource{err: errors.New("file missing")}, testCalendar(t))

	_, err := uc.Reload(context.Background())
	require.Error(t, err)
	_, err = uc.Current()
	assert.ErrorIs(t, err, ErrNotLoaded)
}

func TestSnapshotRejectsUnbuildableCatalog(t *testing.T) {
	uc := NewSnapshotUseCase(&stubSource{catalog: validCatalog()}, testCalendar(t))
	_, err := uc.Reload(context.Background())
	require.NoError(t, err)
	before, err := uc.Current()
	require.NoError(t, err)

	broken := validCatalog()
	broken[0].Courts[0].Prices[0].Schedule = map[string]string{"xx:7-22": "100"}
	_, err = uc.Apply(broken)
	require.ErrorIs(t, err, ErrCatalogRejected)

	after, err := uc.Current()
	require.NoError(t, err)
	assert.Same(t, before, after, "rejected catalog must not replace the snapshot")
}

func TestSnapshotRejectsInvalidSchedule(t *testing.T) {
	uc := NewSnapshotUseCase(&stubSource{catalog: validCatalog()}, testCalendar(t))
	_, err := uc.Reload(context.Background())
	require.NoError(t, err)

	gappy := validCatalog()
	gappy[0].Courts[0].Prices[0].Schedule = map[string]string{"*:7-12": "100"}
	report, err := uc.Apply(gappy)
	require.ErrorIs(t, err, ErrCatalogRejected)
	assert.False(t, report.IsValid)
	assert.NotEmpty(t, report.Errors)
}
