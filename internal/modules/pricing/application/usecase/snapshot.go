package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"kortyPricing/internal/modules/pricing/application/port"
	"kortyPricing/internal/modules/pricing/domain"
)

var (
	// ErrNotLoaded reports a query before the first catalog load succeeded.
	ErrNotLoaded = errors.New("pricing snapshot not loaded")
	// ErrCatalogRejected reports a catalog that failed to build or
	// validate; the previous snapshot keeps serving.
	ErrCatalogRejected = errors.New("catalog rejected")
)

// SnapshotUseCase owns the served PricingSystem. The system itself is
// immutable; replacing it is a single atomic pointer swap, so readers never
// see a half-applied catalog.
type SnapshotUseCase struct {
	source  port.CatalogSource
	cal     *domain.HolidayCalendar
	current atomic.Pointer[domain.PricingSystem]
}

func NewSnapshotUseCase(source port.CatalogSource, cal *domain.HolidayCalendar) *SnapshotUseCase {
	return &SnapshotUseCase{source: source, cal: cal}
}

// Current returns the served system, or ErrNotLoaded before the first
// successful load.
func (uc *SnapshotUseCase) Current() (*domain.PricingSystem, error) {
	if sys := uc.current.Load(); sys != nil {
		return sys, nil
	}
	return nil, ErrNotLoaded
}

// Reload reads the configured catalog source and applies it.
func (uc *SnapshotUseCase) Reload(ctx context.Context) (domain.Report, error) {
	catalog, err := uc.source.Load(ctx)
	if err != nil {
		return domain.Report{}, fmt.Errorf("load catalog: %w", err)
	}
	return uc.Apply(catalog)
}

// Apply compiles and validates the catalog, swapping it in only when both
// succeed. A rejected catalog leaves the previous snapshot serving.
func (uc *SnapshotUseCase) Apply(catalog domain.Catalog) (domain.Report, error) {
	sys, err := domain.NewPricingSystem(catalog, uc.cal)
	if err != nil {
		return domain.Report{}, fmt.Errorf("%w: %v", ErrCatalogRejected, err)
	}
	report := domain.Validate(sys)
	if !report.IsValid {
		return report, fmt.Errorf("%w: %d validation errors", ErrCatalogRejected, len(report.Errors))
	}
	uc.current.Store(sys)
	slog.Info("pricing snapshot swapped", slog.Int("clubs", len(sys.List())))
	return report, nil
}
