package usecase

import "kortyPricing/internal/modules/pricing/domain"

// ValidateUseCase runs the schedule validator against the current snapshot.
type ValidateUseCase struct {
	snapshot *SnapshotUseCase
}

func NewValidateUseCase(snapshot *SnapshotUseCase) *ValidateUseCase {
	return &ValidateUseCase{snapshot: snapshot}
}

func (uc *ValidateUseCase) Execute() (domain.Report, error) {
	sys, err := uc.snapshot.Current()
	if err != nil {
		return domain.Report{}, err
	}
	return domain.Validate(sys), nil
}
