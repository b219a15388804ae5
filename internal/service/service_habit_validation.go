package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-habit-tracker/internal/validators"
	"github.com/MKhiriev/go-habit-tracker/models"
)

// HabitValidationService runs the habit rules on the record a write would
// produce and delegates to the wrapped service only when every rule passes.
type HabitValidationService struct {
	inner     HabitService
	validator validators.Validator
}

func NewHabitValidationService(resolver validators.PleasantHabitResolver) HabitServiceWrapper {
	return &HabitValidationService{
		validator: validators.NewHabitValidator(resolver),
	}
}

func (v *HabitValidationService) CreateHabit(ctx context.Context, ownerID int64, input models.HabitInput) (models.Habit, error) {
	candidate := models.NewHabitCandidate(models.Habit{OwnerID: ownerID}, input, false)
	if err := v.validator.Validate(ctx, candidate); err != nil {
		return models.Habit{}, fmt.Errorf("error during habit validation before saving: %w", err)
	}

	return v.inner.CreateHabit(ctx, ownerID, input)
}

func (v *HabitValidationService) GetHabit(ctx context.Context, ownerID, habitID int64) (models.Habit, error) {
	return v.inner.GetHabit(ctx, ownerID, habitID)
}

// UpdateHabit validates the merged record of a partial update, or the input
// alone for a full update. Habits of other owners return store.ErrNotFound
// before any rule runs.
func (v *HabitValidationService) UpdateHabit(ctx context.Context, ownerID, habitID int64, input models.HabitInput, partial bool) (models.Habit, error) {
	stored, err := v.inner.GetHabit(ctx, ownerID, habitID)
	if err != nil {
		return models.Habit{}, err
	}

	base := models.Habit{OwnerID: ownerID}
	if partial {
		base = stored
	}

	candidate := models.NewHabitCandidate(base, input, partial)
	if err = v.validator.Validate(ctx, candidate); err != nil {
		return models.Habit{}, fmt.Errorf("error during habit validation before updating: %w", err)
	}

	return v.inner.UpdateHabit(ctx, ownerID, habitID, input, partial)
}

func (v *HabitValidationService) DeleteHabit(ctx context.Context, ownerID, habitID int64) error {
	return v.inner.DeleteHabit(ctx, ownerID, habitID)
}

func (v *HabitValidationService) ListHabits(ctx context.Context, ownerID int64, page models.PageRequest) (models.Page[models.Habit], error) {
	return v.inner.ListHabits(ctx, ownerID, page)
}

func (v *HabitValidationService) ListPublicHabits(ctx context.Context, page models.PageRequest) (models.Page[models.Habit], error) {
	return v.inner.ListPublicHabits(ctx, page)
}

func (v *HabitValidationService) Wrap(wrapped HabitService) HabitService {
	v.inner = wrapped
	return v
}
