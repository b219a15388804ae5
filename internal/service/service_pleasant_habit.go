package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-habit-tracker/internal/logger"
	"github.com/MKhiriev/go-habit-tracker/internal/store"
	"github.com/MKhiriev/go-habit-tracker/internal/validators"
	"github.com/MKhiriev/go-habit-tracker/models"
)

type pleasantHabitService struct {
	pleasantHabitRepository store.PleasantHabitRepository
	validator               validators.Validator

	logger *logger.Logger
}

func NewPleasantHabitService(pleasantHabitRepository store.PleasantHabitRepository, logger *logger.Logger) PleasantHabitService {
	return &pleasantHabitService{
		pleasantHabitRepository: pleasantHabitRepository,
		validator:               validators.NewHabitValidator(nil),
		logger:                  logger,
	}
}

func (s *pleasantHabitService) CreatePleasantHabit(ctx context.Context, ownerID int64, input models.PleasantHabitInput) (models.PleasantHabit, error) {
	habit := applyPleasantHabitInput(models.PleasantHabit{OwnerID: ownerID}, input)
	if err := s.validator.Validate(ctx, habit); err != nil {
		return models.PleasantHabit{}, err
	}

	created, err := s.pleasantHabitRepository.CreatePleasantHabit(ctx, habit)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*pleasantHabitService.CreatePleasantHabit").Int64("owner_id", ownerID).Msg("error creating pleasant habit")
		return models.PleasantHabit{}, fmt.Errorf("error creating pleasant habit: %w", err)
	}
	return created, nil
}

func (s *pleasantHabitService) GetPleasantHabit(ctx context.Context, ownerID, habitID int64) (models.PleasantHabit, error) {
	habit, err := s.pleasantHabitRepository.GetPleasantHabit(ctx, ownerID, habitID)
	if err != nil {
		return models.PleasantHabit{}, fmt.Errorf("error getting pleasant habit: %w", err)
	}
	return habit, nil
}

func (s *pleasantHabitService) UpdatePleasantHabit(ctx context.Context, ownerID, habitID int64, input models.PleasantHabitInput, partial bool) (models.PleasantHabit, error) {
	stored, err := s.pleasantHabitRepository.GetPleasantHabit(ctx, ownerID, habitID)
	if err != nil {
		return models.PleasantHabit{}, fmt.Errorf("error getting pleasant habit: %w", err)
	}

	base := stored
	if !partial {
		base.Place, base.Action = "", ""
	}
	habit := applyPleasantHabitInput(base, input)
	if err = s.validator.Validate(ctx, habit); err != nil {
		return models.PleasantHabit{}, err
	}

	updated, err := s.pleasantHabitRepository.UpdatePleasantHabit(ctx, habit)
	if err != nil {
		return models.PleasantHabit{}, fmt.Errorf("error updating pleasant habit: %w", err)
	}
	return updated, nil
}

// DeletePleasantHabit removes the habit. Useful habits referencing it lose
// their related habit.
func (s *pleasantHabitService) DeletePleasantHabit(ctx context.Context, ownerID, habitID int64) error {
	if err := s.pleasantHabitRepository.DeletePleasantHabit(ctx, ownerID, habitID); err != nil {
		return fmt.Errorf("error deleting pleasant habit: %w", err)
	}
	return nil
}

func (s *pleasantHabitService) ListPleasantHabits(ctx context.Context, ownerID int64, page models.PageRequest) (models.Page[models.PleasantHabit], error) {
	habits, err := s.pleasantHabitRepository.ListPleasantHabits(ctx, ownerID, page)
	if err != nil {
		return models.Page[models.PleasantHabit]{}, fmt.Errorf("error listing pleasant habits: %w", err)
	}
	return habits, nil
}

func applyPleasantHabitInput(habit models.PleasantHabit, input models.PleasantHabitInput) models.PleasantHabit {
	if input.Place != nil {
		habit.Place = *input.Place
	}
	if input.Action != nil {
		habit.Action = *input.Action
	}
	habit.IsPleasant = true
	return habit
}
