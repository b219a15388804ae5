package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-habit-tracker/internal/logger"
	"github.com/MKhiriev/go-habit-tracker/internal/store"
	"github.com/MKhiriev/go-habit-tracker/internal/validators"
	"github.com/MKhiriev/go-habit-tracker/models"
)

// habitService persists useful habits. It trusts its input; validation is
// added by wrapping it with NewHabitValidationService.
type habitService struct {
	habitRepository store.HabitRepository

	logger *logger.Logger
}

func NewHabitService(habitRepository store.HabitRepository, logger *logger.Logger) HabitService {
	return &habitService{
		habitRepository: habitRepository,
		logger:          logger,
	}
}

func (s *habitService) CreateHabit(ctx context.Context, ownerID int64, input models.HabitInput) (models.Habit, error) {
	habit := models.Habit{OwnerID: ownerID}
	models.NewHabitCandidate(habit, input, false).ApplyTo(&habit, input, false)

	created, err := s.habitRepository.CreateHabit(ctx, habit)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*habitService.CreateHabit").Int64("owner_id", ownerID).Msg("error creating habit")
		return models.Habit{}, fmt.Errorf("error creating habit: %w", relatedHabitError(err))
	}

	return created, nil
}

func (s *habitService) GetHabit(ctx context.Context, ownerID, habitID int64) (models.Habit, error) {
	habit, err := s.habitRepository.GetHabit(ctx, ownerID, habitID)
	if err != nil {
		return models.Habit{}, fmt.Errorf("error getting habit: %w", err)
	}
	return habit, nil
}

// UpdateHabit loads the stored habit, applies input onto it and writes the
// result back. Identity fields and created_at are never changed.
func (s *habitService) UpdateHabit(ctx context.Context, ownerID, habitID int64, input models.HabitInput, partial bool) (models.Habit, error) {
	stored, err := s.habitRepository.GetHabit(ctx, ownerID, habitID)
	if err != nil {
		return models.Habit{}, fmt.Errorf("error getting habit: %w", err)
	}

	base := models.Habit{OwnerID: ownerID}
	if partial {
		base = stored
	}

	habit := stored
	models.NewHabitCandidate(base, input, partial).ApplyTo(&habit, input, partial)

	updated, err := s.habitRepository.UpdateHabit(ctx, habit)
	if err != nil {
		return models.Habit{}, fmt.Errorf("error updating habit: %w", relatedHabitError(err))
	}

	return updated, nil
}

func (s *habitService) DeleteHabit(ctx context.Context, ownerID, habitID int64) error {
	if err := s.habitRepository.DeleteHabit(ctx, ownerID, habitID); err != nil {
		return fmt.Errorf("error deleting habit: %w", err)
	}
	return nil
}

func (s *habitService) ListHabits(ctx context.Context, ownerID int64, page models.PageRequest) (models.Page[models.Habit], error) {
	habits, err := s.habitRepository.ListOwnerHabits(ctx, ownerID, page)
	if err != nil {
		return models.Page[models.Habit]{}, fmt.Errorf("error listing habits: %w", err)
	}
	return habits, nil
}

func (s *habitService) ListPublicHabits(ctx context.Context, page models.PageRequest) (models.Page[models.Habit], error) {
	habits, err := s.habitRepository.ListPublicHabits(ctx, page)
	if err != nil {
		return models.Page[models.Habit]{}, fmt.Errorf("error listing public habits: %w", err)
	}
	return habits, nil
}

// relatedHabitError turns a foreign key failure, raised when the related
// pleasant habit vanished after validation, into a field error.
func relatedHabitError(err error) error {
	if !errors.Is(err, store.ErrInvalidReference) {
		return err
	}
	return validators.NewValidationError(validators.FieldError{
		Field:   validators.FieldRelated,
		Kind:    validators.KindInvalidRelatedHabit,
		Message: "Related habit must be one of your pleasant habits.",
	})
}
