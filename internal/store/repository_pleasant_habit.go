package store

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-habit-tracker/internal/logger"
	"github.com/MKhiriev/go-habit-tracker/models"
)

type pleasantHabitRepository struct {
	*DB
	logger *logger.Logger
}

func NewPleasantHabitRepository(db *DB, logger *logger.Logger) PleasantHabitRepository {
	logger.Debug().Msg("creating pleasant habit repository")
	return &pleasantHabitRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *pleasantHabitRepository) CreatePleasantHabit(ctx context.Context, habit models.PleasantHabit) (models.PleasantHabit, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreatePleasantHabitQuery(r.builder, habit)
	if err != nil {
		log.Err(err).Str("func", "*pleasantHabitRepository.CreatePleasantHabit").Msg("failed to build query")
		return models.PleasantHabit{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanPleasantHabit(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*pleasantHabitRepository.CreatePleasantHabit").Msg("error creating pleasant habit")
		return models.PleasantHabit{}, r.writeError(err)
	}

	return created, nil
}

func (r *pleasantHabitRepository) GetPleasantHabit(ctx context.Context, ownerID, habitID int64) (models.PleasantHabit, error) {
	query, args, err := buildGetPleasantHabitQuery(r.builder, ownerID, habitID)
	if err != nil {
		return models.PleasantHabit{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	habit, err := scanPleasantHabit(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.PleasantHabit{}, readError(err)
	}

	return habit, nil
}

func (r *pleasantHabitRepository) UpdatePleasantHabit(ctx context.Context, habit models.PleasantHabit) (models.PleasantHabit, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePleasantHabitQuery(r.builder, habit)
	if err != nil {
		log.Err(err).Str("func", "*pleasantHabitRepository.UpdatePleasantHabit").Msg("failed to build query")
		return models.PleasantHabit{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanPleasantHabit(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.PleasantHabit{}, r.writeError(err)
	}

	return updated, nil
}

func (r *pleasantHabitRepository) DeletePleasantHabit(ctx context.Context, ownerID, habitID int64) error {
	return r.deleteOwned(ctx, "*pleasantHabitRepository.DeletePleasantHabit", pleasantHabitsTable, ownerID, habitID)
}

func (r *pleasantHabitRepository) ListPleasantHabits(ctx context.Context, ownerID int64, page models.PageRequest) (models.Page[models.PleasantHabit], error) {
	return listPage(ctx, r.DB, "*pleasantHabitRepository.ListPleasantHabits", pleasantHabitsTable, pleasantHabitColumns,
		sq.Eq{"owner_id": ownerID}, page, scanPleasantHabit)
}

// PleasantHabitExists reports whether habitID is a pleasant habit of ownerID.
func (r *pleasantHabitRepository) PleasantHabitExists(ctx context.Context, ownerID, habitID int64) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildPleasantHabitExistsQuery(r.builder, ownerID, habitID)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	err = r.QueryRowContext(ctx, query, args...).Scan(&one)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(readError(err), ErrNotFound):
		return false, nil
	default:
		log.Err(err).Str("func", "*pleasantHabitRepository.PleasantHabitExists").Msg("failed to check pleasant habit")
		return false, readError(err)
	}
}
