package store

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-habit-tracker/internal/logger"
	"github.com/MKhiriev/go-habit-tracker/models"
)

// habitRepository is the SQL implementation of [HabitRepository] over the
// "habits" table.
type habitRepository struct {
	*DB
	logger *logger.Logger
}

func NewHabitRepository(db *DB, logger *logger.Logger) HabitRepository {
	logger.Debug().Msg("creating habit repository")
	return &habitRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateHabit inserts habit and returns the stored record with its id and
// creation time. A related_habit_id pointing to a missing pleasant habit
// returns [ErrInvalidReference].
func (r *habitRepository) CreateHabit(ctx context.Context, habit models.Habit) (models.Habit, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateHabitQuery(r.builder, habit)
	if err != nil {
		log.Err(err).Str("func", "*habitRepository.CreateHabit").Msg("failed to build query")
		return models.Habit{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanHabit(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "*habitRepository.CreateHabit").
			Int64("owner_id", habit.OwnerID).
			Msg("error creating habit")
		return models.Habit{}, r.writeError(err)
	}

	return created, nil
}

func (r *habitRepository) GetHabit(ctx context.Context, ownerID, habitID int64) (models.Habit, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetHabitQuery(r.builder, ownerID, habitID)
	if err != nil {
		log.Err(err).Str("func", "*habitRepository.GetHabit").Msg("failed to build query")
		return models.Habit{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	habit, err := scanHabit(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Habit{}, readError(err)
	}

	return habit, nil
}

// UpdateHabit overwrites the mutable columns of the habit matching both
// habit.ID and habit.OwnerID. No match returns [ErrNotFound].
func (r *habitRepository) UpdateHabit(ctx context.Context, habit models.Habit) (models.Habit, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateHabitQuery(r.builder, habit)
	if err != nil {
		log.Err(err).Str("func", "*habitRepository.UpdateHabit").Msg("failed to build query")
		return models.Habit{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanHabit(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		werr := r.writeError(err)
		if !errors.Is(werr, ErrNotFound) {
			log.Err(err).
				Str("func", "*habitRepository.UpdateHabit").
				Int64("habit_id", habit.ID).
				Msg("error updating habit")
		}
		return models.Habit{}, werr
	}

	return updated, nil
}

func (r *habitRepository) DeleteHabit(ctx context.Context, ownerID, habitID int64) error {
	return r.deleteOwned(ctx, "*habitRepository.DeleteHabit", habitsTable, ownerID, habitID)
}

func (r *habitRepository) ListOwnerHabits(ctx context.Context, ownerID int64, page models.PageRequest) (models.Page[models.Habit], error) {
	return listPage(ctx, r.DB, "*habitRepository.ListOwnerHabits", habitsTable, habitColumns,
		sq.Eq{"owner_id": ownerID}, page, scanHabit)
}

func (r *habitRepository) ListPublicHabits(ctx context.Context, page models.PageRequest) (models.Page[models.Habit], error) {
	return listPage(ctx, r.DB, "*habitRepository.ListPublicHabits", habitsTable, habitColumns,
		sq.Eq{"is_public": true}, page, scanHabit)
}

// FindDueReminders selects habits with time_of_day in [from, to) joined
// with the chat id of their owners.
func (r *habitRepository) FindDueReminders(ctx context.Context, from, to models.ClockTime) ([]models.Reminder, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDueRemindersQuery(r.builder, from, to)
	if err != nil {
		log.Err(err).Str("func", "*habitRepository.FindDueReminders").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*habitRepository.FindDueReminders").
			Stringer("from", from).
			Stringer("to", to).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	reminders, err := scanAll(rows, func(row rowScanner) (models.Reminder, error) {
		var rem models.Reminder
		err := row.Scan(&rem.HabitID, &rem.OwnerID, &rem.Action, &rem.TimeOfDay, &rem.ChatID)
		return rem, err
	})
	if err != nil {
		log.Err(err).Str("func", "*habitRepository.FindDueReminders").Msg("failed to scan reminders")
		return nil, err
	}

	return reminders, nil
}

// deleteOwned removes the row of table matching id and ownerID.
// Zero affected rows returns [ErrNotFound].
func (db *DB) deleteOwned(ctx context.Context, funcName, table string, ownerID, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteQuery(db.builder, table, ownerID, id)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Int64("id", id).Msg("failed to execute delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// listPage runs the count and the page query of a listing.
func listPage[T any](
	ctx context.Context,
	db *DB,
	funcName, table string,
	columns []string,
	where sq.Sqlizer,
	page models.PageRequest,
	scan func(rowScanner) (T, error),
) (models.Page[T], error) {
	log := logger.FromContext(ctx)
	result := models.Page[T]{Request: page}

	countQuery, countArgs, err := buildCountQuery(db.builder, table, where)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build count query")
		return result, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if err = db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&result.Total); err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to count records")
		return result, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	result.Items = make([]T, 0)
	if page.Offset() >= result.Total {
		return result, nil
	}

	query, args, err := buildListQuery(db.builder, table, columns, where, page)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build list query")
		return result, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute list query")
		return result, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	items, err := scanAll(rows, scan)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to scan records")
		return result, err
	}
	result.Items = items

	return result, nil
}
