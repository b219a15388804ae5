package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-habit-tracker/models"
)

// rowScanner is implemented by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(
		&u.UserID,
		&u.Email,
		&u.PasswordHash,
		&u.FirstName,
		&u.LastName,
		&u.TelegramChatID,
		&u.IsActive,
		timeScanner{&u.DateJoined},
	)
	return u, err
}

func scanHabit(row rowScanner) (models.Habit, error) {
	var h models.Habit
	err := row.Scan(
		&h.ID,
		&h.OwnerID,
		&h.Place,
		&h.TimeOfDay,
		&h.Action,
		&h.RelatedHabitID,
		&h.Periodicity,
		&h.Reward,
		&h.Duration,
		&h.IsPublic,
		timeScanner{&h.CreatedAt},
	)
	return h, err
}

func scanPleasantHabit(row rowScanner) (models.PleasantHabit, error) {
	p := models.PleasantHabit{IsPleasant: true}
	err := row.Scan(&p.ID, &p.OwnerID, &p.Place, &p.Action, timeScanner{&p.CreatedAt})
	return p, err
}

// scanAll drains rows with scan.
func scanAll[T any](rows *sql.Rows, scan func(rowScanner) (T, error)) ([]T, error) {
	defer rows.Close()

	items := make([]T, 0, 10)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

// writeError converts a failed INSERT/UPDATE ... RETURNING into a store error.
func (db *DB) writeError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	switch db.classify(err) {
	case ForeignKeyViolation:
		return fmt.Errorf("%w: %w", ErrInvalidReference, err)
	case CheckViolation:
		return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
	}

	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}

// readError converts a failed single-row SELECT into a store error.
func readError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

// sqliteTimeLayouts are the text forms SQLite stores timestamps in.
var sqliteTimeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	time.RFC3339Nano,
}

// timeScanner scans a timestamp delivered either as time.Time or as text.
// go-sqlite3 returns text when the column type is not known, as for
// RETURNING clauses.
type timeScanner struct {
	t *time.Time
}

func (s timeScanner) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*s.t = v
		return nil
	case string:
		return s.parse(v)
	case []byte:
		return s.parse(string(v))
	case nil:
		*s.t = time.Time{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into time.Time", src)
	}
}

func (s timeScanner) parse(value string) error {
	for _, layout := range sqliteTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			*s.t = t
			return nil
		}
	}
	return fmt.Errorf("cannot parse %q as time", value)
}
