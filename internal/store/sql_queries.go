package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-habit-tracker/models"
)

const (
	usersTable          = "users"
	habitsTable         = "habits"
	pleasantHabitsTable = "pleasant_habits"
)

var (
	userColumns = []string{
		"user_id", "email", "password_hash", "first_name", "last_name",
		"telegram_chat_id", "is_active", "date_joined",
	}

	habitColumns = []string{
		"id", "owner_id", "place", "time_of_day", "action", "related_habit_id",
		"periodicity", "reward", "duration_seconds", "is_public", "created_at",
	}

	pleasantHabitColumns = []string{"id", "owner_id", "place", "action", "created_at"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// ── users ─────────────────────────────────────────────────────────────────────

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("email", "password_hash", "first_name", "last_name", "telegram_chat_id", "is_active").
		Values(user.Email, user.PasswordHash, user.FirstName, user.LastName, user.TelegramChatID, user.IsActive).
		Suffix(returning(userColumns)).
		ToSql()
}

func buildFindUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(where).
		ToSql()
}

func buildUpdateUserQuery(b sq.StatementBuilderType, where sq.Eq, set map[string]any) (string, []any, error) {
	return b.Update(usersTable).
		SetMap(set).
		Where(where).
		Suffix(returning(userColumns)).
		ToSql()
}

// ── habits ────────────────────────────────────────────────────────────────────

func habitValues(h models.Habit) map[string]any {
	return map[string]any{
		"place":            h.Place,
		"time_of_day":      h.TimeOfDay,
		"action":           h.Action,
		"related_habit_id": h.RelatedHabitID,
		"periodicity":      h.Periodicity,
		"reward":           h.Reward,
		"duration_seconds": h.Duration,
		"is_public":        h.IsPublic,
	}
}

func buildCreateHabitQuery(b sq.StatementBuilderType, h models.Habit) (string, []any, error) {
	values := habitValues(h)
	values["owner_id"] = h.OwnerID

	return b.Insert(habitsTable).
		SetMap(values).
		Suffix(returning(habitColumns)).
		ToSql()
}

func buildGetHabitQuery(b sq.StatementBuilderType, ownerID, habitID int64) (string, []any, error) {
	return b.Select(habitColumns...).
		From(habitsTable).
		Where(sq.Eq{"id": habitID, "owner_id": ownerID}).
		ToSql()
}

func buildUpdateHabitQuery(b sq.StatementBuilderType, h models.Habit) (string, []any, error) {
	return b.Update(habitsTable).
		SetMap(habitValues(h)).
		Where(sq.Eq{"id": h.ID, "owner_id": h.OwnerID}).
		Suffix(returning(habitColumns)).
		ToSql()
}

func buildDeleteQuery(b sq.StatementBuilderType, table string, ownerID, id int64) (string, []any, error) {
	return b.Delete(table).
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		ToSql()
}

// buildListQuery selects one page of table ordered by creation time, id
// breaking ties.
func buildListQuery(b sq.StatementBuilderType, table string, columns []string, where sq.Sqlizer, page models.PageRequest) (string, []any, error) {
	return b.Select(columns...).
		From(table).
		Where(where).
		OrderBy("created_at ASC", "id ASC").
		Limit(uint64(page.Size)).
		Offset(uint64(page.Offset())).
		ToSql()
}

func buildCountQuery(b sq.StatementBuilderType, table string, where sq.Sqlizer) (string, []any, error) {
	return b.Select("COUNT(*)").
		From(table).
		Where(where).
		ToSql()
}

// buildDueRemindersQuery joins habits due in [from, to) with the chat id of
// their owners. Owners without a chat id are excluded.
func buildDueRemindersQuery(b sq.StatementBuilderType, from, to models.ClockTime) (string, []any, error) {
	return b.Select("h.id", "h.owner_id", "h.action", "h.time_of_day", "u.telegram_chat_id").
		From(habitsTable + " h").
		Join(usersTable + " u ON u.user_id = h.owner_id").
		Where(sq.And{
			sq.GtOrEq{"h.time_of_day": from},
			sq.Lt{"h.time_of_day": to},
			sq.NotEq{"u.telegram_chat_id": nil},
			sq.NotEq{"u.telegram_chat_id": ""},
		}).
		OrderBy("h.time_of_day ASC", "h.id ASC").
		ToSql()
}

// ── pleasant habits ───────────────────────────────────────────────────────────

func buildCreatePleasantHabitQuery(b sq.StatementBuilderType, p models.PleasantHabit) (string, []any, error) {
	return b.Insert(pleasantHabitsTable).
		Columns("owner_id", "place", "action").
		Values(p.OwnerID, p.Place, p.Action).
		Suffix(returning(pleasantHabitColumns)).
		ToSql()
}

func buildGetPleasantHabitQuery(b sq.StatementBuilderType, ownerID, habitID int64) (string, []any, error) {
	return b.Select(pleasantHabitColumns...).
		From(pleasantHabitsTable).
		Where(sq.Eq{"id": habitID, "owner_id": ownerID}).
		ToSql()
}

func buildUpdatePleasantHabitQuery(b sq.StatementBuilderType, p models.PleasantHabit) (string, []any, error) {
	return b.Update(pleasantHabitsTable).
		Set("place", p.Place).
		Set("action", p.Action).
		Where(sq.Eq{"id": p.ID, "owner_id": p.OwnerID}).
		Suffix(returning(pleasantHabitColumns)).
		ToSql()
}

func buildPleasantHabitExistsQuery(b sq.StatementBuilderType, ownerID, habitID int64) (string, []any, error) {
	return b.Select("1").
		From(pleasantHabitsTable).
		Where(sq.Eq{"id": habitID, "owner_id": ownerID}).
		Limit(1).
		ToSql()
}
