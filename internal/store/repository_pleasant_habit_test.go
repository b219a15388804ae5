package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-habit-tracker/internal/logger"
	"github.com/MKhiriev/go-habit-tracker/models"
)

func TestCreatePleasantHabit(t *testing.T) {
	db, mock := newPostgresMock(t)
	repo := NewPleasantHabitRepository(db, logger.Nop())

	mock.ExpectQuery(`^INSERT INTO pleasant_habits \(owner_id,place,action\) VALUES \(\$1,\$2,\$3\) RETURNING id, owner_id, place, action, created_at`).
		WithArgs(1, "Park", "Walk").
		WillReturnRows(sqlmock.NewRows(pleasantHabitColumns).AddRow(3, 1, "Park", "Walk", time.Now()))

	created, err := repo.CreatePleasantHabit(context.Background(), models.PleasantHabit{OwnerID: 1, Place: "Park", Action: "Walk"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), created.ID)
	assert.True(t, created.IsPleasant)
}

func TestUpdatePleasantHabit_NotOwned(t *testing.T) {
	db, mock := newPostgresMock(t)
	repo := NewPleasantHabitRepository(db, logger.Nop())

	mock.ExpectQuery(`^UPDATE pleasant_habits SET place = \$1, action = \$2 WHERE id = \$3 AND owner_id = \$4`).
		WithArgs("Park", "Walk", 3, 2).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdatePleasantHabit(context.Background(), models.PleasantHabit{ID: 3, OwnerID: 2, Place: "Park", Action: "Walk"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeletePleasantHabit(t *testing.T) {
	db, mock := newPostgresMock(t)
	repo := NewPleasantHabitRepository(db, logger.Nop())

	mock.ExpectExec(`^DELETE FROM pleasant_habits WHERE id = \$1 AND owner_id = \$2`).
		WithArgs(3, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.DeletePleasantHabit(context.Background(), 1, 3))
}

func TestPleasantHabitExists(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(sqlmock.Sqlmock)
		want    bool
		wantErr bool
	}{
		{
			name: "exists",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(`^SELECT 1 FROM pleasant_habits WHERE id = \$1 AND owner_id = \$2 LIMIT 1`).
					WithArgs(3, 1).
					WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
			},
			want: true,
		},
		{
			name: "missing",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("FROM pleasant_habits").WillReturnError(sql.ErrNoRows)
			},
		},
		{
			name: "database failure",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("FROM pleasant_habits").WillReturnError(assert.AnError)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newPostgresMock(t)
			repo := NewPleasantHabitRepository(db, logger.Nop())
			tt.setup(mock)

			ok, err := repo.PleasantHabitExists(context.Background(), 1, 3)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrExecutingQuery)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestListPleasantHabits(t *testing.T) {
	db, mock := newPostgresMock(t)
	repo := NewPleasantHabitRepository(db, logger.Nop())

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM pleasant_habits WHERE owner_id = \$1`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	page, err := repo.ListPleasantHabits(context.Background(), 1, models.NewPageRequest(1, 5))
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.NotNil(t, page.Items)
	assert.True(t, page.Exists())
}
