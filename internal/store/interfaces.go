// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-habit-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with its generated id and join
	// date. A duplicate email returns [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	// UpdateProfile applies the non-nil fields of update. An empty
	// TelegramChatID clears the chat id.
	UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.User, error)
	// UpdateTelegramChatID sets (or clears with nil) the chat id of the user
	// identified by email.
	UpdateTelegramChatID(ctx context.Context, email string, chatID *string) (models.User, error)
}

// HabitRepository persists useful habits. Every owner scoped method returns
// [ErrNotFound] for records of other owners.
type HabitRepository interface {
	CreateHabit(ctx context.Context, habit models.Habit) (models.Habit, error)
	GetHabit(ctx context.Context, ownerID, habitID int64) (models.Habit, error)
	// UpdateHabit overwrites the mutable fields of the habit identified by
	// habit.ID and habit.OwnerID.
	UpdateHabit(ctx context.Context, habit models.Habit) (models.Habit, error)
	DeleteHabit(ctx context.Context, ownerID, habitID int64) error
	// ListOwnerHabits pages the habits of ownerID ordered by creation time.
	ListOwnerHabits(ctx context.Context, ownerID int64, page models.PageRequest) (models.Page[models.Habit], error)
	// ListPublicHabits pages the public habits of every owner.
	ListPublicHabits(ctx context.Context, page models.PageRequest) (models.Page[models.Habit], error)
	// FindDueReminders returns habits with time_of_day in [from, to) whose
	// owner has a chat id.
	FindDueReminders(ctx context.Context, from, to models.ClockTime) ([]models.Reminder, error)
}

// PleasantHabitRepository persists pleasant habits with the same owner
// scoping as [HabitRepository].
type PleasantHabitRepository interface {
	CreatePleasantHabit(ctx context.Context, habit models.PleasantHabit) (models.PleasantHabit, error)
	GetPleasantHabit(ctx context.Context, ownerID, habitID int64) (models.PleasantHabit, error)
	UpdatePleasantHabit(ctx context.Context, habit models.PleasantHabit) (models.PleasantHabit, error)
	// DeletePleasantHabit removes the habit; references from useful habits
	// are reset to NULL by the schema.
	DeletePleasantHabit(ctx context.Context, ownerID, habitID int64) error
	ListPleasantHabits(ctx context.Context, ownerID int64, page models.PageRequest) (models.Page[models.PleasantHabit], error)
	PleasantHabitExists(ctx context.Context, ownerID, habitID int64) (bool, error)
}
