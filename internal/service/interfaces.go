package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-habit-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=HabitServiceWrapper

type AuthService interface {
	// RegisterUser validates the registration payload, hashes the password
	// and persists the account.
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	// Login checks credentials and issues an access/refresh token pair.
	Login(ctx context.Context, credentials models.Credentials) (models.TokenPair, error)
	CreateTokenPair(ctx context.Context, user models.User) (models.TokenPair, error)
	// RefreshAccessToken exchanges a valid refresh token for a new access token.
	RefreshAccessToken(ctx context.Context, request models.RefreshRequest) (models.AccessTokenResponse, error)
	// ParseAccessToken validates an access token and returns its claims.
	ParseAccessToken(ctx context.Context, tokenString string) (models.Token, error)
}

type UserService interface {
	GetProfile(ctx context.Context, userID int64) (models.User, error)
	UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.User, error)
	// SetTelegramChatID sets the chat id of the user identified by email.
	// An empty chatID clears it.
	SetTelegramChatID(ctx context.Context, email, chatID string) (models.User, error)
}

type HabitService interface {
	CreateHabit(ctx context.Context, ownerID int64, input models.HabitInput) (models.Habit, error)
	GetHabit(ctx context.Context, ownerID, habitID int64) (models.Habit, error)
	// UpdateHabit replaces (partial == false) or patches (partial == true)
	// the habit of ownerID.
	UpdateHabit(ctx context.Context, ownerID, habitID int64, input models.HabitInput, partial bool) (models.Habit, error)
	DeleteHabit(ctx context.Context, ownerID, habitID int64) error
	ListHabits(ctx context.Context, ownerID int64, page models.PageRequest) (models.Page[models.Habit], error)
	ListPublicHabits(ctx context.Context, page models.PageRequest) (models.Page[models.Habit], error)
}

// HabitServiceWrapper defines middleware composition for HabitService.
// Implementations wrap an existing HabitService to add behavior such as
// validating.
type HabitServiceWrapper interface {
	Wrap(HabitService) HabitService // returns a decorated HabitService applying additional behavior
}

type PleasantHabitService interface {
	CreatePleasantHabit(ctx context.Context, ownerID int64, input models.PleasantHabitInput) (models.PleasantHabit, error)
	GetPleasantHabit(ctx context.Context, ownerID, habitID int64) (models.PleasantHabit, error)
	UpdatePleasantHabit(ctx context.Context, ownerID, habitID int64, input models.PleasantHabitInput, partial bool) (models.PleasantHabit, error)
	DeletePleasantHabit(ctx context.Context, ownerID, habitID int64) error
	ListPleasantHabits(ctx context.Context, ownerID int64, page models.PageRequest) (models.Page[models.PleasantHabit], error)
}

type ReminderService interface {
	// SendDueReminders notifies the owners of habits due one lead time after
	// now. Dispatch failures are counted in the report; only a failed lookup
	// is returned as an error.
	SendDueReminders(ctx context.Context, now time.Time) (models.ReminderReport, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
