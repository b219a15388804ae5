package models

import "time"

// User represents an account entity used for authentication and for
// delivering habit reminders.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Email is the unique login identifier. It is stored lower-cased.
	Email string `json:"email"`

	// Password carries the plain-text password on registration and login
	// requests only. It is never persisted nor rendered.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash of the password.
	PasswordHash string `json:"-"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// TelegramChatID is the chat the reminder scanner writes to.
	// Nil means the user receives no reminders.
	TelegramChatID *string `json:"telegram_chat_id"`

	// IsActive reports whether the account may log in.
	IsActive bool `json:"is_active"`

	// DateJoined is the timestamp when the user account was created.
	DateJoined time.Time `json:"date_joined"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// HasChatID reports whether reminders can be delivered to the user.
func (u User) HasChatID() bool {
	return u.TelegramChatID != nil && *u.TelegramChatID != ""
}

// ProfileUpdate is a partial update of the current user's profile.
// A nil field is left untouched; an empty TelegramChatID clears it.
type ProfileUpdate struct {
	FirstName      *string `json:"first_name,omitempty"`
	LastName       *string `json:"last_name,omitempty"`
	TelegramChatID *string `json:"telegram_chat_id,omitempty"`
}
