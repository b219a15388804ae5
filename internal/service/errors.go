package service

import "errors"

var (
	ErrInvalidCredentials      = errors.New("no active account found with the given credentials")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrPasswordHashing         = errors.New("error hashing password")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")

	ErrNoNotifier      = errors.New("no notifier configured")
	ErrInvalidTimeZone = errors.New("invalid reminder time zone")
	ErrReminderLookup  = errors.New("error looking up due reminders")
)
