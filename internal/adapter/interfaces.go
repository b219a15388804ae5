// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides outbound integrations of the habit tracker.
//
// The primary abstraction is [Notifier], which decouples the reminder
// service from the messaging provider. The package ships a Telegram Bot API
// implementation ([NewTelegramNotifier]) built on resty.
//
// Error values defined in errors.go are mapped from provider responses by
// mapTelegramError so that callers can use [errors.Is] for provider-agnostic
// error handling (e.g. [ErrDispatchFailed]).
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/notifier_mock.go -package=mock

// Notifier delivers a text message to a chat.
type Notifier interface {
	// SendMessage sends text to chatID. The call honours ctx cancellation
	// and deadline. A rejected or failed delivery returns an error wrapping
	// [ErrDispatchFailed].
	SendMessage(ctx context.Context, chatID, text string) error
}
