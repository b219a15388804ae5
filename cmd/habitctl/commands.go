package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-habit-tracker/internal/adapter"
	"github.com/MKhiriev/go-habit-tracker/internal/service"
	"github.com/MKhiriev/go-habit-tracker/internal/store"
	"github.com/MKhiriev/go-habit-tracker/models"
)

type MigrateCmd struct{}

func (c *MigrateCmd) Run(app *appContext) error {
	ctx := context.Background()

	db, err := store.NewDB(ctx, app.cfg.Storage.DB, app.log)
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		return err
	}

	fmt.Fprintf(app.out, "migrations applied (%s)\n", db.Dialect())
	return nil
}

type RemindCmd struct {
	At string `help:"Scan as if the local time were HH:MM (in the reminder time zone)." placeholder:"HH:MM"`
}

func (c *RemindCmd) Run(app *appContext) error {
	ctx := context.Background()
	cfg := app.cfg

	now, err := c.now(cfg.Workers.Reminder.TimeZone)
	if err != nil {
		return err
	}

	notifier, err := adapter.NewTelegramNotifier(cfg.Adapter.Telegram, app.log)
	if err != nil {
		return fmt.Errorf("error creating notifier: %w", err)
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, app.log)
	if err != nil {
		return err
	}
	defer storages.Close()

	reminders, err := service.NewReminderService(storages.HabitRepository, notifier, cfg.Workers.Reminder, app.log)
	if err != nil {
		return err
	}

	report, err := reminders.SendDueReminders(ctx, now)
	if err != nil {
		return err
	}

	return json.NewEncoder(app.out).Encode(report)
}

// now returns the scan time: the current time, or today at --at in zone.
func (c *RemindCmd) now(zone string) (time.Time, error) {
	if c.At == "" {
		return time.Now(), nil
	}

	at, err := models.ParseClockTime(c.At)
	if err != nil {
		return time.Time{}, fmt.Errorf("--at: %w", err)
	}
	location, err := time.LoadLocation(zone)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", service.ErrInvalidTimeZone, err)
	}

	today := time.Now().In(location)
	return time.Date(today.Year(), today.Month(), today.Day(), at.Hour(), at.Minute(), 0, 0, location), nil
}

type SetChatIDCmd struct {
	Email  string `required:"" help:"Email of the user."`
	ChatID string `name:"chat-id" help:"Telegram chat id. Empty unlinks the user."`
}

func (c *SetChatIDCmd) Run(app *appContext) error {
	ctx := context.Background()

	storages, err := store.NewStorages(ctx, app.cfg.Storage, app.log)
	if err != nil {
		return err
	}
	defer storages.Close()

	user, err := service.NewUserService(storages.UserRepository, app.log).SetTelegramChatID(ctx, c.Email, c.ChatID)
	if err != nil {
		return err
	}

	chat := "none"
	if user.HasChatID() {
		chat = *user.TelegramChatID
	}
	fmt.Fprintf(app.out, "user %d (%s): telegram chat %s\n", user.UserID, user.Email, chat)
	return nil
}
