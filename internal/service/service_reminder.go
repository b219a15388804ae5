// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/MKhiriev/go-habit-tracker/internal/adapter"
	"github.com/MKhiriev/go-habit-tracker/internal/config"
	"github.com/MKhiriev/go-habit-tracker/internal/logger"
	"github.com/MKhiriev/go-habit-tracker/internal/store"
	"github.com/MKhiriev/go-habit-tracker/models"
)

// reminderTemplate is filled with the lead time in minutes and the action.
const reminderTemplate = "Напоминание: через %d минут необходимо выполнить привычку: %s"

// reminderService scans habits due one lead time ahead and dispatches a
// message per habit. It keeps no state between calls.
type reminderService struct {
	habitRepository store.HabitRepository
	notifier        adapter.Notifier

	location        *time.Location
	leadTime        time.Duration
	dispatchTimeout time.Duration

	logger *logger.Logger
}

// NewReminderService builds the reminder scanner. cfg.TimeZone must name
// a loadable IANA zone.
func NewReminderService(habitRepository store.HabitRepository, notifier adapter.Notifier, cfg config.Reminder, logger *logger.Logger) (ReminderService, error) {
	if notifier == nil {
		return nil, ErrNoNotifier
	}

	location, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTimeZone, err)
	}

	return &reminderService{
		habitRepository: habitRepository,
		notifier:        notifier,
		location:        location,
		leadTime:        cfg.LeadTime,
		dispatchTimeout: cfg.DispatchTimeout,
		logger:          logger,
	}, nil
}

// ReminderWindow returns the one minute window [from, to) that now plus
// lead falls into, in the wall clock of location. Seconds and the date are
// dropped; the upper bound of 23:59 is 24:00:00.
func ReminderWindow(now time.Time, location *time.Location, lead time.Duration) (from, to models.ClockTime) {
	from = models.ClockTimeOf(now.In(location).Add(lead))
	return from, from.Add(time.Minute)
}

func (s *reminderService) SendDueReminders(ctx context.Context, now time.Time) (models.ReminderReport, error) {
	log := logger.FromContext(ctx)

	from, to := ReminderWindow(now, s.location, s.leadTime)
	report := models.ReminderReport{WindowStart: from, WindowEnd: to}

	reminders, err := s.habitRepository.FindDueReminders(ctx, from, to)
	if err != nil {
		log.Err(err).Str("func", "*reminderService.SendDueReminders").Stringer("from", from).Msg("failed to find due reminders")
		return report, fmt.Errorf("%w: %w", ErrReminderLookup, err)
	}
	report.Matched = len(reminders)

	for _, reminder := range reminders {
		if ctx.Err() != nil {
			log.Warn().Str("func", "*reminderService.SendDueReminders").Msg("reminder scan interrupted")
			break
		}

		if reminder.ChatID == "" {
			report.Skipped++
			continue
		}

		if err = s.dispatch(ctx, reminder); err != nil {
			report.Failed++
			log.Err(err).
				Str("func", "*reminderService.SendDueReminders").
				Int64("habit_id", reminder.HabitID).
				Int64("owner_id", reminder.OwnerID).
				Msg("reminder dispatch failed")
			continue
		}
		report.Sent++
	}

	return report, nil
}

// dispatch sends one reminder bounded by the dispatch timeout.
func (s *reminderService) dispatch(ctx context.Context, reminder models.Reminder) error {
	if s.dispatchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.dispatchTimeout)
		defer cancel()
	}

	return s.notifier.SendMessage(ctx, reminder.ChatID, ReminderMessage(s.leadTime, reminder.Action))
}

// ReminderMessage renders the reminder text for action.
func ReminderMessage(lead time.Duration, action string) string {
	return fmt.Sprintf(reminderTemplate, int(lead/time.Minute), action)
}
