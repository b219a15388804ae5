// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-habit-tracker/internal/logger"
)

const defaultReminderInterval = time.Minute

// ReminderWorker calls the reminder scanner on a ticker. Ticks never
// overlap: a slow tick delays the next one instead of running beside it.
type ReminderWorker struct {
	scanner  ReminderScanner
	ids      IDGenerator
	interval time.Duration
	now      func() time.Time

	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewReminderWorker creates an idle worker. A non-positive interval falls
// back to one minute.
func NewReminderWorker(scanner ReminderScanner, ids IDGenerator, interval time.Duration, logger *logger.Logger) *ReminderWorker {
	if interval <= 0 {
		interval = defaultReminderInterval
	}

	return &ReminderWorker{
		scanner:  scanner,
		ids:      ids,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

// Start stops a previously started run, then launches the ticker goroutine.
func (w *ReminderWorker) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	w.logger.Info().Str("func", "*ReminderWorker.Start").Dur("interval", w.interval).Msg("reminder worker started")

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				w.logger.Info().Str("func", "*ReminderWorker.Start").Msg("reminder worker stopped")
				return
			case tick := <-t.C:
				w.Tick(jobCtx, tick)
			}
		}
	}()
}

// Stop cancels the ticker goroutine and waits for it to exit.
func (w *ReminderWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

// Tick runs one scan at now and logs its report under a fresh tick id.
// A panicking scan is logged and swallowed.
func (w *ReminderWorker) Tick(ctx context.Context, now time.Time) (err error) {
	log := w.logger.With().Str("tick_id", w.ids.Generate()).Logger()
	ctx = log.WithContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrTickPanicked, r)
			log.Error().Str("func", "*ReminderWorker.Tick").Interface("panic", r).Msg("reminder tick panicked")
		}
	}()

	report, err := w.scanner.SendDueReminders(ctx, now)
	if err != nil {
		log.Err(err).Str("func", "*ReminderWorker.Tick").Msg("reminder tick failed")
		return err
	}

	log.Info().
		Str("func", "*ReminderWorker.Tick").
		Stringer("window_start", report.WindowStart).
		Stringer("window_end", report.WindowEnd).
		Int("matched", report.Matched).
		Int("skipped", report.Skipped).
		Int("sent", report.Sent).
		Int("failed", report.Failed).
		Msg("reminder tick finished")
	return nil
}
