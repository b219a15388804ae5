// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-habit-tracker/internal/logger"
	"github.com/MKhiriev/go-habit-tracker/models"
)

// ─────────────────────────────────────────────
// Workers
// ─────────────────────────────────────────────

type recordingWorker struct {
	id    int
	order *[]string
}

func (r *recordingWorker) Start(context.Context) {
	*r.order = append(*r.order, "start", string(rune('0'+r.id)))
}

func (r *recordingWorker) Stop() {
	*r.order = append(*r.order, "stop", string(rune('0'+r.id)))
}

func TestWorkers_StartAndStopOrder(t *testing.T) {
	var order []string
	ws := NewWorkers(&recordingWorker{id: 1, order: &order}, &recordingWorker{id: 2, order: &order})

	ws.Start(context.Background())
	ws.Stop()

	assert.Equal(t, []string{"start", "1", "start", "2", "stop", "2", "stop", "1"}, order)
}

func TestWorkers_AddIgnoresNil(t *testing.T) {
	ws := NewWorkers()
	ws.Add(nil)
	assert.Zero(t, ws.Len())

	// empty group is a no-op
	ws.Start(context.Background())
	ws.Stop()
}

// ─────────────────────────────────────────────
// ReminderWorker
// ─────────────────────────────────────────────

type fakeScanner struct {
	calls  atomic.Int32
	report models.ReminderReport
	err    error
	panics bool

	mu    sync.Mutex
	times []time.Time
}

func (f *fakeScanner) SendDueReminders(_ context.Context, now time.Time) (models.ReminderReport, error) {
	f.calls.Add(1)
	f.mu.Lock()
	f.times = append(f.times, now)
	f.mu.Unlock()
	if f.panics {
		panic("boom")
	}
	return f.report, f.err
}

type staticID string

func (s staticID) Generate() string { return string(s) }

func TestReminderWorker_TickPassesTime(t *testing.T) {
	scanner := &fakeScanner{report: models.ReminderReport{Matched: 1, Sent: 1}}
	w := NewReminderWorker(scanner, staticID("tick"), time.Minute, logger.Nop())

	now := time.Date(2026, 3, 2, 7, 45, 0, 0, time.UTC)
	require.NoError(t, w.Tick(context.Background(), now))

	assert.Equal(t, int32(1), scanner.calls.Load())
	assert.Equal(t, []time.Time{now}, scanner.times)
}

func TestReminderWorker_TickReturnsLookupError(t *testing.T) {
	lookupErr := errors.New("db down")
	w := NewReminderWorker(&fakeScanner{err: lookupErr}, staticID("tick"), time.Minute, logger.Nop())

	assert.ErrorIs(t, w.Tick(context.Background(), time.Now()), lookupErr)
}

func TestReminderWorker_TickRecoversPanic(t *testing.T) {
	w := NewReminderWorker(&fakeScanner{panics: true}, staticID("tick"), time.Minute, logger.Nop())

	var err error
	require.NotPanics(t, func() { err = w.Tick(context.Background(), time.Now()) })
	assert.ErrorIs(t, err, ErrTickPanicked)
}

func TestReminderWorker_DefaultInterval(t *testing.T) {
	w := NewReminderWorker(&fakeScanner{}, staticID("tick"), 0, logger.Nop())
	assert.Equal(t, time.Minute, w.interval)
}

func TestReminderWorker_RunsUntilStopped(t *testing.T) {
	scanner := &fakeScanner{panics: true}
	w := NewReminderWorker(scanner, staticID("tick"), 10*time.Millisecond, logger.Nop())

	w.Start(context.Background())
	require.Eventually(t, func() bool { return scanner.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	w.Stop()

	stopped := scanner.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, scanner.calls.Load())
}

func TestReminderWorker_StopsOnContextCancel(t *testing.T) {
	scanner := &fakeScanner{}
	w := NewReminderWorker(scanner, staticID("tick"), 10*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		w.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not exit after context cancellation")
	}
}

func TestReminderWorker_StopWithoutStart(t *testing.T) {
	w := NewReminderWorker(&fakeScanner{}, staticID("tick"), time.Minute, logger.Nop())
	assert.NotPanics(t, w.Stop)
}
