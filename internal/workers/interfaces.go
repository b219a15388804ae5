// Package workers runs the background jobs of the server next to the
// request handlers. Every worker owns its goroutine and is controlled
// through Start and Stop; Workers starts and stops a group of them together.
package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-habit-tracker/models"
)

// Worker is a background job with an explicit lifecycle.
//
// Start must return immediately; the job runs until ctx is cancelled or Stop
// is called. Stop blocks until the job goroutine has exited and is safe to
// call on a worker that was never started.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// ReminderScanner is the reminder service as seen by the reminder worker.
type ReminderScanner interface {
	SendDueReminders(ctx context.Context, now time.Time) (models.ReminderReport, error)
}

// IDGenerator produces tick identifiers.
type IDGenerator interface {
	Generate() string
}
