// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the write-side business rules of the habit
// tracker.
//
// Habit payloads are checked by running every HabitRule over a
// models.HabitCandidate and collecting the failures into one
// *ValidationError keyed by field. Registration, profile and pleasant habit
// payloads go through the same error type so the HTTP layer renders all of
// them alike.
package validators

import "context"

// Validator checks a value of a type it knows. fields optionally narrows the
// check to the named fields.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}

// PleasantHabitResolver reports whether id is a pleasant habit owned by owner.
type PleasantHabitResolver interface {
	PleasantHabitExists(ctx context.Context, ownerID, id int64) (bool, error)
}
