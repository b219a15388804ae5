package validators

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrValidation matches every *ValidationError via errors.Is.
	ErrValidation = errors.New("validation failed")

	ErrRelatedHabitLookup = errors.New("error resolving related habit")
)

// Kind classifies a single field failure.
type Kind string

const (
	KindRequired                        Kind = "required"
	KindTooLong                         Kind = "max_length"
	KindInvalidFormat                   Kind = "invalid"
	KindTooShort                        Kind = "min_length"
	KindUnique                          Kind = "unique"
	KindDurationTooLong                 Kind = "duration_too_long"
	KindPeriodicityOutOfRange           Kind = "periodicity_out_of_range"
	KindInvalidRelatedHabit             Kind = "invalid_related_habit"
	KindConflictingRewardAndRelation    Kind = "conflicting_reward_and_relation"
	KindPleasantHabitHasForbiddenFields Kind = "pleasant_habit_has_forbidden_fields"
)

// FieldError is one violated rule.
type FieldError struct {
	Field   string `json:"-"`
	Kind    Kind   `json:"code"`
	Message string `json:"message"`
}

// ValidationError aggregates every failed rule of one validation run,
// grouped by field key. Cross-field failures use FieldNonField.
type ValidationError struct {
	Fields map[string][]FieldError
}

// NewValidationError returns a *ValidationError holding the given failures.
func NewValidationError(errs ...FieldError) *ValidationError {
	v := &ValidationError{Fields: make(map[string][]FieldError)}
	for i := range errs {
		v.Add(&errs[i])
	}
	return v
}

// Add records fe. A nil fe is ignored so rule results can be added directly.
func (e *ValidationError) Add(fe *FieldError) {
	if fe == nil {
		return
	}
	if e.Fields == nil {
		e.Fields = make(map[string][]FieldError)
	}
	e.Fields[fe.Field] = append(e.Fields[fe.Field], *fe)
}

// HasErrors reports whether any rule failed.
func (e *ValidationError) HasErrors() bool {
	return e != nil && len(e.Fields) > 0
}

// Has reports whether field failed with kind.
func (e *ValidationError) Has(field string, kind Kind) bool {
	if e == nil {
		return false
	}
	for _, fe := range e.Fields[field] {
		if fe.Kind == kind {
			return true
		}
	}
	return false
}

// OrNil returns e as an error, or nil when no rule failed.
func (e *ValidationError) OrNil() error {
	if !e.HasErrors() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		for _, fe := range e.Fields[k] {
			parts = append(parts, fmt.Sprintf("%s: %s", k, fe.Message))
		}
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, "; "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// MarshalJSON renders {"field": [{"code": ..., "message": ...}]}.
func (e *ValidationError) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Fields)
}
