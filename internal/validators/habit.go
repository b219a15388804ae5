// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-habit-tracker/models"
)

// HabitRule is a pure check over a habit candidate. It returns nil when the
// candidate satisfies the rule.
type HabitRule struct {
	Field string
	Check func(models.HabitCandidate) *FieldError
}

// habitRules is the full rule set run against every habit candidate.
var habitRules = []HabitRule{
	{FieldPlace, RequirePlace},
	{FieldPlace, PlaceLength},
	{FieldTime, RequireTime},
	{FieldAction, RequireAction},
	{FieldAction, ActionLength},
	{FieldReward, RewardLength},
	{FieldDuration, RequireDuration},
	{FieldDuration, MaxDuration},
	{FieldPeriodicity, Frequency},
	{FieldRelated, RelatedHabitKind},
	{FieldNonField, RewardOrRelated},
	{FieldNonField, PleasantRestrictions},
}

// HabitValidator validates useful and pleasant habit payloads.
//
// Supported types:
//   - models.HabitCandidate / *models.HabitCandidate
//   - models.PleasantHabit / *models.PleasantHabit
type HabitValidator struct {
	resolver PleasantHabitResolver
}

// NewHabitValidator constructs a HabitValidator. resolver is used to check
// related_habit references; with a nil resolver every reference is invalid.
func NewHabitValidator(resolver PleasantHabitResolver) Validator {
	return &HabitValidator{resolver: resolver}
}

func (v *HabitValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.HabitCandidate:
		return v.validateHabit(ctx, value, fields...)
	case *models.HabitCandidate:
		return v.validateHabit(ctx, *value, fields...)

	case models.PleasantHabit:
		return v.validatePleasantHabit(value, fields...)
	case *models.PleasantHabit:
		return v.validatePleasantHabit(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateHabit resolves the related habit and runs every rule whose field
// is in fields (all rules when fields is empty). Values that failed to decode
// are reported as KindInvalidFormat and their rules are skipped. Failures are
// aggregated.
func (v *HabitValidator) validateHabit(ctx context.Context, c models.HabitCandidate, fields ...string) error {
	if c.HasRelatedHabit() && v.resolver != nil {
		ok, err := v.resolver.PleasantHabitExists(ctx, c.OwnerID, *c.RelatedHabitID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrRelatedHabitLookup, err)
		}
		c.RelatedHabitIsPleasant = ok
	}

	selected := func(field string) bool {
		return len(fields) == 0 || slices.Contains(fields, field)
	}

	verr := &ValidationError{}
	for _, field := range slices.Sorted(maps.Keys(c.FormatErrors)) {
		if selected(field) {
			verr.Add(&FieldError{Field: field, Kind: KindInvalidFormat, Message: c.FormatErrors[field]})
		}
	}
	for _, rule := range habitRules {
		if !selected(rule.Field) {
			continue
		}
		if _, malformed := c.FormatErrors[rule.Field]; malformed {
			continue
		}
		verr.Add(rule.Check(c))
	}

	return verr.OrNil()
}

func (v *HabitValidator) validatePleasantHabit(p models.PleasantHabit, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPlace, FieldAction}
	}

	verr := &ValidationError{}
	for _, f := range fields {
		switch f {
		case FieldPlace:
			verr.Add(required(FieldPlace, p.Place))
			verr.Add(maxLength(FieldPlace, p.Place, maxTextLength))
		case FieldAction:
			verr.Add(required(FieldAction, p.Action))
			verr.Add(maxLength(FieldAction, p.Action, maxTextLength))
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return verr.OrNil()
}

func RequirePlace(c models.HabitCandidate) *FieldError { return required(FieldPlace, c.Place) }

func PlaceLength(c models.HabitCandidate) *FieldError {
	return maxLength(FieldPlace, c.Place, maxTextLength)
}

func RequireAction(c models.HabitCandidate) *FieldError { return required(FieldAction, c.Action) }

func ActionLength(c models.HabitCandidate) *FieldError {
	return maxLength(FieldAction, c.Action, maxTextLength)
}

func RequireTime(c models.HabitCandidate) *FieldError {
	if c.TimeOfDay == nil {
		return requiredError(FieldTime)
	}
	return nil
}

func RewardLength(c models.HabitCandidate) *FieldError {
	if c.Reward == nil {
		return nil
	}
	return maxLength(FieldReward, *c.Reward, maxTextLength)
}

func RequireDuration(c models.HabitCandidate) *FieldError {
	if c.Duration == nil {
		return requiredError(FieldDuration)
	}
	return nil
}

// MaxDuration fails when the duration exceeds MaxDurationSeconds. The full
// duration is compared, so a fraction above the limit fails too.
func MaxDuration(c models.HabitCandidate) *FieldError {
	if c.Duration == nil || time.Duration(*c.Duration) <= MaxDurationSeconds*time.Second {
		return nil
	}
	return &FieldError{
		Field:   FieldDuration,
		Kind:    KindDurationTooLong,
		Message: fmt.Sprintf("Duration must not exceed %d seconds.", MaxDurationSeconds),
	}
}

// Frequency fails when the periodicity is outside [MinPeriodicity, MaxPeriodicity].
func Frequency(c models.HabitCandidate) *FieldError {
	if c.Periodicity >= MinPeriodicity && c.Periodicity <= MaxPeriodicity {
		return nil
	}
	return &FieldError{
		Field:   FieldPeriodicity,
		Kind:    KindPeriodicityOutOfRange,
		Message: fmt.Sprintf("Periodicity must be between %d and %d days.", MinPeriodicity, MaxPeriodicity),
	}
}

// RelatedHabitKind fails when related_habit is set but does not resolve to
// a pleasant habit of the owner.
func RelatedHabitKind(c models.HabitCandidate) *FieldError {
	if !c.HasRelatedHabit() || c.RelatedHabitIsPleasant {
		return nil
	}
	return &FieldError{
		Field:   FieldRelated,
		Kind:    KindInvalidRelatedHabit,
		Message: "Related habit must be one of your pleasant habits.",
	}
}

// RewardOrRelated fails when both a reward and a related habit are set.
func RewardOrRelated(c models.HabitCandidate) *FieldError {
	if !c.HasReward() || !c.HasRelatedHabit() {
		return nil
	}
	return &FieldError{
		Field:   FieldNonField,
		Kind:    KindConflictingRewardAndRelation,
		Message: "A habit cannot have both a reward and a related habit.",
	}
}

// PleasantRestrictions fails when a candidate flagged as pleasant carries a
// reward or a related habit.
func PleasantRestrictions(c models.HabitCandidate) *FieldError {
	if !c.IsPleasant || (!c.HasReward() && !c.HasRelatedHabit()) {
		return nil
	}
	return &FieldError{
		Field:   FieldNonField,
		Kind:    KindPleasantHabitHasForbiddenFields,
		Message: "A pleasant habit cannot have a reward or a related habit.",
	}
}

func required(field, value string) *FieldError {
	if strings.TrimSpace(value) == "" {
		return requiredError(field)
	}
	return nil
}

func requiredError(field string) *FieldError {
	return &FieldError{Field: field, Kind: KindRequired, Message: "This field is required."}
}

func maxLength(field, value string, limit int) *FieldError {
	if utf8.RuneCountInString(value) <= limit {
		return nil
	}
	return &FieldError{
		Field:   field,
		Kind:    KindTooLong,
		Message: fmt.Sprintf("Ensure this field has no more than %d characters.", limit),
	}
}
