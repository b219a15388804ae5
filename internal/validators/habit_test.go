// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-habit-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func ptr[T any](v T) *T { return &v }

func duration(seconds int) *models.HabitDuration {
	d := models.HabitDuration(time.Duration(seconds) * time.Second)
	return &d
}

func validCandidate() models.HabitCandidate {
	return models.HabitCandidate{
		OwnerID:     1,
		Place:       "Gym",
		TimeOfDay:   ptr(models.NewClockTime(6, 30, 0)),
		Action:      "Workout",
		Periodicity: 2,
		Reward:      ptr("Smoothie"),
		Duration:    duration(120),
	}
}

// fakeResolver knows the pleasant habits of owner 1.
type fakeResolver struct {
	pleasant map[int64]bool
	err      error
	calls    int
}

func (f *fakeResolver) PleasantHabitExists(_ context.Context, ownerID, id int64) (bool, error) {
	f.calls++
	if f.err != nil {
		return false, f.err
	}
	return ownerID == 1 && f.pleasant[id], nil
}

func validationError(t *testing.T, err error) *ValidationError {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, err, ErrValidation)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	return verr
}

// ---------------------------------------------------------------------------
// Rules
// ---------------------------------------------------------------------------

func TestMaxDuration(t *testing.T) {
	tests := []struct {
		name    string
		seconds int
		fails   bool
	}{
		{name: "zero", seconds: 0},
		{name: "limit", seconds: 120},
		{name: "one over", seconds: 121, fails: true},
		{name: "three minutes", seconds: 180, fails: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCandidate()
			c.Duration = duration(tt.seconds)

			fe := MaxDuration(c)
			if !tt.fails {
				assert.Nil(t, fe)
				return
			}
			require.NotNil(t, fe)
			assert.Equal(t, FieldDuration, fe.Field)
			assert.Equal(t, KindDurationTooLong, fe.Kind)
		})
	}
}

func TestMaxDuration_ComparesFullDuration(t *testing.T) {
	tests := []struct {
		name  string
		d     time.Duration
		fails bool
	}{
		{name: "exactly the limit", d: 120 * time.Second},
		{name: "half a second over", d: 120*time.Second + 500*time.Millisecond, fails: true},
		{name: "one nanosecond over", d: 120*time.Second + 1, fails: true},
		{name: "saturated", d: time.Duration(models.MaxHabitDuration), fails: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCandidate()
			d := models.HabitDuration(tt.d)
			c.Duration = &d

			fe := MaxDuration(c)
			if !tt.fails {
				assert.Nil(t, fe)
				return
			}
			require.NotNil(t, fe)
			assert.Equal(t, KindDurationTooLong, fe.Kind)
		})
	}
}

// TestHabitValidator_OversizedDurationInput verifies that durations beyond
// the range of time.Duration are rejected rather than wrapping negative.
func TestHabitValidator_OversizedDurationInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "numeric seconds", body: `{"duration":1e11}`},
		{name: "day count", body: `{"duration":"200000 00:00:00"}`},
	}

	v := NewHabitValidator(&fakeResolver{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in models.HabitInput
			require.NoError(t, json.Unmarshal([]byte(tt.body), &in))
			require.NotNil(t, in.Duration)

			c := validCandidate()
			c.Duration = in.Duration

			verr := validationError(t, v.Validate(context.Background(), c))
			assert.True(t, verr.Has(FieldDuration, KindDurationTooLong))
			assert.Len(t, verr.Fields, 1)
		})
	}
}

func TestFrequency(t *testing.T) {
	for _, p := range []int{1, 4, 7} {
		c := validCandidate()
		c.Periodicity = p
		assert.Nil(t, Frequency(c), "periodicity %d", p)
	}

	for _, p := range []int{-1, 0, 8, 30} {
		c := validCandidate()
		c.Periodicity = p
		fe := Frequency(c)
		require.NotNil(t, fe, "periodicity %d", p)
		assert.Equal(t, KindPeriodicityOutOfRange, fe.Kind)
		assert.Equal(t, FieldPeriodicity, fe.Field)
	}
}

func TestRelatedHabitKind(t *testing.T) {
	c := validCandidate()
	assert.Nil(t, RelatedHabitKind(c), "no related habit")

	c.RelatedHabitID = ptr(int64(5))
	fe := RelatedHabitKind(c)
	require.NotNil(t, fe)
	assert.Equal(t, KindInvalidRelatedHabit, fe.Kind)

	c.RelatedHabitIsPleasant = true
	assert.Nil(t, RelatedHabitKind(c))
}

func TestRewardOrRelated(t *testing.T) {
	c := validCandidate()
	assert.Nil(t, RewardOrRelated(c), "reward only")

	c.RelatedHabitID = ptr(int64(5))
	fe := RewardOrRelated(c)
	require.NotNil(t, fe)
	assert.Equal(t, FieldNonField, fe.Field)
	assert.Equal(t, KindConflictingRewardAndRelation, fe.Kind)

	c.Reward = ptr("")
	assert.Nil(t, RewardOrRelated(c), "empty reward counts as absent")
}

func TestPleasantRestrictions(t *testing.T) {
	c := validCandidate()
	assert.Nil(t, PleasantRestrictions(c), "useful habit may have a reward")

	c.IsPleasant = true
	fe := PleasantRestrictions(c)
	require.NotNil(t, fe)
	assert.Equal(t, KindPleasantHabitHasForbiddenFields, fe.Kind)

	c.Reward = nil
	assert.Nil(t, PleasantRestrictions(c))

	c.RelatedHabitID = ptr(int64(3))
	assert.NotNil(t, PleasantRestrictions(c))
}

// ---------------------------------------------------------------------------
// HabitValidator
// ---------------------------------------------------------------------------

func TestHabitValidator_Valid(t *testing.T) {
	v := NewHabitValidator(&fakeResolver{})
	assert.NoError(t, v.Validate(context.Background(), validCandidate()))
}

func TestHabitValidator_PointerCandidate(t *testing.T) {
	v := NewHabitValidator(&fakeResolver{})
	c := validCandidate()
	assert.NoError(t, v.Validate(context.Background(), &c))
}

func TestHabitValidator_DurationTooLong(t *testing.T) {
	v := NewHabitValidator(&fakeResolver{})
	c := validCandidate()
	c.Duration = duration(180)

	verr := validationError(t, v.Validate(context.Background(), c))
	assert.True(t, verr.Has(FieldDuration, KindDurationTooLong))
	assert.Len(t, verr.Fields, 1)
}

// TestHabitValidator_AggregatesAllFailures verifies that every violated rule
// is reported in a single error.
func TestHabitValidator_AggregatesAllFailures(t *testing.T) {
	v := NewHabitValidator(&fakeResolver{})
	c := validCandidate()
	c.Duration = duration(500)
	c.Periodicity = 9
	c.RelatedHabitID = ptr(int64(42))
	c.IsPleasant = true

	verr := validationError(t, v.Validate(context.Background(), c))
	assert.True(t, verr.Has(FieldDuration, KindDurationTooLong))
	assert.True(t, verr.Has(FieldPeriodicity, KindPeriodicityOutOfRange))
	assert.True(t, verr.Has(FieldRelated, KindInvalidRelatedHabit))
	assert.True(t, verr.Has(FieldNonField, KindConflictingRewardAndRelation))
	assert.True(t, verr.Has(FieldNonField, KindPleasantHabitHasForbiddenFields))
}

// TestHabitValidator_FormatErrorsMergeWithRuleFailures verifies that values
// which failed to decode are reported next to ordinary rule failures, and
// that the rules of a malformed field do not add a second error.
func TestHabitValidator_FormatErrorsMergeWithRuleFailures(t *testing.T) {
	v := NewHabitValidator(&fakeResolver{})

	var in models.HabitInput
	require.NoError(t, json.Unmarshal(
		[]byte(`{"place":"","time":"25:00","action":"W","duration":"00:03:00"}`), &in))
	c := models.NewHabitCandidate(models.Habit{OwnerID: 1}, in, false)

	verr := validationError(t, v.Validate(context.Background(), c))
	assert.Equal(t, map[string][]Kind{
		FieldPlace:    {KindRequired},
		FieldTime:     {KindInvalidFormat},
		FieldDuration: {KindDurationTooLong},
	}, kinds(verr))
}

func TestHabitValidator_FormatErrors(t *testing.T) {
	tests := []struct {
		name   string
		errs   map[string]string
		fields []string
		want   map[string][]Kind
	}{
		{
			name: "single malformed field",
			errs: map[string]string{FieldPeriodicity: "A valid integer is required."},
			want: map[string][]Kind{FieldPeriodicity: {KindInvalidFormat}},
		},
		{
			name: "several malformed fields",
			errs: map[string]string{FieldDuration: "bad", FieldTime: "bad", FieldRelated: "bad"},
			want: map[string][]Kind{
				FieldDuration: {KindInvalidFormat},
				FieldTime:     {KindInvalidFormat},
				FieldRelated:  {KindInvalidFormat},
			},
		},
		{
			name:   "scoped out",
			errs:   map[string]string{FieldDuration: "bad", FieldPeriodicity: "bad"},
			fields: []string{FieldPeriodicity},
			want:   map[string][]Kind{FieldPeriodicity: {KindInvalidFormat}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCandidate()
			c.FormatErrors = tt.errs
			for field := range tt.errs {
				switch field {
				case FieldTime:
					c.TimeOfDay = nil
				case FieldDuration:
					c.Duration = nil
				}
			}

			verr := validationError(t, NewHabitValidator(&fakeResolver{}).Validate(context.Background(), c, tt.fields...))
			assert.Equal(t, tt.want, kinds(verr))
		})
	}
}

func kinds(verr *ValidationError) map[string][]Kind {
	out := make(map[string][]Kind, len(verr.Fields))
	for field, errs := range verr.Fields {
		for _, fe := range errs {
			out[field] = append(out[field], fe.Kind)
		}
	}
	return out
}

func TestHabitValidator_RequiredFields(t *testing.T) {
	v := NewHabitValidator(&fakeResolver{})
	c := models.HabitCandidate{OwnerID: 1, Periodicity: 1}

	verr := validationError(t, v.Validate(context.Background(), c))
	for _, f := range []string{FieldPlace, FieldTime, FieldAction, FieldDuration} {
		assert.True(t, verr.Has(f, KindRequired), f)
	}
}

func TestHabitValidator_TooLong(t *testing.T) {
	v := NewHabitValidator(&fakeResolver{})
	c := validCandidate()
	c.Place = strings.Repeat("м", 256)
	c.Reward = ptr(strings.Repeat("r", 256))

	verr := validationError(t, v.Validate(context.Background(), c))
	assert.True(t, verr.Has(FieldPlace, KindTooLong))
	assert.True(t, verr.Has(FieldReward, KindTooLong))
}

func TestHabitValidator_RelatedPleasantHabit(t *testing.T) {
	resolver := &fakeResolver{pleasant: map[int64]bool{7: true}}
	v := NewHabitValidator(resolver)

	c := validCandidate()
	c.Reward = nil
	c.RelatedHabitID = ptr(int64(7))
	assert.NoError(t, v.Validate(context.Background(), c))
	assert.Equal(t, 1, resolver.calls)

	// another owner cannot reference a pleasant habit of owner 1
	c.OwnerID = 2
	verr := validationError(t, v.Validate(context.Background(), c))
	assert.True(t, verr.Has(FieldRelated, KindInvalidRelatedHabit))
}

// TestHabitValidator_ResolverFailure verifies that a lookup failure is not a
// validation error.
func TestHabitValidator_ResolverFailure(t *testing.T) {
	v := NewHabitValidator(&fakeResolver{err: assert.AnError})
	c := validCandidate()
	c.Reward = nil
	c.RelatedHabitID = ptr(int64(7))

	err := v.Validate(context.Background(), c)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRelatedHabitLookup)
	assert.ErrorIs(t, err, assert.AnError)
	assert.NotErrorIs(t, err, ErrValidation)
}

func TestHabitValidator_FieldScoping(t *testing.T) {
	v := NewHabitValidator(&fakeResolver{})
	c := validCandidate()
	c.Duration = duration(500)
	c.Periodicity = 0

	verr := validationError(t, v.Validate(context.Background(), c, FieldPeriodicity))
	assert.True(t, verr.Has(FieldPeriodicity, KindPeriodicityOutOfRange))
	assert.NotContains(t, verr.Fields, FieldDuration)
}

// TestHabitValidator_Idempotent verifies that the same payload yields the
// same decision on every run.
func TestHabitValidator_Idempotent(t *testing.T) {
	v := NewHabitValidator(&fakeResolver{})
	c := validCandidate()
	c.Duration = duration(121)

	first := validationError(t, v.Validate(context.Background(), c))
	second := validationError(t, v.Validate(context.Background(), c))
	assert.Equal(t, first.Fields, second.Fields)

	ok := validCandidate()
	assert.NoError(t, v.Validate(context.Background(), ok))
	assert.NoError(t, v.Validate(context.Background(), ok))
}

func TestHabitValidator_PleasantHabit(t *testing.T) {
	v := NewHabitValidator(nil)

	assert.NoError(t, v.Validate(context.Background(), models.PleasantHabit{Place: "Park", Action: "Walk"}))

	verr := validationError(t, v.Validate(context.Background(), &models.PleasantHabit{Action: strings.Repeat("a", 300)}))
	assert.True(t, verr.Has(FieldPlace, KindRequired))
	assert.True(t, verr.Has(FieldAction, KindTooLong))

	err := v.Validate(context.Background(), models.PleasantHabit{}, "reward")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestHabitValidator_UnsupportedType(t *testing.T) {
	v := NewHabitValidator(nil)
	assert.ErrorIs(t, v.Validate(context.Background(), "habit"), ErrUnsupportedType)
}

// ---------------------------------------------------------------------------
// ValidationError
// ---------------------------------------------------------------------------

func TestValidationError_JSON(t *testing.T) {
	verr := NewValidationError(FieldError{Field: FieldDuration, Kind: KindDurationTooLong, Message: "too long"})

	b, err := verr.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"duration":[{"code":"duration_too_long","message":"too long"}]}`, string(b))
}

func TestValidationError_OrNil(t *testing.T) {
	assert.NoError(t, (&ValidationError{}).OrNil())
	assert.Error(t, NewValidationError(FieldError{Field: "x", Kind: KindRequired}).OrNil())
}

func TestValidationError_ErrorString(t *testing.T) {
	verr := NewValidationError(
		FieldError{Field: FieldPlace, Message: "b"},
		FieldError{Field: FieldAction, Message: "a"},
	)
	assert.Equal(t, "validation failed: action: a; place: b", verr.Error())
}
