package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"
)

// Habit is a useful habit owned by a user.
type Habit struct {
	ID      int64 `json:"id"`
	OwnerID int64 `json:"user"`

	Place     string    `json:"place"`
	TimeOfDay ClockTime `json:"time"`
	Action    string    `json:"action"`

	// IsPleasant is always false for this entity and is never read from input.
	IsPleasant bool `json:"is_pleasant"`

	// RelatedHabitID references a PleasantHabit. It is reset to nil when the
	// referenced pleasant habit is deleted.
	RelatedHabitID *int64 `json:"related_habit"`

	Periodicity int           `json:"periodicity"`
	Reward      *string       `json:"reward"`
	Duration    HabitDuration `json:"duration"`
	IsPublic    bool          `json:"is_public"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Habit model.
func (h Habit) TableName() string {
	return "habits"
}

// DefaultPeriodicity is the periodicity of a habit created without one.
const DefaultPeriodicity = 1

// HabitInput is a client supplied habit payload. Nil fields are absent from
// the request body; for a partial update they keep the stored value.
type HabitInput struct {
	Place          *string        `json:"place"`
	TimeOfDay      *ClockTime     `json:"time"`
	Action         *string        `json:"action"`
	IsPleasant     *bool          `json:"is_pleasant"`
	RelatedHabitID *int64         `json:"related_habit"`
	Periodicity    *int           `json:"periodicity"`
	Reward         *string        `json:"reward"`
	Duration       *HabitDuration `json:"duration"`
	IsPublic       *bool          `json:"is_public"`

	// ClearRelatedHabit is set by the decoder when the body carries an
	// explicit "related_habit": null.
	ClearRelatedHabit bool `json:"-"`
	// ClearReward is set by the decoder when the body carries an explicit
	// "reward": null.
	ClearReward bool `json:"-"`

	// FormatErrors maps a body key to the message of a value that could not
	// be decoded into its field. The field itself is left nil.
	FormatErrors map[string]string `json:"-"`
}

// Messages recorded in HabitInput.FormatErrors.
const (
	msgNotString     = "Not a valid string."
	msgNotBoolean    = "Must be a valid boolean."
	msgNotInteger    = "A valid integer is required."
	msgNotPrimaryKey = "Incorrect type. Expected pk value."
	msgBadTimeFormat = "Time has wrong format. Use one of these formats instead: hh:mm[:ss[.uuuuuu]]."
	msgBadDuration   = "Duration has wrong format. Use one of these formats instead: [DD] [HH:[MM:]]ss."
)

// UnmarshalJSON decodes the payload field by field. A value of the wrong
// shape is recorded in FormatErrors instead of failing the whole body, so
// the validators can report it alongside every other failure. Only a body
// that is not a JSON object is an error. Explicit nulls of the optional
// references are recorded so a partial update can clear them.
func (in *HabitInput) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw == nil {
		return errNotAnObject
	}

	errs := make(map[string]string)
	*in = HabitInput{
		Place:          decodeField[string](raw, "place", msgNotString, errs),
		TimeOfDay:      decodeField[ClockTime](raw, "time", msgBadTimeFormat, errs),
		Action:         decodeField[string](raw, "action", msgNotString, errs),
		IsPleasant:     decodeField[bool](raw, "is_pleasant", msgNotBoolean, errs),
		RelatedHabitID: decodeField[int64](raw, "related_habit", msgNotPrimaryKey, errs),
		Periodicity:    decodeField[int](raw, "periodicity", msgNotInteger, errs),
		Reward:         decodeField[string](raw, "reward", msgNotString, errs),
		Duration:       decodeField[HabitDuration](raw, "duration", msgBadDuration, errs),
		IsPublic:       decodeField[bool](raw, "is_public", msgNotBoolean, errs),

		ClearRelatedHabit: isJSONNull(raw["related_habit"]),
		ClearReward:       isJSONNull(raw["reward"]),
	}
	if len(errs) > 0 {
		in.FormatErrors = errs
	}
	return nil
}

var errNotAnObject = errors.New("json: body must be an object")

// decodeField decodes raw[key] into a new T. It returns nil when the key is
// absent or null, and records message under key when the value does not
// decode.
func decodeField[T any](raw map[string]json.RawMessage, key, message string, errs map[string]string) *T {
	v, ok := raw[key]
	if !ok || isJSONNull(v) {
		return nil
	}
	out := new(T)
	if err := json.Unmarshal(v, out); err != nil {
		errs[key] = message
		return nil
	}
	return out
}

func isJSONNull(v json.RawMessage) bool {
	return v != nil && bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}

// HabitCandidate is the record a habit would become if the pending write were
// committed. It is what the validators inspect.
type HabitCandidate struct {
	OwnerID int64

	Place     string
	TimeOfDay *ClockTime
	Action    string

	// IsPleasant is the flag as claimed by the payload.
	IsPleasant bool

	RelatedHabitID *int64
	// RelatedHabitIsPleasant is filled by the validator after resolving
	// RelatedHabitID against the pleasant habit collection of the owner.
	RelatedHabitIsPleasant bool

	Periodicity int
	Reward      *string
	Duration    *HabitDuration

	// FormatErrors carries HabitInput.FormatErrors. Rules over a field listed
	// here are skipped, the format error is reported instead.
	FormatErrors map[string]string
}

// NewHabitCandidate merges input onto base. Passing a zero base produces the
// candidate of a create or full update; passing the stored record produces
// the candidate of a partial update.
func NewHabitCandidate(base Habit, input HabitInput, partial bool) HabitCandidate {
	c := HabitCandidate{
		OwnerID:      base.OwnerID,
		Periodicity:  DefaultPeriodicity,
		FormatErrors: input.FormatErrors,
	}

	if partial {
		c.Place = base.Place
		timeOfDay := base.TimeOfDay
		c.TimeOfDay = &timeOfDay
		c.Action = base.Action
		c.RelatedHabitID = base.RelatedHabitID
		c.Periodicity = base.Periodicity
		c.Reward = base.Reward
		duration := base.Duration
		c.Duration = &duration
	}

	if input.Place != nil {
		c.Place = *input.Place
	}
	if input.TimeOfDay != nil {
		c.TimeOfDay = input.TimeOfDay
	}
	if input.Action != nil {
		c.Action = *input.Action
	}
	if input.IsPleasant != nil {
		c.IsPleasant = *input.IsPleasant
	}
	if input.RelatedHabitID != nil {
		c.RelatedHabitID = input.RelatedHabitID
	} else if input.ClearRelatedHabit {
		c.RelatedHabitID = nil
	}
	if input.Periodicity != nil {
		c.Periodicity = *input.Periodicity
	}
	if input.Reward != nil {
		c.Reward = input.Reward
	} else if input.ClearReward {
		c.Reward = nil
	}
	if input.Duration != nil {
		c.Duration = input.Duration
	}

	return c
}

// HasReward reports whether the candidate carries a non-empty reward.
func (c HabitCandidate) HasReward() bool {
	return c.Reward != nil && *c.Reward != ""
}

// HasRelatedHabit reports whether the candidate references a pleasant habit.
func (c HabitCandidate) HasRelatedHabit() bool {
	return c.RelatedHabitID != nil
}

// ApplyTo writes the candidate and the visibility flag of input onto h.
// It does not touch identity fields (ID, OwnerID, CreatedAt).
func (c HabitCandidate) ApplyTo(h *Habit, input HabitInput, partial bool) {
	h.Place = c.Place
	if c.TimeOfDay != nil {
		h.TimeOfDay = *c.TimeOfDay
	}
	h.Action = c.Action
	h.IsPleasant = false
	h.RelatedHabitID = c.RelatedHabitID
	h.Periodicity = c.Periodicity
	h.Reward = c.Reward
	if h.Reward != nil && *h.Reward == "" {
		h.Reward = nil
	}
	if c.Duration != nil {
		h.Duration = *c.Duration
	}

	switch {
	case input.IsPublic != nil:
		h.IsPublic = *input.IsPublic
	case !partial:
		h.IsPublic = false
	}
}

// PleasantHabit is a habit that can be attached to a useful habit as its
// reward. It has no reward, related habit, periodicity or duration.
type PleasantHabit struct {
	ID      int64 `json:"id"`
	OwnerID int64 `json:"user"`

	// IsPleasant is always true.
	IsPleasant bool `json:"is_pleasant"`

	Place  string `json:"place"`
	Action string `json:"action"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the PleasantHabit model.
func (p PleasantHabit) TableName() string {
	return "pleasant_habits"
}

// PleasantHabitInput is a client supplied pleasant habit payload.
type PleasantHabitInput struct {
	Place  *string `json:"place"`
	Action *string `json:"action"`
}

// Reminder is a due habit joined with the chat of its owner.
type Reminder struct {
	HabitID   int64
	OwnerID   int64
	Action    string
	TimeOfDay ClockTime
	ChatID    string
}
