package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "hours and minutes", in: "06:30", want: "06:30:00"},
		{name: "with seconds", in: "06:30:15", want: "06:30:15"},
		{name: "fraction is dropped", in: "08:00:00.000000", want: "08:00:00"},
		{name: "single digit hour", in: "7:05", want: "07:05:00"},
		{name: "hour out of range", in: "24:00", wantErr: true},
		{name: "minute out of range", in: "10:60", wantErr: true},
		{name: "no separator", in: "0630", wantErr: true},
		{name: "garbage", in: "ab:cd", wantErr: true},
		{name: "trailing letters after minutes", in: "06:30xx", wantErr: true},
		{name: "trailing letters after seconds", in: "06:30:00x", wantErr: true},
		{name: "fraction without seconds", in: "06:30.5", wantErr: true},
		{name: "non-digit fraction", in: "06:30:00.5z", wantErr: true},
		{name: "three digit minute", in: "06:030", wantErr: true},
		{name: "signed component", in: "+6:30", wantErr: true},
		{name: "empty component", in: "06::00", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClockTime(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidClockTime)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestClockTime_AddCapsAtEndOfDay(t *testing.T) {
	c := NewClockTime(23, 59, 0)

	assert.Equal(t, "24:00:00", c.Add(time.Minute).String())
	assert.Equal(t, "24:00:00", c.Add(time.Hour).String())
	assert.True(t, c.Before(c.Add(time.Minute)))
}

func TestClockTimeOf_TruncatesSeconds(t *testing.T) {
	ts := time.Date(2026, 3, 1, 8, 0, 42, 0, time.UTC)

	assert.Equal(t, NewClockTime(8, 0, 0), ClockTimeOf(ts))
}

func TestClockTime_JSON(t *testing.T) {
	var c ClockTime
	require.NoError(t, json.Unmarshal([]byte(`"06:30:00"`), &c))
	assert.Equal(t, 6, c.Hour())
	assert.Equal(t, 30, c.Minute())

	out, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `"06:30:00"`, string(out))

	assert.ErrorIs(t, json.Unmarshal([]byte(`630`), &c), ErrInvalidClockTime)
}

func TestClockTime_Scan(t *testing.T) {
	tests := []struct {
		name string
		src  any
		want ClockTime
	}{
		{name: "string", src: "08:00:00", want: NewClockTime(8, 0, 0)},
		{name: "bytes", src: []byte("21:15:30"), want: NewClockTime(21, 15, 30)},
		{name: "time", src: time.Date(0, 1, 1, 13, 45, 0, 0, time.UTC), want: NewClockTime(13, 45, 0)},
		{name: "nil", src: nil, want: ClockTime{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c ClockTime
			require.NoError(t, c.Scan(tt.src))
			assert.Equal(t, tt.want, c)
		})
	}

	var c ClockTime
	assert.Error(t, c.Scan(42))
}
