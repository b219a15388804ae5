package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPageRequest(t *testing.T) {
	tests := []struct {
		name         string
		number, size int
		want         PageRequest
	}{
		{name: "defaults", number: 0, size: 0, want: PageRequest{Number: 1, Size: DefaultPageSize}},
		{name: "capped size", number: 2, size: 50, want: PageRequest{Number: 2, Size: MaxPageSize}},
		{name: "explicit", number: 3, size: 7, want: PageRequest{Number: 3, Size: 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPageRequest(tt.number, tt.size))
		})
	}
}

func TestPage_Navigation(t *testing.T) {
	first := Page[int]{Items: []int{1, 2, 3, 4, 5}, Total: 7, Request: NewPageRequest(1, 5)}
	assert.True(t, first.HasNext())
	assert.False(t, first.HasPrevious())
	assert.True(t, first.Exists())

	second := Page[int]{Items: []int{6, 7}, Total: 7, Request: NewPageRequest(2, 5)}
	assert.False(t, second.HasNext())
	assert.True(t, second.HasPrevious())

	beyond := Page[int]{Total: 7, Request: NewPageRequest(3, 5)}
	assert.False(t, beyond.Exists())

	empty := Page[int]{Request: NewPageRequest(1, 5)}
	assert.True(t, empty.Exists())
}
