package http

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-habit-tracker/models"
)

func TestParsePageRequest(t *testing.T) {
	tests := []struct {
		query   string
		want    models.PageRequest
		wantErr bool
	}{
		{query: "", want: models.PageRequest{Number: 1, Size: 5}},
		{query: "page=3", want: models.PageRequest{Number: 3, Size: 5}},
		{query: "page=2&page_size=7", want: models.PageRequest{Number: 2, Size: 7}},
		{query: "page_size=100", want: models.PageRequest{Number: 1, Size: 10}},
		{query: "page_size=oops", want: models.PageRequest{Number: 1, Size: 5}},
		{query: "page=0", wantErr: true},
		{query: "page=-1", wantErr: true},
		{query: "page=last", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/habit/habits/?"+tt.query, nil)

			got, err := parsePageRequest(r)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPageURL(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/habit/habits/?page=2&page_size=3", nil)
	assert.Equal(t, "http://example.com/habit/habits/?page=3&page_size=3", pageURL(r, 3))
	assert.Equal(t, "http://example.com/habit/habits/?page_size=3", pageURL(r, 1))

	r.TLS = &tls.ConnectionState{}
	assert.Equal(t, "https://example.com/habit/habits/?page=3&page_size=3", pageURL(r, 3))

	r.TLS = nil
	r.Header.Set("X-Forwarded-Proto", "https")
	assert.Equal(t, "https://example.com/habit/habits/?page_size=3", pageURL(r, 1))
}

func TestNewPageResponse(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/habit/habits/", nil)

	t.Run("empty first page", func(t *testing.T) {
		resp, err := newPageResponse(r, models.Page[int]{Request: models.NewPageRequest(1, 5)})
		require.NoError(t, err)
		assert.Equal(t, []int{}, resp.Results)
		assert.Nil(t, resp.Next)
		assert.Nil(t, resp.Previous)
	})

	t.Run("last page", func(t *testing.T) {
		resp, err := newPageResponse(r, models.Page[int]{Items: []int{6, 7}, Total: 7, Request: models.NewPageRequest(2, 5)})
		require.NoError(t, err)
		assert.Nil(t, resp.Next)
		require.NotNil(t, resp.Previous)
		assert.Equal(t, 7, resp.Count)
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := newPageResponse(r, models.Page[int]{Total: 7, Request: models.NewPageRequest(3, 5)})
		assert.ErrorIs(t, err, ErrInvalidPage)
	})
}
