package http

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/go-habit-tracker/models"
)

const (
	pageParam     = "page"
	pageSizeParam = "page_size"
)

// parsePageRequest reads page and page_size. A page that is not a positive
// integer is ErrInvalidPage; a bad page_size falls back to the default.
func parsePageRequest(r *http.Request) (models.PageRequest, error) {
	query := r.URL.Query()

	number := 1
	if raw := query.Get(pageParam); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return models.PageRequest{}, fmt.Errorf("%w: %q", ErrInvalidPage, raw)
		}
		number = n
	}

	size, _ := strconv.Atoi(query.Get(pageSizeParam))

	return models.NewPageRequest(number, size), nil
}

// newPageResponse builds the envelope with absolute next and previous links
// derived from r. A page past the end is ErrInvalidPage.
func newPageResponse[T any](r *http.Request, page models.Page[T]) (models.PageResponse[T], error) {
	if !page.Exists() {
		return models.PageResponse[T]{}, fmt.Errorf("%w: %d", ErrInvalidPage, page.Request.Number)
	}

	response := models.PageResponse[T]{
		Count:   page.Total,
		Results: page.Items,
	}
	if response.Results == nil {
		response.Results = []T{}
	}

	if page.HasNext() {
		next := pageURL(r, page.Request.Number+1)
		response.Next = &next
	}
	if page.HasPrevious() {
		previous := pageURL(r, page.Request.Number-1)
		response.Previous = &previous
	}

	return response, nil
}

// pageURL returns the absolute URL of r with the page parameter set to
// number. The first page is linked without a page parameter.
func pageURL(r *http.Request, number int) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if forwarded := r.Header.Get("X-Forwarded-Proto"); forwarded != "" {
		scheme = forwarded
	}

	query := r.URL.Query()
	if number <= 1 {
		query.Del(pageParam)
	} else {
		query.Set(pageParam, strconv.Itoa(number))
	}

	u := url.URL{
		Scheme:   scheme,
		Host:     r.Host,
		Path:     r.URL.Path,
		RawQuery: query.Encode(),
	}
	return u.String()
}
