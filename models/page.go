package models

// Default and maximum page sizes of paginated listings.
const (
	DefaultPageSize = 5
	MaxPageSize     = 10
)

// PageRequest selects a page of a listing. Number is 1-based.
type PageRequest struct {
	Number int
	Size   int
}

// NewPageRequest normalizes the requested size. A non-positive size falls
// back to DefaultPageSize and an oversized one is capped at MaxPageSize.
func NewPageRequest(number, size int) PageRequest {
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	if number < 1 {
		number = 1
	}
	return PageRequest{Number: number, Size: size}
}

// Offset returns the number of records preceding the page.
func (p PageRequest) Offset() int {
	return (p.Number - 1) * p.Size
}

// Page is one page of a listing together with the total record count.
type Page[T any] struct {
	Items   []T
	Total   int
	Request PageRequest
}

// HasNext reports whether records follow this page.
func (p Page[T]) HasNext() bool {
	return p.Request.Offset()+len(p.Items) < p.Total
}

// HasPrevious reports whether this page is not the first one.
func (p Page[T]) HasPrevious() bool {
	return p.Request.Number > 1
}

// Exists reports whether the requested page lies within the listing.
// The first page always exists, even for an empty listing.
func (p Page[T]) Exists() bool {
	return p.Request.Number == 1 || p.Request.Offset() < p.Total
}

// PageResponse is the JSON envelope of a paginated listing.
type PageResponse[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// ReminderReport summarizes one reminder scan.
type ReminderReport struct {
	WindowStart ClockTime `json:"window_start"`
	WindowEnd   ClockTime `json:"window_end"`
	Matched     int       `json:"matched"`
	Skipped     int       `json:"skipped"`
	Sent        int       `json:"sent"`
	Failed      int       `json:"failed"`
}

// MessageResponse is a plain informational response body.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of a non-validation error response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
