// Package http implements the REST transport of the habit tracker.
//
// It wires chi routes for users, habits and pleasant habits, decodes request
// bodies into model inputs and renders service results and errors as JSON.
// Tracing, access logging, bearer authentication, CORS and compression are
// applied as middleware before a request reaches the service layer.
package http
