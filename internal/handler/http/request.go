package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-habit-tracker/internal/utils"
)

const idParam = "id"

// decodeBody decodes the JSON body of r into dst. Malformed bodies are
// reported as ErrInvalidJSON, a missing body as utils.ErrEmptyBody.
func decodeBody(r *http.Request, dst any) error {
	err := utils.DecodeJSON(r, dst)
	if err == nil || errors.Is(err, utils.ErrEmptyBody) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
}

// pathID returns the positive integer {id} URL parameter.
func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, idParam)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	return id, nil
}

// currentUserID returns the user set by the auth middleware.
func currentUserID(r *http.Request) (int64, error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return 0, ErrNoUserID
	}
	return userID, nil
}

// ownedIDs returns the current user and the {id} path parameter.
func ownedIDs(r *http.Request) (int64, int64, error) {
	userID, err := currentUserID(r)
	if err != nil {
		return 0, 0, err
	}
	id, err := pathID(r)
	if err != nil {
		return 0, 0, err
	}
	return userID, id, nil
}
