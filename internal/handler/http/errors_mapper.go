package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-habit-tracker/internal/app"
	"github.com/MKhiriev/go-habit-tracker/internal/logger"
	"github.com/MKhiriev/go-habit-tracker/internal/service"
	"github.com/MKhiriev/go-habit-tracker/internal/store"
	"github.com/MKhiriev/go-habit-tracker/internal/utils"
	"github.com/MKhiriev/go-habit-tracker/internal/validators"
	"github.com/MKhiriev/go-habit-tracker/models"
)

type errorResponse struct {
	status int
	detail string
}

// errorStatusMap resolves sentinel errors to a status and a "detail" text.
// Errors that match none of the entries are internal server errors.
var errorStatusMap = []struct {
	target error
	errorResponse
}{
	{ErrInvalidJSON, errorResponse{http.StatusBadRequest, app.MsgJSONParseError}},
	{utils.ErrEmptyBody, errorResponse{http.StatusBadRequest, app.MsgEmptyBody}},
	{ErrInvalidPage, errorResponse{http.StatusNotFound, app.MsgInvalidPage}},
	{ErrInvalidID, errorResponse{http.StatusNotFound, app.MsgNotFound}},
	{store.ErrNotFound, errorResponse{http.StatusNotFound, app.MsgNotFound}},
	{store.ErrConstraintViolation, errorResponse{http.StatusBadRequest, app.MsgConstraintViolation}},

	{ErrEmptyAuthorizationHeader, errorResponse{http.StatusUnauthorized, app.MsgNotAuthenticated}},
	{utils.ErrInvalidAuthorizationHeader, errorResponse{http.StatusUnauthorized, app.MsgNotAuthenticated}},
	{ErrNoUserID, errorResponse{http.StatusUnauthorized, app.MsgNotAuthenticated}},
	{service.ErrInvalidCredentials, errorResponse{http.StatusUnauthorized, app.MsgInvalidCredentials}},
	{service.ErrTokenIsExpiredOrInvalid, errorResponse{http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid}},
}

func statusFromError(err error) (int, string) {
	for _, entry := range errorStatusMap {
		if errors.Is(err, entry.target) {
			return entry.status, entry.detail
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError renders err. Validation failures are written as the field map,
// everything else as {"detail": ...}. Server errors are logged.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *validators.ValidationError
	if errors.As(err, &verr) {
		utils.WriteJSON(w, verr, http.StatusBadRequest)
		return
	}

	status, detail := statusFromError(err)
	if status >= http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Str("func", "writeError").Str("path", r.URL.Path).Msg("request failed")
	} else {
		logger.FromRequest(r).Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, models.ErrorResponse{Detail: detail}, status)
}
