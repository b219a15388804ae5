package http

import (
	"net/http"

	"github.com/MKhiriev/go-habit-tracker/internal/logger"
	"github.com/MKhiriev/go-habit-tracker/internal/utils"
)

// auth is an HTTP middleware that enforces JWT bearer authentication.
//
// It reads the "Authorization: Bearer <access>" header, validates the token
// via [service.AuthService.ParseAccessToken] and stores the subject in the
// request context under [utils.UserIDCtxKey] before delegating to next.
//
// Requests are rejected with 401 when the header is absent, is not a bearer
// token, or carries an expired, foreign or refresh token.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseAccessToken(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("error occurred during parsing token")
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(ctx, token.UserID)))
	})
}
