package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-habit-tracker/internal/app"
	"github.com/MKhiriev/go-habit-tracker/internal/logger"
	"github.com/MKhiriev/go-habit-tracker/internal/utils"
	"github.com/MKhiriev/go-habit-tracker/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := decodeBody(r, &user); err != nil {
		writeError(w, r, err)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("id", registeredUser.UserID).Msg("user registered")

	utils.WriteJSON(w, models.MessageResponse{
		Message: fmt.Sprintf(app.MsgUserRegistered, registeredUser.Email),
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var credentials models.Credentials
	if err := decodeBody(r, &credentials); err != nil {
		writeError(w, r, err)
		return
	}

	tokens, err := h.services.AuthService.Login(r.Context(), credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, tokens, http.StatusOK)
}

func (h *Handler) refreshToken(w http.ResponseWriter, r *http.Request) {
	var request models.RefreshRequest
	if err := decodeBody(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	access, err := h.services.AuthService.RefreshAccessToken(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, access, http.StatusOK)
}
