package http

import (
	"net/http"

	"github.com/MKhiriev/go-habit-tracker/internal/utils"
	"github.com/MKhiriev/go-habit-tracker/models"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.GetProfile(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// updateProfile applies a partial update. "telegram_chat_id": "" clears the
// chat and stops reminders.
func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.ProfileUpdate
	if err = decodeBody(r, &update); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.UpdateProfile(r.Context(), userID, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
