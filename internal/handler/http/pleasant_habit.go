package http

import (
	"net/http"

	"github.com/MKhiriev/go-habit-tracker/internal/utils"
	"github.com/MKhiriev/go-habit-tracker/models"
)

func (h *Handler) createPleasantHabit(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input models.PleasantHabitInput
	if err = decodeBody(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	habit, err := h.services.PleasantHabitService.CreatePleasantHabit(r.Context(), userID, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, habit, http.StatusCreated)
}

func (h *Handler) listPleasantHabits(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	pageRequest, err := parsePageRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := h.services.PleasantHabitService.ListPleasantHabits(r.Context(), userID, pageRequest)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writePage(w, r, page)
}

func (h *Handler) getPleasantHabit(w http.ResponseWriter, r *http.Request) {
	userID, habitID, err := ownedIDs(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	habit, err := h.services.PleasantHabitService.GetPleasantHabit(r.Context(), userID, habitID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, habit, http.StatusOK)
}

func (h *Handler) replacePleasantHabit(w http.ResponseWriter, r *http.Request) {
	h.updatePleasantHabit(w, r, false)
}

func (h *Handler) patchPleasantHabit(w http.ResponseWriter, r *http.Request) {
	h.updatePleasantHabit(w, r, true)
}

func (h *Handler) updatePleasantHabit(w http.ResponseWriter, r *http.Request, partial bool) {
	userID, habitID, err := ownedIDs(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input models.PleasantHabitInput
	if err = decodeBody(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	habit, err := h.services.PleasantHabitService.UpdatePleasantHabit(r.Context(), userID, habitID, input, partial)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, habit, http.StatusOK)
}

// deletePleasantHabit removes the habit; useful habits pointing at it keep
// existing without a related habit.
func (h *Handler) deletePleasantHabit(w http.ResponseWriter, r *http.Request) {
	userID, habitID, err := ownedIDs(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.PleasantHabitService.DeletePleasantHabit(r.Context(), userID, habitID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
