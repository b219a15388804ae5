package http

import (
	"net/http"

	"github.com/MKhiriev/go-habit-tracker/internal/logger"
	"github.com/MKhiriev/go-habit-tracker/internal/utils"
	"github.com/MKhiriev/go-habit-tracker/models"
)

func (h *Handler) createHabit(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input models.HabitInput
	if err = decodeBody(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	habit, err := h.services.HabitService.CreateHabit(r.Context(), userID, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int64("habit_id", habit.ID).Int64("owner_id", userID).Msg("habit created")
	utils.WriteJSON(w, habit, http.StatusCreated)
}

func (h *Handler) listHabits(w http.ResponseWriter, r *http.Request) {
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

	page, err := h.services.HabitService.ListHabits(r.Context(), userID, pageRequest)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writePage(w, r, page)
}

// listPublicHabits lists habits of every owner flagged as public.
func (h *Handler) listPublicHabits(w http.ResponseWriter, r *http.Request) {
	pageRequest, err := parsePageRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := h.services.HabitService.ListPublicHabits(r.Context(), pageRequest)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writePage(w, r, page)
}

func (h *Handler) getHabit(w http.ResponseWriter, r *http.Request) {
	userID, habitID, err := ownedIDs(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	habit, err := h.services.HabitService.GetHabit(r.Context(), userID, habitID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, habit, http.StatusOK)
}

func (h *Handler) replaceHabit(w http.ResponseWriter, r *http.Request) {
	h.updateHabit(w, r, false)
}

func (h *Handler) patchHabit(w http.ResponseWriter, r *http.Request) {
	h.updateHabit(w, r, true)
}

func (h *Handler) updateHabit(w http.ResponseWriter, r *http.Request, partial bool) {
	userID, habitID, err := ownedIDs(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input models.HabitInput
	if err = decodeBody(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	habit, err := h.services.HabitService.UpdateHabit(r.Context(), userID, habitID, input, partial)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, habit, http.StatusOK)
}

func (h *Handler) deleteHabit(w http.ResponseWriter, r *http.Request) {
	userID, habitID, err := ownedIDs(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.HabitService.DeleteHabit(r.Context(), userID, habitID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writePage[T any](w http.ResponseWriter, r *http.Request, page models.Page[T]) {
	response, err := newPageResponse(r, page)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}
