// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-habit-tracker/internal/app"
	"github.com/MKhiriev/go-habit-tracker/internal/utils"
	"github.com/MKhiriev/go-habit-tracker/models"
)

// methodNotAllowed is registered as the router's MethodNotAllowed handler.
// chi fills the Allow header before calling it.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{
		Detail: fmt.Sprintf(app.MsgMethodNotAllowed, r.Method),
	}, http.StatusMethodNotAllowed)
}

// notFound is registered as the router's NotFound handler.
func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{Detail: app.MsgNotFound}, http.StatusNotFound)
}
