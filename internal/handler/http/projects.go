// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-qnexus/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createProject(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProjectRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "*Handler.createProject", err)
		return
	}

	project, err := h.services.ProjectService.CreateProject(r.Context(), req)
	if err != nil {
		writeError(w, r, "*Handler.createProject", err)
		return
	}

	writeJSON(w, r, "*Handler.createProject", project, http.StatusCreated)
}

func (h *Handler) getProject(w http.ResponseWriter, r *http.Request) {
	project, err := h.services.ProjectService.GetProject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "*Handler.getProject", err)
		return
	}

	writeJSON(w, r, "*Handler.getProject", project, http.StatusOK)
}

func (h *Handler) deleteProject(w http.ResponseWriter, r *http.Request) {
	if err := h.services.ProjectService.DeleteProject(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, "*Handler.deleteProject", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
