// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-qnexus/models"
	"github.com/go-chi/chi/v5"
)

// uploadProgram accepts the program bytes base64-encoded in "content".
func (h *Handler) uploadProgram(w http.ResponseWriter, r *http.Request) {
	var upload models.HUGRUpload
	if err := decodeJSON(r, &upload); err != nil {
		writeError(w, r, "*Handler.uploadProgram", err)
		return
	}

	ref, err := h.services.ProgramService.UploadProgram(r.Context(), upload)
	if err != nil {
		writeError(w, r, "*Handler.uploadProgram", err)
		return
	}

	writeJSON(w, r, "*Handler.uploadProgram", ref, http.StatusCreated)
}

func (h *Handler) getProgram(w http.ResponseWriter, r *http.Request) {
	ref, err := h.services.ProgramService.GetProgram(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "*Handler.getProgram", err)
		return
	}

	writeJSON(w, r, "*Handler.getProgram", ref, http.StatusOK)
}

func (h *Handler) cost(w http.ResponseWriter, r *http.Request) {
	var req models.CostRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "*Handler.cost", err)
		return
	}

	resp, err := h.services.CostService.Cost(r.Context(), req)
	if err != nil {
		writeError(w, r, "*Handler.cost", err)
		return
	}

	writeJSON(w, r, "*Handler.cost", resp, http.StatusOK)
}

func (h *Handler) costConfidence(w http.ResponseWriter, r *http.Request) {
	var req models.CostRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "*Handler.costConfidence", err)
		return
	}

	resp, err := h.services.CostService.CostConfidence(r.Context(), req)
	if err != nil {
		writeError(w, r, "*Handler.costConfidence", err)
		return
	}

	writeJSON(w, r, "*Handler.costConfidence", resp, http.StatusOK)
}
