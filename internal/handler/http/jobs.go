// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-qnexus/internal/logger"
	"github.com/MKhiriev/go-qnexus/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) executeJob(w http.ResponseWriter, r *http.Request) {
	var req models.ExecuteJobRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "*Handler.executeJob", err)
		return
	}

	ref, err := h.services.JobService.SubmitJob(r.Context(), req)
	if err != nil {
		writeError(w, r, "*Handler.executeJob", err)
		return
	}

	logger.FromRequest(r).Info().Str("func", "*Handler.executeJob").
		Str("job_id", ref.ID).
		Str("backend", ref.BackendConfig.BackendType()).
		Int("programs", len(req.Programs)).
		Msg("job submitted")

	writeJSON(w, r, "*Handler.executeJob", ref, http.StatusAccepted)
}

func (h *Handler) getJobStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.services.JobService.GetJobStatus(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "*Handler.getJobStatus", err)
		return
	}

	writeJSON(w, r, "*Handler.getJobStatus", status, http.StatusOK)
}

func (h *Handler) getJobResults(w http.ResponseWriter, r *http.Request) {
	results, err := h.services.JobService.GetJobResults(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "*Handler.getJobResults", err)
		return
	}

	writeJSON(w, r, "*Handler.getJobResults", results, http.StatusOK)
}
