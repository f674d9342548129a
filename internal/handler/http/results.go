// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-qnexus/models"
	"github.com/go-chi/chi/v5"
)

// ResultVersionHeader carries the version of a downloaded payload.
const ResultVersionHeader = "X-Result-Version"

func (h *Handler) getBackendInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.services.ResultService.GetBackendInfo(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "*Handler.getBackendInfo", err)
		return
	}

	writeJSON(w, r, "*Handler.getBackendInfo", info, http.StatusOK)
}

func (h *Handler) getInput(w http.ResponseWriter, r *http.Request) {
	ref, err := h.services.ResultService.GetInput(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "*Handler.getInput", err)
		return
	}

	writeJSON(w, r, "*Handler.getInput", ref, http.StatusOK)
}

// downloadResult serves ?version=3 (collated, the default) or ?version=4
// (raw).
func (h *Handler) downloadResult(w http.ResponseWriter, r *http.Request) {
	version, err := models.ParseResultVersion(r.URL.Query().Get("version"))
	if err != nil {
		writeError(w, r, "*Handler.downloadResult", err)
		return
	}

	payload, err := h.services.ResultService.Download(r.Context(), chi.URLParam(r, "id"), version)
	if err != nil {
		writeError(w, r, "*Handler.downloadResult", err)
		return
	}

	w.Header().Set(ResultVersionHeader, strconv.Itoa(int(payload.Version())))
	writeJSON(w, r, "*Handler.downloadResult", payload, http.StatusOK)
}
