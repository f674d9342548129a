// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGzip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/api/version", h.getServerVersion)

	// routes with authorization
	router.Route("/api/v1", func(r chi.Router) {
		r.Use(h.auth, h.verifyDigest)

		r.Route("/projects", func(r chi.Router) {
			r.Post("/", h.createProject)
			r.Get("/{id}", h.getProject)
			r.Delete("/{id}", h.deleteProject)
		})

		r.Route("/hugr", func(r chi.Router) {
			r.Post("/", h.uploadProgram)
			r.Post("/cost", h.cost)
			r.Post("/cost-confidence", h.costConfidence)
			r.Get("/{id}", h.getProgram)
		})

		r.Route("/jobs", func(r chi.Router) {
			r.Post("/execute", h.executeJob)
			r.Get("/{id}/status", h.getJobStatus)
			r.Get("/{id}/results", h.getJobResults)
		})

		r.Route("/results/{id}", func(r chi.Router) {
			r.Get("/", h.downloadResult)
			r.Get("/backend-info", h.getBackendInfo)
			r.Get("/input", h.getInput)
		})
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
