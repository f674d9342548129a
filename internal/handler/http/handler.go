// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-qnexus/internal/config"
	"github.com/MKhiriev/go-qnexus/internal/logger"
	"github.com/MKhiriev/go-qnexus/internal/service"
	"github.com/MKhiriev/go-qnexus/internal/utils"
)

type Handler struct {
	services *service.Services

	// hasher verifies X-Content-Digest on request bodies. Nil disables the
	// check.
	hasher         *utils.Hasher
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handler, error) {
	h := &Handler{
		services:       services,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}

	if cfg.App.HashKey != "" {
		hasher, err := utils.NewHasher(cfg.App.HashKey)
		if err != nil {
			return nil, err
		}
		h.hasher = hasher
	}

	logger.Info().Bool("digest", h.hasher != nil).Msg("http handler created")
	return h, nil
}

// decodeJSON decodes the request body into v. Decoding errors keep the
// error returned by custom unmarshalers so that, for example, an unknown
// backend config is reported as such.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// writeError logs err and writes it with the mapped status. Internal errors
// are not echoed to the caller.
func writeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status := statusFromError(err)
	log := logger.FromRequest(r)

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", fn).Int("status", status).Msg("request failed")
		utils.WriteError(w, errors.New(http.StatusText(status)), status)
		return
	}

	log.Warn().Err(err).Str("func", fn).Int("status", status).Msg("request rejected")
	utils.WriteError(w, err, status)
}

func writeJSON(w http.ResponseWriter, r *http.Request, fn string, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", fn).Msg("failed to write response")
	}
}
