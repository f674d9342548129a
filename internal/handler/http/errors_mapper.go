// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-qnexus/internal/service"
	"github.com/MKhiriev/go-qnexus/internal/store"
	"github.com/MKhiriev/go-qnexus/models"
)

// errorStatusMap maps sentinel errors to response statuses.
var errorStatusMap = map[error]int{
	models.ErrInputMismatch:            http.StatusBadRequest,
	models.ErrUnknownBackendConfig:     http.StatusBadRequest,
	models.ErrInvalidProgram:           http.StatusBadRequest,
	models.ErrInvalidArgument:          http.StatusBadRequest,
	models.ErrDecodeVersionUnsupported: http.StatusBadRequest,
	models.ErrUnauthorized:             http.StatusUnauthorized,
	models.ErrNotFound:                 http.StatusNotFound,
	models.ErrResultNotReady:           http.StatusConflict,
	models.ErrJobFailed:                http.StatusConflict,

	ErrMethodNotAllowed: http.StatusMethodNotAllowed,

	service.ErrTokenCreationFailed:   http.StatusInternalServerError,
	service.ErrVersionIsNotSpecified: http.StatusInternalServerError,

	store.ErrAlreadyExists: http.StatusConflict,
	store.ErrForeignKey:    http.StatusBadRequest,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
	store.ErrEncodingColumn:       http.StatusInternalServerError,
	store.ErrDecodingColumn:       http.StatusInternalServerError,
}

// statusFromError returns the lowest status among the sentinels err wraps,
// so that a constraint violation wrapped in a statement error is still a
// client error.
func statusFromError(err error) int {
	found := 0
	for target, status := range errorStatusMap {
		if errors.Is(err, target) && (found == 0 || status < found) {
			found = status
		}
	}
	if found == 0 {
		return http.StatusInternalServerError
	}
	return found
}
