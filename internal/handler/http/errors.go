// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-qnexus/models"
)

// Errors of the "Authorization" header. They all wrap models.ErrUnauthorized.
var (
	ErrEmptyAuthorizationHeader   = fmt.Errorf("empty `Authorization` header: %w", models.ErrUnauthorized)
	ErrInvalidAuthorizationHeader = fmt.Errorf("invalid `Authorization` header: %w", models.ErrUnauthorized)
)

var (
	ErrInvalidJSON = fmt.Errorf("invalid JSON body: %w", models.ErrInvalidArgument)

	// ErrIntegrityCheckFailed is returned when a request body does not match
	// its X-Content-Digest header.
	ErrIntegrityCheckFailed = fmt.Errorf("integrity check failed: %w", models.ErrInvalidArgument)

	ErrInvalidGzipBody = fmt.Errorf("invalid gzip body: %w", models.ErrInvalidArgument)

	ErrRouteNotFound    = fmt.Errorf("route %w", models.ErrNotFound)
	ErrMethodNotAllowed = errors.New("method not allowed")
)
