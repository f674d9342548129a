// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-qnexus/models"
)

// Sentinel errors returned by repository methods. The not-found errors wrap
// [models.ErrNotFound] so that callers outside the store can match them
// without importing this package.
var (
	ErrProjectNotFound  = fmt.Errorf("project %w", models.ErrNotFound)
	ErrProgramNotFound  = fmt.Errorf("program %w", models.ErrNotFound)
	ErrJobNotFound      = fmt.Errorf("job %w", models.ErrNotFound)
	ErrResultNotFound   = fmt.Errorf("result %w", models.ErrNotFound)
	ErrArtifactNotFound = fmt.Errorf("artifact %w", models.ErrNotFound)

	// ErrPayloadMissing is returned when a result row exists but its job has
	// not stored a payload yet.
	ErrPayloadMissing = errors.New("result payload is not stored yet")

	// ErrAlreadyExists is returned on a unique constraint violation.
	ErrAlreadyExists = errors.New("record already exists")

	// ErrForeignKey is returned when a referenced record does not exist.
	ErrForeignKey = errors.New("referenced record does not exist")

	// ErrInvalidContentID is returned for artifact keys that are not CIDs.
	ErrInvalidContentID = errors.New("invalid artifact content id")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to executing statement")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
	ErrEncodingColumn       = errors.New("failed to encode column value")
	ErrDecodingColumn       = errors.New("failed to decode column value")
)
