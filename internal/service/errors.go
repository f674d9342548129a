// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-qnexus/models"
)

var (
	ErrInvalidDataProvided = fmt.Errorf("invalid data provided: %w", models.ErrInvalidArgument)

	ErrTokenIsExpiredOrInvalid = fmt.Errorf("token is expired or invalid: %w", models.ErrUnauthorized)
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrValidationNoProjectID   = fmt.Errorf("no project id provided: %w", models.ErrInvalidArgument)
	ErrValidationNoProjectName = fmt.Errorf("no project name provided: %w", models.ErrInvalidArgument)
	ErrValidationEmptyProgram  = fmt.Errorf("program content is empty: %w", models.ErrInvalidProgram)
	ErrProgramNotInProject     = fmt.Errorf("program does not belong to project: %w", models.ErrInvalidArgument)
)
