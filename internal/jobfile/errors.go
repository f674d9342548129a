// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package jobfile

import "errors"

var (
	ErrInvalidJobFile = errors.New("invalid job file")
	ErrJobNotFound    = errors.New("job not found in file")
	ErrUnknownBackend = errors.New("unknown backend type")
)
