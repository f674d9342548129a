// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

// Errors visible to callers of the job API. The stub service and the client
// agree on them through the wire codes below, so callers can match with
// [errors.Is] regardless of which side produced the failure.
var (
	// ErrInputMismatch is returned when programs and shot counts differ in
	// length, are empty, or a shot count is not positive.
	ErrInputMismatch = errors.New("programs and shot counts do not match")

	// ErrUnknownBackendConfig is returned for an unrecognised backend config
	// variant or one that is missing required fields.
	ErrUnknownBackendConfig = errors.New("unknown backend config")

	// ErrJobFailed is returned when a job reaches ERROR or CANCELLED.
	ErrJobFailed = errors.New("job failed")

	// ErrJobTimeout is returned when waiting for a job exceeds its bound.
	ErrJobTimeout = errors.New("timed out waiting for job")

	// ErrResultNotReady is returned when results are requested for a job that
	// has not reached a terminal state.
	ErrResultNotReady = errors.New("job results are not ready")

	// ErrDecodeVersionUnsupported is returned for a result version that is
	// not available.
	ErrDecodeVersionUnsupported = errors.New("result version is not supported")

	ErrNotFound        = errors.New("not found")
	ErrInvalidProgram  = errors.New("invalid program")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrInvalidArgument = errors.New("invalid argument")
)

// ErrorResponse is the JSON body of every non-2xx API response.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

var errorCodes = []struct {
	err  error
	code string
}{
	{ErrInputMismatch, "input_mismatch"},
	{ErrUnknownBackendConfig, "unknown_backend_config"},
	{ErrJobFailed, "job_failed"},
	{ErrJobTimeout, "job_timeout"},
	{ErrResultNotReady, "result_not_ready"},
	{ErrDecodeVersionUnsupported, "decode_version_unsupported"},
	{ErrNotFound, "not_found"},
	{ErrInvalidProgram, "invalid_program"},
	{ErrUnauthorized, "unauthorized"},
	{ErrInvalidArgument, "invalid_argument"},
}

// ErrorCode returns the wire code for err, or "internal" when err does not
// wrap a known error.
func ErrorCode(err error) string {
	for _, c := range errorCodes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return "internal"
}

// ErrorFromCode returns the error registered for code, or nil.
func ErrorFromCode(code string) error {
	for _, c := range errorCodes {
		if c.code == code {
			return c.err
		}
	}
	return nil
}
