// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrRequestFailed wraps transport failures: the request never got a
	// response.
	ErrRequestFailed = errors.New("request to job service failed")

	// ErrUnexpectedStatus is returned for error responses without a known
	// error code.
	ErrUnexpectedStatus = errors.New("unexpected response status")

	ErrDecodeResponse = errors.New("failed to decode response")

	ErrInvalidAddress = errors.New("invalid job service address")
)
