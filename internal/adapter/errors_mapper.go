// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-qnexus/models"
	"github.com/go-resty/resty/v2"
)

// statusErrors is used when an error response carries no known code.
var statusErrors = map[int]error{
	http.StatusBadRequest:   models.ErrInvalidArgument,
	http.StatusUnauthorized: models.ErrUnauthorized,
	http.StatusForbidden:    models.ErrUnauthorized,
	http.StatusNotFound:     models.ErrNotFound,
}

// mapHTTPError returns nil for 2xx responses. Otherwise it decodes the
// {"code", "message"} body and wraps the matching models error, falling
// back to the status code.
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		if sentinel := models.ErrorFromCode(body.Code); sentinel != nil {
			return fmt.Errorf("%w: %s", sentinel, body.Message)
		}
	}

	message := strings.TrimSpace(body.Message)
	if message == "" {
		message = strings.TrimSpace(string(resp.Body()))
	}
	if message == "" {
		message = http.StatusText(status)
	}

	if sentinel, ok := statusErrors[status]; ok {
		return fmt.Errorf("%w: %s", sentinel, message)
	}
	return fmt.Errorf("%w %d: %s", ErrUnexpectedStatus, status, message)
}
