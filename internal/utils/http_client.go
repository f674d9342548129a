// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client for baseURL. A non-zero timeout bounds every
// request and a non-empty token is sent as a bearer token.
func NewHTTPClient(baseURL string, timeout time.Duration, token string) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	if token != "" {
		client.SetAuthToken(token)
	}

	return &HTTPClient{Client: client}
}
