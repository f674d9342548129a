// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides helpers shared by the service and the CLI: context
// keys, request body digests, JSON responses, the HTTP client, bearer tokens
// and id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// ClientCtxKey stores the authenticated client, the "sub" claim of its
// bearer token.
var ClientCtxKey = contextKey("client")

// WithClient returns a copy of ctx carrying client.
func WithClient(ctx context.Context, client string) context.Context {
	return context.WithValue(ctx, ClientCtxKey, client)
}

// GetClientFromContext returns the authenticated client stored by the auth
// middleware.
func GetClientFromContext(ctx context.Context) (string, bool) {
	client, ok := ctx.Value(ClientCtxKey).(string)
	return client, ok && client != ""
}
