// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle of the transport servers.
type Server interface {
	// RunServer listens on the configured addresses and serves until ctx is
	// done or a server fails, then shuts every server down.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the servers within the deadline of ctx.
	Shutdown(ctx context.Context)
}
