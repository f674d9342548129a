// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-qnexus/internal/service"
	"github.com/MKhiriev/go-qnexus/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the command in args and blocks until it is done.
	Run(ctx context.Context, args []string) error
}

// Waiter blocks until a job is terminal. The terminal UI and the plain job
// service both satisfy it.
type Waiter interface {
	WaitForJob(ctx context.Context, job models.JobRef, opts service.WaitOptions) (models.JobStatusInfo, error)
}
