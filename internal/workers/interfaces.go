// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background work of the stub service: a fixed
// pool of job runners fed by a buffered queue.
package workers

import "context"

// Worker is a background loop. Run blocks until ctx is cancelled and the
// worker has stopped.
type Worker interface {
	Run(ctx context.Context)
}

// Executor runs a single job to completion.
type Executor interface {
	ExecuteJob(ctx context.Context, id string) error
	// PendingJobs lists jobs that were left unfinished by a previous run.
	PendingJobs(ctx context.Context) ([]string, error)
}
