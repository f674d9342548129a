// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-qnexus/models"
)

type ProjectRepository interface {
	CreateProject(ctx context.Context, project models.ProjectRef) error
	GetProject(ctx context.Context, id string) (models.ProjectRef, error)
	// DeleteProject removes the project together with its programs, jobs and
	// results. It returns the content ids that are no longer referenced by
	// any program.
	DeleteProject(ctx context.Context, id string) ([]string, error)
}

type ProgramRepository interface {
	CreateProgram(ctx context.Context, program models.HUGRRef) error
	GetProgram(ctx context.Context, id string) (models.HUGRRef, error)
	// GetPrograms returns the programs in the order of ids. A missing id
	// yields ErrProgramNotFound.
	GetPrograms(ctx context.Context, ids []string) ([]models.HUGRRef, error)
}

type JobRepository interface {
	// CreateJob stores the job and one result row per program.
	CreateJob(ctx context.Context, job models.Job, results []models.ExecutionResultRef) error
	GetJob(ctx context.Context, id string) (models.Job, error)
	UpdateJobStatus(ctx context.Context, id string, status models.JobStatusInfo) error
	// CompleteJob stores every payload and marks the job COMPLETED in one
	// transaction.
	CompleteJob(ctx context.Context, id string, payloads []ResultPayload, status models.JobStatusInfo) error
	// ListUnfinishedJobs returns ids of jobs that are not in a terminal
	// state, oldest first.
	ListUnfinishedJobs(ctx context.Context) ([]string, error)
}

type ResultRepository interface {
	GetResults(ctx context.Context, jobID string) ([]models.ExecutionResultRef, error)
	GetResult(ctx context.Context, id string) (models.ExecutionResultRef, error)
	// GetResultPayload returns the stored raw encoding of a result.
	GetResultPayload(ctx context.Context, id string) ([]byte, error)
}

// ArtifactStorage keeps uploaded program bytes keyed by content id.
type ArtifactStorage interface {
	Save(ctx context.Context, contentID string, data []byte) error
	Load(ctx context.Context, contentID string) ([]byte, error)
	Delete(ctx context.Context, contentID string) error
}

// ResultPayload is the raw encoded outcome of one result row.
type ResultPayload struct {
	ResultID string
	Raw      []byte
}
