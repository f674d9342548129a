// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-qnexus/models"
)

type AuthService interface {
	CreateToken(ctx context.Context, client string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// HealthService reports whether the service can reach its storage.
type HealthService interface {
	Ping(ctx context.Context) error
}

type ProjectService interface {
	CreateProject(ctx context.Context, req models.CreateProjectRequest) (models.ProjectRef, error)
	GetProject(ctx context.Context, id string) (models.ProjectRef, error)
	// DeleteProject removes the project with everything it owns, including
	// artifacts no other project references.
	DeleteProject(ctx context.Context, id string) error
}

type ProgramService interface {
	UploadProgram(ctx context.Context, upload models.HUGRUpload) (models.HUGRRef, error)
	GetProgram(ctx context.Context, id string) (models.HUGRRef, error)
}

type JobService interface {
	SubmitJob(ctx context.Context, req models.ExecuteJobRequest) (models.JobRef, error)
	GetJobStatus(ctx context.Context, id string) (models.JobStatusInfo, error)
	// GetJobResults returns one result ref per submitted program in
	// submission order. It fails with models.ErrResultNotReady before the job
	// is terminal and with models.ErrJobFailed when the job did not complete.
	GetJobResults(ctx context.Context, id string) ([]models.ExecutionResultRef, error)
}

// JobExecutor runs submitted jobs. It is driven by the worker pool.
type JobExecutor interface {
	// ExecuteJob moves the job through QUEUED and RUNNING to a terminal
	// state. Jobs that are already terminal are skipped.
	ExecuteJob(ctx context.Context, id string) error
	// PendingJobs returns jobs left non-terminal, oldest first.
	PendingJobs(ctx context.Context) ([]string, error)
}

type ResultService interface {
	GetBackendInfo(ctx context.Context, resultID string) (models.BackendInfo, error)
	GetInput(ctx context.Context, resultID string) (models.HUGRRef, error)
	// Download returns the payload in the requested encoding: *QsysResult
	// for ResultVersionDefault and *RawQsysResult for ResultVersionRaw.
	Download(ctx context.Context, resultID string, version models.ResultVersion) (models.ExecutionPayload, error)
}

type CostService interface {
	Cost(ctx context.Context, req models.CostRequest) (models.CostResponse, error)
	CostConfidence(ctx context.Context, req models.CostRequest) (models.CostConfidenceResponse, error)
}

// JobQueue accepts job ids for background execution.
type JobQueue interface {
	Enqueue(ctx context.Context, jobID string) error
}

// JobServiceWrapper defines middleware composition for JobService.
// Implementations wrap an existing JobService to add behavior such as
// validation.
type JobServiceWrapper interface {
	Wrap(JobService) JobService
}
