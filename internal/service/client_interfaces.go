// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-qnexus/models"
)

// ClientProjectService manages the projects that scope uploads and jobs.
type ClientProjectService interface {
	CreateProject(ctx context.Context, name, description string) (models.ProjectRef, error)
	DeleteProject(ctx context.Context, project models.ProjectRef) error

	// WithProject creates a project, runs fn with it and deletes the project
	// on every exit path, including a panic in fn. A teardown failure is
	// joined with the error returned by fn.
	WithProject(ctx context.Context, name string, fn func(ctx context.Context, project models.ProjectRef) error) error
}

// ClientHUGRService uploads programs and estimates their cost.
type ClientHUGRService interface {
	UploadHUGR(ctx context.Context, upload models.HUGRUpload, project models.ProjectRef) (models.HUGRRef, error)

	// Cost returns the estimated cost of running each program nShots[i]
	// times. An empty systemName selects models.DefaultCostSystem.
	Cost(ctx context.Context, programs []models.HUGRRef, nShots []int, project models.ProjectRef, systemName string) (float64, error)

	// CostConfidence returns a non-empty, non-decreasing list of estimates.
	CostConfidence(ctx context.Context, programs []models.HUGRRef, nShots []int, project models.ProjectRef, systemName string) ([]float64, error)
}

// ClientJobService submits execute jobs, waits for them and lists their
// results.
type ClientJobService interface {
	// StartExecuteJob fails with models.ErrInputMismatch or
	// models.ErrUnknownBackendConfig before any request is sent.
	StartExecuteJob(ctx context.Context, req ExecuteJob) (models.JobRef, error)

	Status(ctx context.Context, job models.JobRef) (models.JobStatusInfo, error)

	// WaitForJob polls until the job is terminal. It fails with
	// models.ErrJobTimeout when opts.Timeout elapses and with
	// models.ErrJobFailed when the job ends in ERROR or CANCELLED.
	WaitForJob(ctx context.Context, job models.JobRef, opts WaitOptions) (models.JobStatusInfo, error)

	// Results returns one handle per submitted program in submission order.
	Results(ctx context.Context, job models.JobRef) ([]*ResultHandle, error)
}

// ClientTokenService mints bearer tokens for a local stub service.
type ClientTokenService interface {
	MintToken(client string) (string, error)
}

// ExecuteJob describes an execute job on the client side.
type ExecuteJob struct {
	Name          string
	Programs      []models.HUGRRef
	NShots        []int
	BackendConfig models.BackendConfig
	Project       models.ProjectRef
}

// WaitOptions tune WaitForJob. Zero values fall back to the configured
// poll interval and wait timeout.
type WaitOptions struct {
	Interval time.Duration
	Timeout  time.Duration

	// OnStatus, if set, receives every observed status.
	OnStatus func(models.JobStatusInfo)
}
