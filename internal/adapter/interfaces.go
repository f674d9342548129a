// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client transport to the job service.
//
// [ServerAdapter] decouples the client services from the protocol. The
// package ships an HTTP/REST implementation ([NewHTTPServerAdapter]) that maps
// error responses back to the sentinels of package models, so callers can
// use [errors.Is] regardless of which side produced a failure.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-qnexus/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the job
// service. Every call is a single request; implementations do not retry.
type ServerAdapter interface {
	CreateProject(ctx context.Context, req models.CreateProjectRequest) (models.ProjectRef, error)
	GetProject(ctx context.Context, id string) (models.ProjectRef, error)
	DeleteProject(ctx context.Context, id string) error

	// UploadHUGR sends the program bytes and returns the stored reference.
	UploadHUGR(ctx context.Context, upload models.HUGRUpload) (models.HUGRRef, error)
	GetHUGR(ctx context.Context, id string) (models.HUGRRef, error)

	Cost(ctx context.Context, req models.CostRequest) (models.CostResponse, error)
	CostConfidence(ctx context.Context, req models.CostRequest) (models.CostConfidenceResponse, error)

	ExecuteJob(ctx context.Context, req models.ExecuteJobRequest) (models.JobRef, error)
	JobStatus(ctx context.Context, jobID string) (models.JobStatusInfo, error)
	// JobResults returns one result ref per program in submission order.
	JobResults(ctx context.Context, jobID string) ([]models.ExecutionResultRef, error)

	BackendInfo(ctx context.Context, resultID string) (models.BackendInfo, error)
	ResultInput(ctx context.Context, resultID string) (models.HUGRRef, error)
	// DownloadResult returns *models.QsysResult for ResultVersionDefault and
	// *models.RawQsysResult for ResultVersionRaw.
	DownloadResult(ctx context.Context, resultID string, version models.ResultVersion) (models.ExecutionPayload, error)

	ServerVersion(ctx context.Context) (string, error)
}
