// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-qnexus/models"
)

// JobValidationService rejects malformed requests before they reach the
// wrapped JobService.
type JobValidationService struct {
	inner JobService
}

func NewJobValidationService() JobServiceWrapper {
	return &JobValidationService{}
}

func (v *JobValidationService) SubmitJob(ctx context.Context, req models.ExecuteJobRequest) (models.JobRef, error) {
	if req.ProjectID == "" {
		return models.JobRef{}, ErrValidationNoProjectID
	}
	if err := models.ValidateShots(req.Programs, req.NShots); err != nil {
		return models.JobRef{}, err
	}
	for i, id := range req.Programs {
		if id == "" {
			return models.JobRef{}, fmt.Errorf("%w: empty program id at index %d", ErrInvalidDataProvided, i)
		}
	}
	if err := models.ValidateBackendConfig(req.BackendConfig); err != nil {
		return models.JobRef{}, err
	}

	return v.inner.SubmitJob(ctx, req)
}

func (v *JobValidationService) GetJobStatus(ctx context.Context, id string) (models.JobStatusInfo, error) {
	if id == "" {
		return models.JobStatusInfo{}, fmt.Errorf("%w: no job id provided", ErrInvalidDataProvided)
	}
	return v.inner.GetJobStatus(ctx, id)
}

func (v *JobValidationService) GetJobResults(ctx context.Context, id string) ([]models.ExecutionResultRef, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: no job id provided", ErrInvalidDataProvided)
	}
	return v.inner.GetJobResults(ctx, id)
}

func (v *JobValidationService) Wrap(inner JobService) JobService {
	v.inner = inner
	return v
}
