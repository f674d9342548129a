// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-qnexus/internal/adapter"
	"github.com/MKhiriev/go-qnexus/internal/config"
	"github.com/MKhiriev/go-qnexus/internal/logger"
	"github.com/MKhiriev/go-qnexus/models"
)

const (
	defaultPollInterval = time.Second
	defaultWaitTimeout  = 15 * time.Minute
)

type clientJobService struct {
	adapter adapter.ServerAdapter
	workers config.ClientWorkers

	logger *logger.Logger
}

func NewClientJobService(serverAdapter adapter.ServerAdapter, workers config.ClientWorkers, logger *logger.Logger) ClientJobService {
	return &clientJobService{adapter: serverAdapter, workers: workers, logger: logger}
}

func (s *clientJobService) StartExecuteJob(ctx context.Context, req ExecuteJob) (models.JobRef, error) {
	ids := programIDs(req.Programs)
	if err := models.ValidateShots(ids, req.NShots); err != nil {
		return models.JobRef{}, err
	}
	if err := models.ValidateBackendConfig(req.BackendConfig); err != nil {
		return models.JobRef{}, err
	}
	if req.Project.ID == "" {
		return models.JobRef{}, ErrValidationNoProjectID
	}

	job, err := s.adapter.ExecuteJob(ctx, models.ExecuteJobRequest{
		Name:          req.Name,
		ProjectID:     req.Project.ID,
		Programs:      ids,
		NShots:        req.NShots,
		BackendConfig: req.BackendConfig,
	})
	if err != nil {
		return models.JobRef{}, fmt.Errorf("execute job %q: %w", req.Name, err)
	}

	s.logger.Info().Str("func", "*clientJobService.StartExecuteJob").
		Str("job_id", job.ID).
		Str("backend", req.BackendConfig.BackendType()).
		Int("programs", len(ids)).
		Msg("job submitted")
	return job, nil
}

func (s *clientJobService) Status(ctx context.Context, job models.JobRef) (models.JobStatusInfo, error) {
	info, err := s.adapter.JobStatus(ctx, job.ID)
	if err != nil {
		return models.JobStatusInfo{}, fmt.Errorf("job %s status: %w", job.ID, err)
	}
	return info, nil
}

func (s *clientJobService) WaitForJob(ctx context.Context, job models.JobRef, opts WaitOptions) (models.JobStatusInfo, error) {
	interval := opts.Interval
	if interval <= 0 {
		interval = s.workers.PollInterval
	}
	if interval <= 0 {
		interval = defaultPollInterval
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = s.workers.WaitTimeout
	}
	if timeout <= 0 {
		timeout = defaultWaitTimeout
	}

	ctx, cancel := context.WithTimeoutCause(ctx, timeout, models.ErrJobTimeout)
	defer cancel()

	log := s.logger.WithJob(job.ID)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		info, err := s.adapter.JobStatus(ctx, job.ID)
		switch {
		case err == nil:
		case ctx.Err() != nil:
			return models.JobStatusInfo{}, waitError(ctx, job, timeout)
		default:
			return models.JobStatusInfo{}, fmt.Errorf("job %s status: %w", job.ID, err)
		}

		if opts.OnStatus != nil {
			opts.OnStatus(info)
		}
		log.Debug().Str("func", "*clientJobService.WaitForJob").
			Str("status", string(info.Status)).
			Msg("polled job status")

		if info.Status.IsFailure() {
			return info, fmt.Errorf("%w: job %s is %s: %s", models.ErrJobFailed, job.ID, info.Status, info.Message)
		}
		if info.Status.IsTerminal() {
			return info, nil
		}

		select {
		case <-ctx.Done():
			return models.JobStatusInfo{}, waitError(ctx, job, timeout)
		case <-ticker.C:
		}
	}
}

func waitError(ctx context.Context, job models.JobRef, timeout time.Duration) error {
	if cause := context.Cause(ctx); errors.Is(cause, models.ErrJobTimeout) {
		return fmt.Errorf("%w: job %s after %s", models.ErrJobTimeout, job.ID, timeout)
	}
	return ctx.Err()
}

func (s *clientJobService) Results(ctx context.Context, job models.JobRef) ([]*ResultHandle, error) {
	refs, err := s.adapter.JobResults(ctx, job.ID)
	if err != nil {
		return nil, fmt.Errorf("job %s results: %w", job.ID, err)
	}

	handles := make([]*ResultHandle, len(refs))
	for i, ref := range refs {
		handles[i] = NewResultHandle(ref, s.adapter)
	}
	return handles, nil
}
