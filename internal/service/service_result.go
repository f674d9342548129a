// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-qnexus/internal/emulator"
	"github.com/MKhiriev/go-qnexus/internal/logger"
	"github.com/MKhiriev/go-qnexus/internal/qsys"
	"github.com/MKhiriev/go-qnexus/internal/store"
	"github.com/MKhiriev/go-qnexus/models"
)

// resultService serves the results of completed jobs. Payloads are stored
// in the raw encoding and collated on read.
type resultService struct {
	jobRepository     store.JobRepository
	programRepository store.ProgramRepository
	resultRepository  store.ResultRepository

	logger *logger.Logger
}

func NewResultService(storages *store.Storages, logger *logger.Logger) ResultService {
	return &resultService{
		jobRepository:     storages.JobRepository,
		programRepository: storages.ProgramRepository,
		resultRepository:  storages.ResultRepository,
		logger:            logger,
	}
}

func (r *resultService) GetBackendInfo(ctx context.Context, resultID string) (models.BackendInfo, error) {
	res, err := r.resultRepository.GetResult(ctx, resultID)
	if err != nil {
		return models.BackendInfo{}, err
	}

	job, err := r.jobRepository.GetJob(ctx, res.JobID)
	if err != nil {
		return models.BackendInfo{}, err
	}

	backend, err := emulator.New(job.Ref.BackendConfig, nil)
	if err != nil {
		return models.BackendInfo{}, err
	}
	return backend.Info(), nil
}

func (r *resultService) GetInput(ctx context.Context, resultID string) (models.HUGRRef, error) {
	res, err := r.resultRepository.GetResult(ctx, resultID)
	if err != nil {
		return models.HUGRRef{}, err
	}
	return r.programRepository.GetProgram(ctx, res.ProgramID)
}

func (r *resultService) Download(ctx context.Context, resultID string, version models.ResultVersion) (models.ExecutionPayload, error) {
	if !version.Supported() {
		return nil, fmt.Errorf("%w: %s", models.ErrDecodeVersionUnsupported, version)
	}

	stored, err := r.resultRepository.GetResultPayload(ctx, resultID)
	if errors.Is(err, store.ErrPayloadMissing) {
		return nil, fmt.Errorf("%w: %w", models.ErrResultNotReady, err)
	}
	if err != nil {
		return nil, err
	}

	var raw models.RawQsysResult
	if err = json.Unmarshal(stored, &raw); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "resultService.Download").
			Str("result_id", resultID).
			Msg("stored payload is corrupt")
		return nil, fmt.Errorf("error decoding stored result: %w", err)
	}

	if version == models.ResultVersionRaw {
		return &raw, nil
	}
	return qsys.Collate(&raw)
}
