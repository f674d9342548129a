// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-qnexus/internal/emulator"
	"github.com/MKhiriev/go-qnexus/internal/hugr"
	"github.com/MKhiriev/go-qnexus/internal/logger"
	"github.com/MKhiriev/go-qnexus/internal/store"
	"github.com/MKhiriev/go-qnexus/models"
)

type costService struct {
	programRepository store.ProgramRepository
	artifactStorage   store.ArtifactStorage
	estimator         emulator.Estimator

	logger *logger.Logger
}

func NewCostService(storages *store.Storages, logger *logger.Logger) CostService {
	return &costService{
		programRepository: storages.ProgramRepository,
		artifactStorage:   storages.ArtifactStorage,
		logger:            logger,
	}
}

func (c *costService) Cost(ctx context.Context, req models.CostRequest) (models.CostResponse, error) {
	jobs, err := c.jobs(ctx, req)
	if err != nil {
		return models.CostResponse{}, err
	}

	cost, err := c.estimator.Cost(jobs)
	if err != nil {
		return models.CostResponse{}, err
	}
	return models.CostResponse{Cost: cost}, nil
}

func (c *costService) CostConfidence(ctx context.Context, req models.CostRequest) (models.CostConfidenceResponse, error) {
	jobs, err := c.jobs(ctx, req)
	if err != nil {
		return models.CostConfidenceResponse{}, err
	}

	confidence, err := c.estimator.Confidence(jobs)
	if err != nil {
		return models.CostConfidenceResponse{}, err
	}
	return models.CostConfidenceResponse{Confidence: confidence}, nil
}

// jobs loads and inspects every program of req.
func (c *costService) jobs(ctx context.Context, req models.CostRequest) ([]emulator.Job, error) {
	if err := models.ValidateShots(req.Programs, req.NShots); err != nil {
		return nil, err
	}
	if req.ProjectID == "" {
		return nil, ErrValidationNoProjectID
	}

	programs, err := c.programRepository.GetPrograms(ctx, req.Programs)
	if err != nil {
		return nil, err
	}

	jobs := make([]emulator.Job, len(programs))
	for i, ref := range programs {
		if ref.ProjectID != req.ProjectID {
			return nil, fmt.Errorf("%w: %s", ErrProgramNotInProject, ref.ID)
		}

		data, err := c.artifactStorage.Load(ctx, ref.ContentID)
		if err != nil {
			return nil, err
		}

		prog, err := hugr.Inspect(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", models.ErrInvalidProgram, err)
		}
		jobs[i] = emulator.Job{Program: prog, NShots: req.NShots[i]}
	}

	systemName := req.SystemName
	if systemName == "" {
		systemName = models.DefaultCostSystem
	}
	logger.FromContext(ctx).Debug().
		Str("func", "costService.jobs").
		Str("system_name", systemName).
		Int("programs", len(jobs)).
		Msg("estimating cost")

	return jobs, nil
}
