// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-qnexus/internal/adapter"
	"github.com/MKhiriev/go-qnexus/internal/logger"
	"github.com/MKhiriev/go-qnexus/models"
)

type clientHUGRService struct {
	adapter adapter.ServerAdapter

	logger *logger.Logger
}

func NewClientHUGRService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientHUGRService {
	return &clientHUGRService{adapter: serverAdapter, logger: logger}
}

func (s *clientHUGRService) UploadHUGR(ctx context.Context, upload models.HUGRUpload, project models.ProjectRef) (models.HUGRRef, error) {
	if len(upload.Content) == 0 {
		return models.HUGRRef{}, ErrValidationEmptyProgram
	}
	if project.ID == "" {
		return models.HUGRRef{}, ErrValidationNoProjectID
	}
	upload.Name = strings.TrimSpace(upload.Name)
	if upload.Name == "" {
		return models.HUGRRef{}, fmt.Errorf("%w: program name is empty", ErrInvalidDataProvided)
	}
	upload.ProjectID = project.ID

	ref, err := s.adapter.UploadHUGR(ctx, upload)
	if err != nil {
		return models.HUGRRef{}, fmt.Errorf("upload hugr %q: %w", upload.Name, err)
	}

	s.logger.Debug().Str("func", "*clientHUGRService.UploadHUGR").
		Str("program_id", ref.ID).
		Str("content_id", ref.ContentID).
		Msg("program uploaded")
	return ref, nil
}

func (s *clientHUGRService) Cost(ctx context.Context, programs []models.HUGRRef, nShots []int, project models.ProjectRef, systemName string) (float64, error) {
	req, err := costRequest(programs, nShots, project, systemName)
	if err != nil {
		return 0, err
	}

	resp, err := s.adapter.Cost(ctx, req)
	if err != nil {
		return 0, fmt.Errorf("cost: %w", err)
	}
	return resp.Cost, nil
}

func (s *clientHUGRService) CostConfidence(ctx context.Context, programs []models.HUGRRef, nShots []int, project models.ProjectRef, systemName string) ([]float64, error) {
	req, err := costRequest(programs, nShots, project, systemName)
	if err != nil {
		return nil, err
	}

	resp, err := s.adapter.CostConfidence(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("cost confidence: %w", err)
	}
	if len(resp.Confidence) == 0 {
		return nil, fmt.Errorf("cost confidence: %w: empty confidence list", adapter.ErrDecodeResponse)
	}
	return resp.Confidence, nil
}

func costRequest(programs []models.HUGRRef, nShots []int, project models.ProjectRef, systemName string) (models.CostRequest, error) {
	ids := programIDs(programs)
	if err := models.ValidateShots(ids, nShots); err != nil {
		return models.CostRequest{}, err
	}
	if project.ID == "" {
		return models.CostRequest{}, ErrValidationNoProjectID
	}
	if systemName == "" {
		systemName = models.DefaultCostSystem
	}

	return models.CostRequest{
		ProjectID:  project.ID,
		Programs:   ids,
		NShots:     nShots,
		SystemName: systemName,
	}, nil
}

func programIDs(programs []models.HUGRRef) []string {
	ids := make([]string, len(programs))
	for i, p := range programs {
		ids[i] = p.ID
	}
	return ids
}
