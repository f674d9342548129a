// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-qnexus/internal/logger"
	"github.com/MKhiriev/go-qnexus/internal/store"
	"github.com/MKhiriev/go-qnexus/internal/utils"
	"github.com/MKhiriev/go-qnexus/models"
)

type projectService struct {
	projectRepository store.ProjectRepository
	artifactStorage   store.ArtifactStorage
	ids               utils.IDGenerator

	logger *logger.Logger
}

func NewProjectService(storages *store.Storages, ids utils.IDGenerator, logger *logger.Logger) ProjectService {
	return &projectService{
		projectRepository: storages.ProjectRepository,
		artifactStorage:   storages.ArtifactStorage,
		ids:               ids,
		logger:            logger,
	}
}

func (p *projectService) CreateProject(ctx context.Context, req models.CreateProjectRequest) (models.ProjectRef, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.ProjectRef{}, ErrValidationNoProjectName
	}

	project := models.ProjectRef{
		ID:          p.ids.Generate(),
		Name:        name,
		Description: req.Description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := p.projectRepository.CreateProject(ctx, project); err != nil {
		return models.ProjectRef{}, fmt.Errorf("error creating project: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "projectService.CreateProject").
		Str("project_id", project.ID).
		Str("name", project.Name).
		Msg("project created")

	return project, nil
}

func (p *projectService) GetProject(ctx context.Context, id string) (models.ProjectRef, error) {
	if id == "" {
		return models.ProjectRef{}, ErrValidationNoProjectID
	}
	return p.projectRepository.GetProject(ctx, id)
}

func (p *projectService) DeleteProject(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if id == "" {
		return ErrValidationNoProjectID
	}

	orphaned, err := p.projectRepository.DeleteProject(ctx, id)
	if err != nil {
		return fmt.Errorf("error deleting project: %w", err)
	}

	// the rows are gone already; a leftover file is only wasted space
	for _, contentID := range orphaned {
		if err = p.artifactStorage.Delete(ctx, contentID); err != nil {
			log.Warn().Err(err).
				Str("func", "projectService.DeleteProject").
				Str("content_id", contentID).
				Msg("failed to delete orphaned artifact")
		}
	}

	log.Info().
		Str("func", "projectService.DeleteProject").
		Str("project_id", id).
		Int("artifacts_deleted", len(orphaned)).
		Msg("project deleted")

	return nil
}
