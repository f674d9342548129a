// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-qnexus/internal/adapter"
	"github.com/MKhiriev/go-qnexus/internal/logger"
	"github.com/MKhiriev/go-qnexus/models"
)

type clientProjectService struct {
	adapter adapter.ServerAdapter

	logger *logger.Logger
}

func NewClientProjectService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientProjectService {
	return &clientProjectService{adapter: serverAdapter, logger: logger}
}

func (s *clientProjectService) CreateProject(ctx context.Context, name, description string) (models.ProjectRef, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.ProjectRef{}, ErrValidationNoProjectName
	}

	project, err := s.adapter.CreateProject(ctx, models.CreateProjectRequest{Name: name, Description: description})
	if err != nil {
		return models.ProjectRef{}, fmt.Errorf("create project %q: %w", name, err)
	}

	s.logger.Debug().Str("func", "*clientProjectService.CreateProject").
		Str("project_id", project.ID).
		Str("name", project.Name).
		Msg("project created")
	return project, nil
}

func (s *clientProjectService) DeleteProject(ctx context.Context, project models.ProjectRef) error {
	if project.ID == "" {
		return ErrValidationNoProjectID
	}

	if err := s.adapter.DeleteProject(ctx, project.ID); err != nil {
		return fmt.Errorf("delete project %s: %w", project.ID, err)
	}
	return nil
}

func (s *clientProjectService) WithProject(ctx context.Context, name string, fn func(ctx context.Context, project models.ProjectRef) error) (err error) {
	project, err := s.CreateProject(ctx, name, "")
	if err != nil {
		return err
	}

	defer func() {
		recovered := recover()

		// teardown must run even when ctx is already cancelled
		deleteErr := s.DeleteProject(context.WithoutCancel(ctx), project)
		if deleteErr != nil {
			s.logger.Err(deleteErr).Str("func", "*clientProjectService.WithProject").
				Str("project_id", project.ID).
				Msg("failed to delete project")
		}

		if recovered != nil {
			panic(recovered)
		}
		err = errors.Join(err, deleteErr)
	}()

	return fn(ctx, project)
}
