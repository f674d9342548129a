// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-qnexus/internal/hugr"
	"github.com/MKhiriev/go-qnexus/internal/logger"
	"github.com/MKhiriev/go-qnexus/internal/store"
	"github.com/MKhiriev/go-qnexus/internal/utils"
	"github.com/MKhiriev/go-qnexus/models"
)

type programService struct {
	projectRepository store.ProjectRepository
	programRepository store.ProgramRepository
	artifactStorage   store.ArtifactStorage
	ids               utils.IDGenerator

	logger *logger.Logger
}

func NewProgramService(storages *store.Storages, ids utils.IDGenerator, logger *logger.Logger) ProgramService {
	return &programService{
		projectRepository: storages.ProjectRepository,
		programRepository: storages.ProgramRepository,
		artifactStorage:   storages.ArtifactStorage,
		ids:               ids,
		logger:            logger,
	}
}

// UploadProgram stores the artifact under its content id and records its
// metadata. The content must be a program the stub can inspect; it is
// stored byte for byte.
func (p *programService) UploadProgram(ctx context.Context, upload models.HUGRUpload) (models.HUGRRef, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "programService.UploadProgram").
		Str("project_id", upload.ProjectID).
		Logger()

	if len(upload.Content) == 0 {
		return models.HUGRRef{}, ErrValidationEmptyProgram
	}
	if upload.ProjectID == "" {
		return models.HUGRRef{}, ErrValidationNoProjectID
	}
	name := strings.TrimSpace(upload.Name)
	if name == "" {
		return models.HUGRRef{}, fmt.Errorf("%w: program name is required", ErrInvalidDataProvided)
	}

	if _, err := hugr.Inspect(upload.Content); err != nil {
		log.Debug().Err(err).Msg("rejected program")
		return models.HUGRRef{}, fmt.Errorf("%w: %w", models.ErrInvalidProgram, err)
	}

	if _, err := p.projectRepository.GetProject(ctx, upload.ProjectID); err != nil {
		return models.HUGRRef{}, err
	}

	contentID, err := hugr.ContentID(upload.Content)
	if err != nil {
		return models.HUGRRef{}, fmt.Errorf("error computing content id: %w", err)
	}

	if err = p.artifactStorage.Save(ctx, contentID, upload.Content); err != nil {
		log.Err(err).Str("content_id", contentID).Msg("failed to store artifact")
		return models.HUGRRef{}, fmt.Errorf("error storing program artifact: %w", err)
	}

	ref := models.HUGRRef{
		ID:          p.ids.Generate(),
		Name:        name,
		Description: upload.Description,
		ProjectID:   upload.ProjectID,
		ContentID:   contentID,
		Size:        int64(len(upload.Content)),
		CreatedAt:   time.Now().UTC(),
	}

	if err = p.programRepository.CreateProgram(ctx, ref); err != nil {
		return models.HUGRRef{}, fmt.Errorf("error saving program: %w", err)
	}

	log.Info().
		Str("program_id", ref.ID).
		Str("content_id", contentID).
		Int64("size", ref.Size).
		Msg("program uploaded")

	return ref, nil
}

func (p *programService) GetProgram(ctx context.Context, id string) (models.HUGRRef, error) {
	if id == "" {
		return models.HUGRRef{}, fmt.Errorf("%w: no program id provided", ErrInvalidDataProvided)
	}
	return p.programRepository.GetProgram(ctx, id)
}
