// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-qnexus/internal/config"
	"github.com/MKhiriev/go-qnexus/internal/logger"
)

// Storages bundles every persistence component of the stub service.
type Storages struct {
	ProjectRepository ProjectRepository
	ProgramRepository ProgramRepository
	JobRepository     JobRepository
	ResultRepository  ResultRepository
	ArtifactStorage   ArtifactStorage

	db *DB
}

// NewStorages connects to the configured database, applies migrations and
// prepares the artifact directory.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, err
	}

	artifacts, err := NewArtifactFileStorage(cfg.Files.ArtifactDir)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Storages{
		ProjectRepository: NewProjectRepository(db),
		ProgramRepository: NewProgramRepository(db),
		JobRepository:     NewJobRepository(db),
		ResultRepository:  NewResultRepository(db),
		ArtifactStorage:   artifacts,
		db:                db,
	}, nil
}

// Close releases the database connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("error closing database: %w", err)
	}
	return nil
}

// Ping reports whether the database is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	if s.db == nil {
		return nil
	}
	return s.db.PingContext(ctx)
}
