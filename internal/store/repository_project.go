// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-qnexus/internal/logger"
	"github.com/MKhiriev/go-qnexus/models"
)

type projectRepository struct {
	*DB
}

func NewProjectRepository(db *DB) ProjectRepository {
	return &projectRepository{DB: db}
}

func (r *projectRepository) CreateProject(ctx context.Context, project models.ProjectRef) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertProjectQuery(r.statements(), project)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "projectRepository.CreateProject").
			Str("project_id", project.ID).
			Msg("failed to insert project")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.classify(err))
	}

	return nil
}

func (r *projectRepository) GetProject(ctx context.Context, id string) (models.ProjectRef, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectProjectQuery(r.statements(), id)
	if err != nil {
		return models.ProjectRef{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var p models.ProjectRef
	err = r.QueryRowContext(ctx, query, args...).Scan(&p.ID, &p.Name, &p.Description, &p.CreatedAt, &p.Archived)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ProjectRef{}, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
	}
	if err != nil {
		log.Err(err).
			Str("func", "projectRepository.GetProject").
			Str("project_id", id).
			Msg("failed to scan project row")
		return models.ProjectRef{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return p, nil
}

func (r *projectRepository) DeleteProject(ctx context.Context, id string) ([]string, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "projectRepository.DeleteProject").
		Str("project_id", id).
		Logger()

	tx, err := r.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	query, args, err := buildSelectProjectContentIDsQuery(r.statements(), id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Msg("failed to select orphaned content ids")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var orphaned []string
	for rows.Next() {
		var contentID string
		if err = rows.Scan(&contentID); err != nil {
			rows.Close()
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		orphaned = append(orphaned, contentID)
	}
	if err = rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	rows.Close()

	query, args, err = buildDeleteProjectQuery(r.statements(), id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Msg("failed to delete project")
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Msg("failed to commit transaction")
		return nil, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return orphaned, nil
}
