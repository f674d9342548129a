// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-qnexus/internal/logger"
	"github.com/MKhiriev/go-qnexus/models"
)

type programRepository struct {
	*DB
}

func NewProgramRepository(db *DB) ProgramRepository {
	return &programRepository{DB: db}
}

func (r *programRepository) CreateProgram(ctx context.Context, program models.HUGRRef) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertProgramQuery(r.statements(), program)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "programRepository.CreateProgram").
			Str("program_id", program.ID).
			Str("project_id", program.ProjectID).
			Msg("failed to insert program")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.classify(err))
	}

	return nil
}

func (r *programRepository) GetProgram(ctx context.Context, id string) (models.HUGRRef, error) {
	programs, err := r.GetPrograms(ctx, []string{id})
	if err != nil {
		return models.HUGRRef{}, err
	}
	return programs[0], nil
}

func (r *programRepository) GetPrograms(ctx context.Context, ids []string) ([]models.HUGRRef, error) {
	log := logger.FromContext(ctx)

	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := buildSelectProgramsQuery(r.statements(), ids...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "programRepository.GetPrograms").
			Int("ids", len(ids)).
			Msg("failed to select programs")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	byID := make(map[string]models.HUGRRef, len(ids))
	for rows.Next() {
		var p models.HUGRRef
		if err = rows.Scan(&p.ID, &p.ProjectID, &p.Name, &p.Description, &p.ContentID, &p.Size, &p.CreatedAt); err != nil {
			log.Err(err).
				Str("func", "programRepository.GetPrograms").
				Msg("failed to scan program row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		byID[p.ID] = p
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	out := make([]models.HUGRRef, len(ids))
	for i, id := range ids {
		p, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrProgramNotFound, id)
		}
		out[i] = p
	}

	return out, nil
}
