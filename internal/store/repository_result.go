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

type resultRepository struct {
	*DB
}

func NewResultRepository(db *DB) ResultRepository {
	return &resultRepository{DB: db}
}

func (r *resultRepository) GetResults(ctx context.Context, jobID string) ([]models.ExecutionResultRef, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectResultsQuery(r.statements(), jobID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "resultRepository.GetResults").
			Str("job_id", jobID).
			Msg("failed to select results")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.ExecutionResultRef, 0, 4)
	for rows.Next() {
		var res models.ExecutionResultRef
		if err = rows.Scan(&res.ID, &res.JobID, &res.Index, &res.ProgramID, &res.ProjectID, &res.NShots); err != nil {
			log.Err(err).
				Str("func", "resultRepository.GetResults").
				Str("job_id", jobID).
				Msg("failed to scan result row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		results = append(results, res)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return results, nil
}

func (r *resultRepository) GetResult(ctx context.Context, id string) (models.ExecutionResultRef, error) {
	query, args, err := buildSelectResultQuery(r.statements(), id)
	if err != nil {
		return models.ExecutionResultRef{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var res models.ExecutionResultRef
	err = r.QueryRowContext(ctx, query, args...).Scan(&res.ID, &res.JobID, &res.Index, &res.ProgramID, &res.ProjectID, &res.NShots)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ExecutionResultRef{}, fmt.Errorf("%w: %s", ErrResultNotFound, id)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "resultRepository.GetResult").
			Str("result_id", id).
			Msg("failed to scan result row")
		return models.ExecutionResultRef{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return res, nil
}

func (r *resultRepository) GetResultPayload(ctx context.Context, id string) ([]byte, error) {
	query, args, err := buildSelectResultPayloadQuery(r.statements(), id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var payload sql.NullString
	err = r.QueryRowContext(ctx, query, args...).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrResultNotFound, id)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "resultRepository.GetResultPayload").
			Str("result_id", id).
			Msg("failed to scan result payload")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	if !payload.Valid {
		return nil, ErrPayloadMissing
	}

	return []byte(payload.String), nil
}
