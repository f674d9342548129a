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

type jobRepository struct {
	*DB
}

func NewJobRepository(db *DB) JobRepository {
	return &jobRepository{DB: db}
}

func (r *jobRepository) CreateJob(ctx context.Context, job models.Job, results []models.ExecutionResultRef) error {
	log := logger.FromContext(ctx).With().
		Str("func", "jobRepository.CreateJob").
		Str("job_id", job.Ref.ID).
		Logger()

	backendConfig, err := models.MarshalBackendConfig(job.Ref.BackendConfig)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}

	jobQuery, jobArgs, err := buildInsertJobQuery(r.statements(), job, string(backendConfig))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	resultsQuery, resultsArgs, err := buildInsertResultsQuery(r.statements(), results)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, jobQuery, jobArgs...); err != nil {
		log.Err(err).Msg("failed to insert job")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.classify(err))
	}
	if _, err = tx.ExecContext(ctx, resultsQuery, resultsArgs...); err != nil {
		log.Err(err).Int("results", len(results)).Msg("failed to insert result rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.classify(err))
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *jobRepository) GetJob(ctx context.Context, id string) (models.Job, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectJobQuery(r.statements(), id)
	if err != nil {
		return models.Job{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		job           models.Job
		jobType       string
		backendConfig string
		status        string
	)
	err = r.QueryRowContext(ctx, query, args...).Scan(
		&job.Ref.ID,
		&job.Ref.ProjectID,
		&job.Ref.Name,
		&jobType,
		&backendConfig,
		&status,
		&job.Message,
		&job.Ref.CreatedAt,
		&job.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Job{}, fmt.Errorf("%w: %s", ErrJobNotFound, id)
	}
	if err != nil {
		log.Err(err).
			Str("func", "jobRepository.GetJob").
			Str("job_id", id).
			Msg("failed to scan job row")
		return models.Job{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	job.Ref.JobType = models.JobType(jobType)
	job.Status = models.JobStatus(status)
	if job.Ref.BackendConfig, err = models.UnmarshalBackendConfig([]byte(backendConfig)); err != nil {
		return models.Job{}, fmt.Errorf("%w: %w", ErrDecodingColumn, err)
	}

	results, err := NewResultRepository(r.DB).GetResults(ctx, id)
	if err != nil {
		return models.Job{}, err
	}
	for _, res := range results {
		job.Programs = append(job.Programs, res.ProgramID)
		job.NShots = append(job.NShots, res.NShots)
	}

	return job, nil
}

func (r *jobRepository) UpdateJobStatus(ctx context.Context, id string, status models.JobStatusInfo) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateJobStatusQuery(r.statements(), id, status)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "jobRepository.UpdateJobStatus").
			Str("job_id", id).
			Str("status", string(status.Status)).
			Msg("failed to update job status")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrJobNotFound, id)
	}

	return nil
}

func (r *jobRepository) CompleteJob(ctx context.Context, id string, payloads []ResultPayload, status models.JobStatusInfo) error {
	log := logger.FromContext(ctx).With().
		Str("func", "jobRepository.CompleteJob").
		Str("job_id", id).
		Logger()

	tx, err := r.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, p := range payloads {
		query, args, err := buildUpdateResultPayloadQuery(r.statements(), p)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			log.Err(err).Str("result_id", p.ResultID).Msg("failed to store result payload")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return fmt.Errorf("%w: %s", ErrResultNotFound, p.ResultID)
		}
	}

	query, args, err := buildUpdateJobStatusQuery(r.statements(), id, status)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Msg("failed to update job status")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *jobRepository) ListUnfinishedJobs(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUnfinishedJobsQuery(r.statements())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "jobRepository.ListUnfinishedJobs").
			Msg("failed to select unfinished jobs")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ids, nil
}
