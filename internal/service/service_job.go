// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/MKhiriev/go-qnexus/internal/config"
	"github.com/MKhiriev/go-qnexus/internal/emulator"
	"github.com/MKhiriev/go-qnexus/internal/hugr"
	"github.com/MKhiriev/go-qnexus/internal/logger"
	"github.com/MKhiriev/go-qnexus/internal/store"
	"github.com/MKhiriev/go-qnexus/internal/utils"
	"github.com/MKhiriev/go-qnexus/models"
)

// jobService stores submitted jobs, hands them to the queue and executes
// them on the emulator selected by their backend config.
type jobService struct {
	projectRepository store.ProjectRepository
	programRepository store.ProgramRepository
	jobRepository     store.JobRepository
	resultRepository  store.ResultRepository
	artifactStorage   store.ArtifactStorage

	queue JobQueue
	ids   utils.IDGenerator

	// executionDelay is slept between status transitions so that pollers can
	// observe QUEUED and RUNNING.
	executionDelay time.Duration
	samplerMode    emulator.Mode
	samplerSeed    uint64

	logger *logger.Logger
}

// NewJobService returns the job service together with the executor view of
// the same instance used by the worker pool.
func NewJobService(storages *store.Storages, queue JobQueue, ids utils.IDGenerator, cfg config.StructuredConfig, logger *logger.Logger) (JobService, JobExecutor) {
	svc := &jobService{
		projectRepository: storages.ProjectRepository,
		programRepository: storages.ProgramRepository,
		jobRepository:     storages.JobRepository,
		resultRepository:  storages.ResultRepository,
		artifactStorage:   storages.ArtifactStorage,
		queue:             queue,
		ids:               ids,
		executionDelay:    cfg.Workers.ExecutionDelay,
		samplerMode:       emulator.Mode(cfg.Emulator.Mode),
		samplerSeed:       cfg.Emulator.Seed,
		logger:            logger,
	}
	return svc, svc
}

func (j *jobService) SubmitJob(ctx context.Context, req models.ExecuteJobRequest) (models.JobRef, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "jobService.SubmitJob").
		Str("project_id", req.ProjectID).
		Logger()

	if _, err := j.projectRepository.GetProject(ctx, req.ProjectID); err != nil {
		return models.JobRef{}, err
	}

	programs, err := j.programRepository.GetPrograms(ctx, req.Programs)
	if err != nil {
		return models.JobRef{}, err
	}
	for _, p := range programs {
		if p.ProjectID != req.ProjectID {
			return models.JobRef{}, fmt.Errorf("%w: %s", ErrProgramNotInProject, p.ID)
		}
	}

	now := time.Now().UTC()
	job := models.Job{
		Ref: models.JobRef{
			ID:            j.ids.Generate(),
			Name:          req.Name,
			ProjectID:     req.ProjectID,
			JobType:       models.JobTypeExecute,
			BackendConfig: req.BackendConfig,
			CreatedAt:     now,
		},
		Programs:  req.Programs,
		NShots:    req.NShots,
		Status:    models.JobStatusSubmitted,
		UpdatedAt: now,
	}

	results := make([]models.ExecutionResultRef, len(req.Programs))
	for i, programID := range req.Programs {
		results[i] = models.ExecutionResultRef{
			ID:        j.ids.Generate(),
			JobID:     job.Ref.ID,
			Index:     i,
			ProgramID: programID,
			ProjectID: req.ProjectID,
			NShots:    req.NShots[i],
		}
	}

	if err = j.jobRepository.CreateJob(ctx, job, results); err != nil {
		return models.JobRef{}, fmt.Errorf("error saving job: %w", err)
	}

	if err = j.queue.Enqueue(ctx, job.Ref.ID); err != nil {
		log.Err(err).Str("job_id", job.Ref.ID).Msg("failed to enqueue job")
		j.fail(context.WithoutCancel(ctx), job.Ref.ID, fmt.Sprintf("job could not be queued: %v", err))
		return job.Ref, nil
	}

	log.Info().
		Str("job_id", job.Ref.ID).
		Str("backend", job.Ref.BackendConfig.BackendType()).
		Int("programs", len(results)).
		Msg("job submitted")

	return job.Ref, nil
}

func (j *jobService) GetJobStatus(ctx context.Context, id string) (models.JobStatusInfo, error) {
	job, err := j.jobRepository.GetJob(ctx, id)
	if err != nil {
		return models.JobStatusInfo{}, err
	}
	return job.StatusInfo(), nil
}

func (j *jobService) GetJobResults(ctx context.Context, id string) ([]models.ExecutionResultRef, error) {
	job, err := j.jobRepository.GetJob(ctx, id)
	if err != nil {
		return nil, err
	}

	switch {
	case !job.Status.IsTerminal():
		return nil, fmt.Errorf("%w: job %s is %s", models.ErrResultNotReady, id, job.Status)
	case job.Status.IsFailure():
		return nil, fmt.Errorf("%w: %s", models.ErrJobFailed, job.Message)
	}

	return j.resultRepository.GetResults(ctx, id)
}

func (j *jobService) PendingJobs(ctx context.Context) ([]string, error) {
	return j.jobRepository.ListUnfinishedJobs(ctx)
}

// ExecuteJob runs every program of the job. A cancelled ctx leaves the job
// in its last non-terminal state so that it is picked up again on restart.
func (j *jobService) ExecuteJob(ctx context.Context, id string) error {
	log := logger.FromContext(ctx).WithJob(id)
	ctx = log.WithContext(ctx)

	job, err := j.jobRepository.GetJob(ctx, id)
	if err != nil {
		return err
	}
	if job.Status.IsTerminal() {
		log.Debug().Str("status", string(job.Status)).Msg("job already finished")
		return nil
	}

	for _, status := range []models.JobStatus{models.JobStatusQueued, models.JobStatusRunning} {
		if err = j.setStatus(ctx, id, status, ""); err != nil {
			return err
		}
		if err = sleep(ctx, j.executionDelay); err != nil {
			return err
		}
	}

	payloads, err := j.run(ctx, job)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.Warn().Err(err).Msg("job failed")
		j.fail(ctx, id, err.Error())
		return nil
	}

	err = j.jobRepository.CompleteJob(ctx, id, payloads, models.JobStatusInfo{
		Status:    models.JobStatusCompleted,
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		log.Err(err).Msg("failed to store job results")
		return fmt.Errorf("error completing job: %w", err)
	}

	log.Info().Int("results", len(payloads)).Msg("job completed")
	return nil
}

// run samples every result of job and returns the raw encodings.
func (j *jobService) run(ctx context.Context, job models.Job) ([]store.ResultPayload, error) {
	sampler, err := emulator.NewSampler(j.samplerMode, jobSeed(j.samplerSeed, job.Ref.ID))
	if err != nil {
		return nil, err
	}

	backend, err := emulator.New(job.Ref.BackendConfig, sampler)
	if err != nil {
		return nil, err
	}

	results, err := j.resultRepository.GetResults(ctx, job.Ref.ID)
	if err != nil {
		return nil, err
	}

	payloads := make([]store.ResultPayload, 0, len(results))
	for _, res := range results {
		prog, err := j.loadProgram(ctx, res.ProgramID)
		if err != nil {
			return nil, fmt.Errorf("program %d: %w", res.Index, err)
		}

		raw, err := backend.Run(ctx, prog, res.NShots)
		if err != nil {
			return nil, err
		}

		encoded, err := json.Marshal(raw)
		if err != nil {
			return nil, fmt.Errorf("error encoding result: %w", err)
		}
		payloads = append(payloads, store.ResultPayload{ResultID: res.ID, Raw: encoded})
	}

	return payloads, nil
}

func (j *jobService) loadProgram(ctx context.Context, programID string) (hugr.Program, error) {
	ref, err := j.programRepository.GetProgram(ctx, programID)
	if err != nil {
		return hugr.Program{}, err
	}

	data, err := j.artifactStorage.Load(ctx, ref.ContentID)
	if err != nil {
		return hugr.Program{}, err
	}

	prog, err := hugr.Inspect(data)
	if err != nil {
		return hugr.Program{}, fmt.Errorf("%w: %w", models.ErrInvalidProgram, err)
	}
	return prog, nil
}

func (j *jobService) setStatus(ctx context.Context, id string, status models.JobStatus, message string) error {
	err := j.jobRepository.UpdateJobStatus(ctx, id, models.JobStatusInfo{
		Status:    status,
		Message:   message,
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("error setting job status %s: %w", status, err)
	}
	return nil
}

// fail marks the job ERROR. A failure to do so is only logged: the job stays
// non-terminal and is retried on restart.
func (j *jobService) fail(ctx context.Context, id, message string) {
	if err := j.setStatus(ctx, id, models.JobStatusError, message); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "jobService.fail").
			Str("job_id", id).
			Msg("failed to mark job as failed")
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// jobSeed mixes the job id into a configured sampler seed so seeded jobs
// draw independent but reproducible sequences. Zero stays zero and selects a
// random seed in the sampler.
func jobSeed(seed uint64, jobID string) uint64 {
	if seed == 0 {
		return 0
	}
	sum := blake2b.Sum256([]byte(jobID))
	if mixed := seed ^ binary.LittleEndian.Uint64(sum[:8]); mixed != 0 {
		return mixed
	}
	return seed
}
