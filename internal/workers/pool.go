// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-qnexus/internal/config"
	"github.com/MKhiriev/go-qnexus/internal/logger"
	"github.com/MKhiriev/go-qnexus/internal/store"
)

// ErrPoolStopped is returned by Enqueue after the pool has shut down.
var ErrPoolStopped = errors.New("job pool is stopped")

const maxAttempts = 3

// JobPool is a buffered queue of job ids drained by a fixed number of
// runners. A job id is held at most once between Enqueue and the end of its
// execution.
type JobPool struct {
	queue     chan string
	size      int
	retryWait time.Duration

	mu       sync.Mutex
	inFlight map[string]int // job id -> attempts so far
	stopped  chan struct{}
	stopOnce sync.Once

	logger *logger.Logger
}

func NewJobPool(cfg config.Workers, logger *logger.Logger) *JobPool {
	size := cfg.PoolSize
	if size <= 0 {
		size = 1
	}
	queueSize := cfg.QueueSize
	if queueSize < 0 {
		queueSize = 0
	}

	return &JobPool{
		queue:     make(chan string, queueSize),
		size:      size,
		retryWait: cfg.PollInterval,
		inFlight:  make(map[string]int),
		stopped:   make(chan struct{}),
		logger:    logger,
	}
}

// Enqueue schedules a job. It blocks while the queue is full, until ctx is
// done. Enqueueing a job that is already pending is a no-op.
func (p *JobPool) Enqueue(ctx context.Context, jobID string) error {
	p.mu.Lock()
	select {
	case <-p.stopped:
		p.mu.Unlock()
		return ErrPoolStopped
	default:
	}
	if _, ok := p.inFlight[jobID]; ok {
		p.mu.Unlock()
		return nil
	}
	p.inFlight[jobID] = 0
	p.mu.Unlock()

	select {
	case p.queue <- jobID:
		return nil
	case <-ctx.Done():
		p.release(jobID)
		return ctx.Err()
	case <-p.stopped:
		p.release(jobID)
		return ErrPoolStopped
	}
}

// Runner binds the pool to exec. The returned worker re-enqueues jobs left
// unfinished by a previous run and then executes queued jobs until ctx is
// cancelled.
func (p *JobPool) Runner(exec Executor) Worker {
	return &poolRunner{pool: p, exec: exec}
}

// Pending returns the number of jobs queued or running.
func (p *JobPool) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.inFlight)
}

func (p *JobPool) release(jobID string) {
	p.mu.Lock()
	delete(p.inFlight, jobID)
	p.mu.Unlock()
}

func (p *JobPool) stop() {
	p.stopOnce.Do(func() { close(p.stopped) })
}

type poolRunner struct {
	pool *JobPool
	exec Executor
}

func (r *poolRunner) Run(ctx context.Context) {
	p := r.pool
	ctx = p.logger.WithContext(ctx)
	defer p.stop()

	var wg sync.WaitGroup
	for i := range p.size {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.loop(ctx, i)
		}()
	}

	r.resume(ctx)

	p.logger.Info().
		Str("func", "poolRunner.Run").
		Int("runners", p.size).
		Msg("job pool started")

	wg.Wait()

	p.logger.Info().Str("func", "poolRunner.Run").Msg("job pool stopped")
}

// resume re-enqueues jobs that a previous run left unfinished.
func (r *poolRunner) resume(ctx context.Context) {
	ids, err := r.exec.PendingJobs(ctx)
	if err != nil {
		r.pool.logger.Err(err).Str("func", "poolRunner.resume").Msg("failed to list unfinished jobs")
		return
	}

	for _, id := range ids {
		if err = r.pool.Enqueue(ctx, id); err != nil {
			return
		}
	}
	if len(ids) > 0 {
		r.pool.logger.Info().Str("func", "poolRunner.resume").Int("jobs", len(ids)).Msg("resumed unfinished jobs")
	}
}

func (r *poolRunner) loop(ctx context.Context, runner int) {
	for {
		select {
		case <-ctx.Done():
			return
		case id := <-r.pool.queue:
			r.execute(ctx, runner, id)
		}
	}
}

func (r *poolRunner) execute(ctx context.Context, runner int, id string) {
	p := r.pool
	log := p.logger.WithJob(id)

	err := r.exec.ExecuteJob(ctx, id)
	if err == nil || ctx.Err() != nil {
		p.release(id)
		return
	}

	p.mu.Lock()
	p.inFlight[id]++
	attempts := p.inFlight[id]
	p.mu.Unlock()

	if !store.IsRetryable(err) || attempts >= maxAttempts {
		log.Err(err).Int("runner", runner).Int("attempts", attempts).Msg("job execution failed")
		p.release(id)
		return
	}

	log.Warn().Err(err).Int("attempts", attempts).Msg("transient failure, retrying job")
	go func() {
		t := time.NewTimer(p.retryWait)
		defer t.Stop()

		select {
		case <-ctx.Done():
			p.release(id)
		case <-t.C:
			select {
			case p.queue <- id:
			case <-ctx.Done():
				p.release(id)
			}
		}
	}()
}
