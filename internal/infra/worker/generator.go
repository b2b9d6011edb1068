// Package worker runs schedule generation jobs on background goroutines.
package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"meeting-scheduler/internal/domain/assignment"
	"meeting-scheduler/internal/pkg/config"
	"meeting-scheduler/internal/pkg/errs"
	"meeting-scheduler/internal/pkg/metrics"
	"meeting-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

const queueSize = 16

// Outcome is what a worker sends back for one job.
type Outcome struct {
	JobID    uuid.UUID
	Result   assignment.Result
	Err      error
	Duration time.Duration
}

type jobItem struct {
	ctx context.Context
	job shared.GenerationJob
	out chan Outcome
}

// Generator is a small worker pool in front of assignment.Generate. Jobs only read
// the copies they carry; committing the result is the caller's business.
type Generator struct {
	workers int
	logger  *slog.Logger

	jobsCh   chan jobItem
	stopCh   chan struct{}
	stoppedC chan struct{}

	running bool
	stopped bool
	mu      sync.RWMutex
}

func NewGenerator(cfg config.Config, logger *slog.Logger) *Generator {
	workers := cfg.Scheduler.Workers
	if workers <= 0 {
		workers = 1
	}
	return &Generator{
		workers:  workers,
		logger:   logger,
		jobsCh:   make(chan jobItem, queueSize),
		stopCh:   make(chan struct{}),
		stoppedC: make(chan struct{}),
	}
}

func (g *Generator) Start(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.running {
		return errors.New("generator already running")
	}
	if g.stopped {
		return errs.ErrGeneratorStopped
	}
	g.running = true

	var wg sync.WaitGroup
	for i := 0; i < g.workers; i++ {
		wg.Add(1)
		go g.work(&wg, i)
	}
	go func() {
		wg.Wait()
		close(g.stoppedC)
	}()

	g.logger.InfoContext(ctx, "generation worker started", slog.Int("workers", g.workers))
	return nil
}

// Stop waits for in-flight jobs until ctx expires. Queued jobs that were not picked up
// are answered with ErrGeneratorStopped.
func (g *Generator) Stop(ctx context.Context) error {
	g.mu.Lock()
	if !g.running {
		g.mu.Unlock()
		return nil
	}
	g.running = false
	g.stopped = true
	close(g.stopCh)
	g.mu.Unlock()

	select {
	case <-g.stoppedC:
	case <-ctx.Done():
		g.logger.WarnContext(ctx, "generation worker shutdown timed out")
		return ctx.Err()
	}

	for {
		select {
		case item := <-g.jobsCh:
			item.out <- Outcome{JobID: item.job.ID, Err: errs.ErrGeneratorStopped}
			metrics.GenerationJobsInFlight.Dec()
		default:
			g.logger.InfoContext(ctx, "generation worker stopped")
			return nil
		}
	}
}

func (g *Generator) IsRunning() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.running
}

// Submit queues a job. The returned channel receives exactly one Outcome.
func (g *Generator) Submit(ctx context.Context, job shared.GenerationJob) (<-chan Outcome, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.running {
		return nil, errs.ErrGeneratorStopped
	}
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}

	out := make(chan Outcome, 1)
	select {
	case g.jobsCh <- jobItem{ctx: ctx, job: job, out: out}:
		metrics.GenerationJobsInFlight.Inc()
		return out, nil
	case <-ctx.Done():
		return nil, errs.Mark(ctx.Err(), errs.ErrGenerationTimedOut)
	}
}

// Generate submits the job and waits for its outcome or for ctx to end.
func (g *Generator) Generate(ctx context.Context, job shared.GenerationJob) (assignment.Result, error) {
	out, err := g.Submit(ctx, job)
	if err != nil {
		return assignment.Result{}, err
	}
	select {
	case outcome := <-out:
		if outcome.Err != nil {
			return assignment.Result{}, outcome.Err
		}
		return outcome.Result, nil
	case <-ctx.Done():
		return assignment.Result{}, errs.Mark(ctx.Err(), errs.ErrGenerationTimedOut)
	}
}

func (g *Generator) work(wg *sync.WaitGroup, id int) {
	defer wg.Done()
	for {
		select {
		case <-g.stopCh:
			return
		case item := <-g.jobsCh:
			item.out <- g.run(item, id)
			metrics.GenerationJobsInFlight.Dec()
		}
	}
}

func (g *Generator) run(item jobItem, worker int) Outcome {
	job := item.job
	if err := item.ctx.Err(); err != nil {
		return Outcome{JobID: job.ID, Err: errs.Mark(err, errs.ErrGenerationTimedOut)}
	}

	logger := g.logger.With(slog.String("job_id", job.ID.String()), slog.Int("worker", worker))
	logger.Debug("generation started", slog.String("strategy", string(job.Options.Strategy)))

	start := time.Now()
	result, err := assignment.Generate(job.Config, job.Suppliers, job.Buyers, job.Options)
	elapsed := time.Since(start)

	if err != nil {
		logger.Warn("generation failed", slog.Any("error", err))
		return Outcome{JobID: job.ID, Err: errs.Mark(err, errs.ErrGenerationFailed), Duration: elapsed}
	}

	metrics.GenerationDuration.WithLabelValues(string(result.Stats.Strategy)).Observe(elapsed.Seconds())
	logger.Info("generation finished",
		slog.Int("placed", result.Stats.Placed),
		slog.Int("unscheduled", result.Stats.Unscheduled),
		slog.Duration("elapsed", elapsed))
	return Outcome{JobID: job.ID, Result: result, Duration: elapsed}
}
