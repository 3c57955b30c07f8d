// Package worker runs recipe resolutions in the background.
package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/AceRider75/moodfood/internal/core/domain"
	"github.com/AceRider75/moodfood/internal/core/services"
	"github.com/AceRider75/moodfood/internal/logging"
)

var (
	// ErrQueueFull is returned by Submit when no queue slot is free.
	ErrQueueFull = errors.New("worker: queue full")
	// ErrStopped is returned by Submit after Stop.
	ErrStopped = errors.New("worker: pool stopped")
)

// Runner resolves a ticket and publishes it. *services.Session satisfies it.
type Runner interface {
	Run(ctx context.Context, t services.Ticket) (domain.Outcome, bool)
	Abandon(t services.Ticket)
}

// Job is one queued resolution.
type Job struct {
	Ticket services.Ticket
	Log    logrus.FieldLogger
}

// Pool manages background workers for async resolutions.
type Pool struct {
	runner  Runner
	timeout time.Duration
	jobs    chan Job
	wg      sync.WaitGroup

	mu      sync.RWMutex
	stopped bool
}

// NewPool creates a worker pool with the given queue size. timeout bounds
// each resolution; zero means no bound beyond the start context.
func NewPool(runner Runner, queueSize int, timeout time.Duration) *Pool {
	if queueSize < 1 {
		queueSize = 1
	}
	return &Pool{runner: runner, timeout: timeout, jobs: make(chan Job, queueSize)}
}

// Start launches the worker goroutines. ctx is the parent of every job.
func (p *Pool) Start(ctx context.Context, workers int) {
	if workers < 1 {
		workers = 1
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				p.processJob(ctx, job)
			}
		}()
	}
}

// Stop waits for workers to drain the queue after closing it. Safe to call
// more than once.
func (p *Pool) Stop() {
	p.mu.Lock()
	if !p.stopped {
		p.stopped = true
		close(p.jobs)
	}
	p.mu.Unlock()
	p.wg.Wait()
}

// Submit queues a job without blocking. A rejected job's ticket is
// abandoned so the session does not stay loading.
func (p *Pool) Submit(job Job) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.stopped {
		p.runner.Abandon(job.Ticket)
		return ErrStopped
	}
	select {
	case p.jobs <- job:
		return nil
	default:
		p.logger(job).Warn("worker: dropping resolution, queue full")
		p.runner.Abandon(job.Ticket)
		return ErrQueueFull
	}
}

func (p *Pool) processJob(ctx context.Context, job Job) {
	log := p.logger(job)
	ctx = logging.WithLogger(ctx, log)
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	start := time.Now()
	out, published := p.runner.Run(ctx, job.Ticket)
	log.WithFields(logrus.Fields{
		"ok":        out.OK(),
		"published": published,
		"elapsed":   time.Since(start).String(),
	}).Info("worker: resolution finished")
}

func (p *Pool) logger(job Job) logrus.FieldLogger {
	log := job.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	return log.WithField("token", job.Ticket.Token)
}
