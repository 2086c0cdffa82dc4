package queue

import (
	"context"
	"errors"
	"sync"
	"time"

	"movie-api/internal/metrics"
	"movie-api/pkg/logger"

	"go.uber.org/zap"
)

const (
	// MaxRetries is the number of attempts made for one key before it is given up.
	MaxRetries = 3
	// RetryDelay is the base delay between attempts, doubled after each failure.
	RetryDelay = 2 * time.Second
	// DeleteTimeout bounds a single storage call.
	DeleteTimeout = 30 * time.Second
)

// ObjectDeleter removes an object from image storage.
type ObjectDeleter interface {
	DeleteObject(ctx context.Context, key string) error
}

// Processor drains the queue with a fixed pool of workers.
type Processor struct {
	queue        *MemoryQueue
	deleter      ObjectDeleter
	workerCount  int
	retryDelay   time.Duration
	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

// NewProcessor creates a processor that deletes queued keys through deleter.
func NewProcessor(queue *MemoryQueue, deleter ObjectDeleter, workerCount int) *Processor {
	if workerCount < 1 {
		workerCount = 1
	}
	return &Processor{
		queue:       queue,
		deleter:     deleter,
		workerCount: workerCount,
		retryDelay:  RetryDelay,
		shutdownCh:  make(chan struct{}),
	}
}

// Start launches the workers. ctx also carries the logger used by them.
func (p *Processor) Start(ctx context.Context) {
	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
	logger.Log(ctx).Info(ctx, "image cleanup processor started", zap.Int("workers", p.workerCount))
}

// Stop closes the queue and waits for the workers to drain it.
func (p *Processor) Stop() {
	p.shutdownOnce.Do(func() {
		close(p.shutdownCh)
		p.queue.Close()
	})
	p.wg.Wait()
}

func (p *Processor) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	for {
		job, err := p.queue.Dequeue(ctx)
		if err != nil {
			if errors.Is(err, ErrQueueClosed) || ctx.Err() != nil {
				logger.Log(ctx).Debug(ctx, "image cleanup worker stopped", zap.Int("worker", id))
				return
			}
			continue
		}
		p.processJob(ctx, job)
	}
}

func (p *Processor) processJob(ctx context.Context, job ImageDeleteJob) {
	log := logger.Log(ctx).With(zap.String("key", job.Key), zap.String("movie_id", job.MovieID))

	deleteCtx, cancel := context.WithTimeout(ctx, DeleteTimeout)
	defer cancel()

	if err := p.deleter.DeleteObject(deleteCtx, job.Key); err != nil {
		log.Warn(ctx, "failed to delete movie image",
			zap.Int("attempt", job.RetryCount+1), zap.Error(err))
		p.handleFailure(ctx, log, job)
		return
	}

	metrics.RecordImageCleanup(metrics.CleanupDeleted)
	log.Info(ctx, "deleted unreferenced movie image")
}

func (p *Processor) handleFailure(ctx context.Context, log *logger.Logger, job ImageDeleteJob) {
	job.RetryCount++

	if job.RetryCount >= MaxRetries {
		metrics.RecordImageCleanup(metrics.CleanupAbandoned)
		log.Error(ctx, "giving up on movie image, object left in storage", zap.Int("attempts", job.RetryCount))
		return
	}

	delay := p.retryDelay * time.Duration(1<<uint(job.RetryCount-1))
	metrics.RecordImageCleanup(metrics.CleanupRetried)

	// Waits on shutdownCh rather than ctx so Stop does not strand the timer.
	go func() {
		select {
		case <-p.shutdownCh:
			metrics.RecordImageCleanup(metrics.CleanupAbandoned)
			log.Warn(ctx, "shutdown before retry, object left in storage")
		case <-time.After(delay):
			if err := p.queue.Enqueue(job); err != nil {
				metrics.RecordImageCleanup(metrics.CleanupAbandoned)
				log.Warn(ctx, "failed to requeue movie image", zap.Error(err))
			}
		}
	}()
}
