// Package queue removes stored movie images in the background once no movie references them.
package queue

import (
	"context"
	"sync"
)

// ImageDeleteJob names one object key to remove from image storage.
type ImageDeleteJob struct {
	Key        string
	MovieID    string
	RetryCount int
}

// MemoryQueue is a bounded in-process queue of image deletion jobs.
type MemoryQueue struct {
	jobs     chan ImageDeleteJob
	capacity int
	mu       sync.RWMutex
	closed   bool
}

// NewMemoryQueue creates a queue that holds at most capacity pending jobs.
func NewMemoryQueue(capacity int) *MemoryQueue {
	return &MemoryQueue{
		jobs:     make(chan ImageDeleteJob, capacity),
		capacity: capacity,
	}
}

// Enqueue adds a job without blocking. It fails with ErrQueueFull or ErrQueueClosed.
// The read lock is held for the send so Close cannot close the channel underneath it.
func (q *MemoryQueue) Enqueue(job ImageDeleteJob) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return ErrQueueClosed
	}

	select {
	case q.jobs <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

// Dequeue blocks until a job arrives. A closed queue reports ErrQueueClosed once drained.
func (q *MemoryQueue) Dequeue(ctx context.Context) (ImageDeleteJob, error) {
	select {
	case <-ctx.Done():
		return ImageDeleteJob{}, ctx.Err()
	case job, ok := <-q.jobs:
		if !ok {
			return ImageDeleteJob{}, ErrQueueClosed
		}
		return job, nil
	}
}

// Close stops accepting jobs. Jobs already buffered can still be dequeued.
func (q *MemoryQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if !q.closed {
		q.closed = true
		close(q.jobs)
	}
}

// Len returns the number of pending jobs.
func (q *MemoryQueue) Len() int {
	return len(q.jobs)
}

// Capacity returns the queue capacity.
func (q *MemoryQueue) Capacity() int {
	return q.capacity
}
