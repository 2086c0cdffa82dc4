package queue

import "context"

//go:generate mockgen -destination=mocks/mock_queue.go -package=mocks movie-api/internal/queue Queue

// Queue buffers image deletion jobs for the processor.
type Queue interface {
	Enqueue(job ImageDeleteJob) error
	Dequeue(ctx context.Context) (ImageDeleteJob, error)
	Close()
	Len() int
	Capacity() int
}

var _ Queue = (*MemoryQueue)(nil)
