package queue

import "errors"

var (
	// ErrQueueFull is returned when no more cleanup jobs fit in the buffer.
	ErrQueueFull = errors.New("cleanup queue is full")
	// ErrQueueClosed is returned once the queue has been shut down.
	ErrQueueClosed = errors.New("cleanup queue is closed")
)
