package queue

import "errors"

var (
	// ErrQueueFull is returned when an export job cannot be accepted
	// because the queue is at capacity.
	ErrQueueFull = errors.New("export queue is full")
	// ErrQueueClosed is returned when enqueueing after shutdown has begun.
	ErrQueueClosed = errors.New("export queue is closed")
)
