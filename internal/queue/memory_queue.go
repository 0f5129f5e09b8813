// Package queue provides job queue functionality for background processing.
package queue

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExportJob represents a job to export a team's waste logs to a CSV report.
type ExportJob struct {
	ReportID   primitive.ObjectID
	TeamID     primitive.ObjectID
	RetryCount int
}

// Queue defines the interface for job queue operations.
type Queue interface {
	// Enqueue adds a job to the queue.
	Enqueue(job ExportJob) error
	// Dequeue removes and returns the next job from the queue.
	Dequeue(ctx context.Context) (ExportJob, error)
	// Close closes the queue.
	Close()
	// Len returns the current number of jobs in the queue.
	Len() int
	// Capacity returns the queue capacity.
	Capacity() int
}

// Ensure MemoryQueue implements Queue interface
var _ Queue = (*MemoryQueue)(nil)

// MemoryQueue is an in-memory job queue for export jobs.
type MemoryQueue struct {
	jobs     chan ExportJob
	capacity int
	mu       sync.RWMutex
	closed   bool
}

// NewMemoryQueue creates a new in-memory queue with the given capacity.
func NewMemoryQueue(capacity int) *MemoryQueue {
	return &MemoryQueue{
		jobs:     make(chan ExportJob, capacity),
		capacity: capacity,
	}
}

// Enqueue adds a job to the queue. Returns an error if the queue is full or
// closed. The lock is held across the send so Close cannot race the channel.
func (q *MemoryQueue) Enqueue(job ExportJob) error {
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

// Dequeue returns the next job from the queue, blocking until one is
// available, the context is cancelled, or the queue is closed.
func (q *MemoryQueue) Dequeue(ctx context.Context) (ExportJob, error) {
	select {
	case <-ctx.Done():
		return ExportJob{}, ctx.Err()
	case job, ok := <-q.jobs:
		if !ok {
			return ExportJob{}, ErrQueueClosed
		}
		return job, nil
	}
}

// Close closes the queue. No more jobs can be enqueued after closing.
func (q *MemoryQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if !q.closed {
		q.closed = true
		close(q.jobs)
	}
}

// Reset resets the queue to a fresh state. This is primarily for testing.
func (q *MemoryQueue) Reset() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = false
	q.jobs = make(chan ExportJob, q.capacity)
}

// Len returns the current number of jobs in the queue.
func (q *MemoryQueue) Len() int {
	return len(q.jobs)
}

// Capacity returns the queue capacity.
func (q *MemoryQueue) Capacity() int {
	return q.capacity
}
