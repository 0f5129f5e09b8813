package queue

import (
	"context"
	"log"
	"sync"
	"time"

	"wastetrack/internal/export"
	"wastetrack/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// MaxRetries is the maximum number of automatic retries for failed exports.
	MaxRetries = 3
	// RetryDelay is the base delay between retries (exponential backoff).
	RetryDelay = 5 * time.Second
	// StatusUpdateTimeout is the timeout for status updates during error handling.
	StatusUpdateTimeout = 5 * time.Second
)

// ReportUpdater defines the interface for recording export results.
type ReportUpdater interface {
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.ReportStatus) error
	MarkReady(ctx context.Context, id primitive.ObjectID, fileKey string, entryCount int) error
}

// Processor processes report export jobs from the queue.
type Processor struct {
	queue        *MemoryQueue
	exporter     export.Exporter
	updater      ReportUpdater
	workerCount  int
	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

// NewProcessor creates a new export job processor.
func NewProcessor(queue *MemoryQueue, exporter export.Exporter, updater ReportUpdater, workerCount int) *Processor {
	return &Processor{
		queue:       queue,
		exporter:    exporter,
		updater:     updater,
		workerCount: workerCount,
		shutdownCh:  make(chan struct{}),
	}
}

// Start begins processing jobs with the configured number of workers.
func (p *Processor) Start(ctx context.Context) {
	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
	log.Printf("Report processor started with %d workers", p.workerCount)
}

// Stop gracefully stops the processor, waiting for workers to finish.
func (p *Processor) Stop() {
	p.shutdownOnce.Do(func() {
		close(p.shutdownCh)
		p.queue.Close()
	})
	p.wg.Wait()
	log.Println("Report processor stopped")
}

func (p *Processor) worker(ctx context.Context, id int) {
	defer p.wg.Done()
	log.Printf("Worker %d started", id)

	for {
		job, err := p.queue.Dequeue(ctx)
		if err != nil {
			if err == ErrQueueClosed || err == context.Canceled {
				log.Printf("Worker %d shutting down", id)
				return
			}
			continue
		}
		p.processJob(ctx, job)
	}
}

func (p *Processor) processJob(ctx context.Context, job ExportJob) {
	log.Printf("Processing export job for report %s (attempt %d)", job.ReportID.Hex(), job.RetryCount+1)

	if err := p.updater.UpdateStatus(ctx, job.ReportID, models.ReportProcessing); err != nil {
		log.Printf("Failed to mark report %s as processing: %v", job.ReportID.Hex(), err)
		p.handleFailure(ctx, job)
		return
	}

	fileKey, entryCount, err := p.exporter.Export(ctx, job.TeamID, job.ReportID)
	if err != nil {
		log.Printf("Export failed for report %s: %v", job.ReportID.Hex(), err)
		p.handleFailure(ctx, job)
		return
	}

	if err := p.updater.MarkReady(ctx, job.ReportID, fileKey, entryCount); err != nil {
		log.Printf("Failed to mark report %s as ready: %v", job.ReportID.Hex(), err)
		p.handleFailure(ctx, job)
		return
	}

	log.Printf("Export completed for report %s (%d entries)", job.ReportID.Hex(), entryCount)
}

func (p *Processor) handleFailure(ctx context.Context, job ExportJob) {
	job.RetryCount++

	if job.RetryCount >= MaxRetries {
		// Max retries reached, mark as failed
		log.Printf("Max retries reached for report %s, marking as failed", job.ReportID.Hex())
		if err := p.updater.UpdateStatus(ctx, job.ReportID, models.ReportFailed); err != nil {
			log.Printf("Failed to update status to failed for report %s: %v", job.ReportID.Hex(), err)
		}
		return
	}

	// Calculate exponential backoff delay
	delay := RetryDelay * time.Duration(1<<uint(job.RetryCount-1))
	log.Printf("Retrying report %s in %v (attempt %d/%d)", job.ReportID.Hex(), delay, job.RetryCount+1, MaxRetries)

	// Schedule retry with delay. Uses shutdownCh instead of ctx to allow
	// in-flight retries to complete during graceful shutdown.
	go func() {
		select {
		case <-p.shutdownCh:
			// Shutdown initiated - mark as failed since we can't retry
			log.Printf("Shutdown during retry delay for report %s, marking as failed", job.ReportID.Hex())
			updateCtx, cancel := context.WithTimeout(context.Background(), StatusUpdateTimeout)
			defer cancel()
			if updateErr := p.updater.UpdateStatus(updateCtx, job.ReportID, models.ReportFailed); updateErr != nil {
				log.Printf("Failed to update status to failed: %v", updateErr)
			}
			return
		case <-time.After(delay):
			if err := p.queue.Enqueue(job); err != nil {
				log.Printf("Failed to re-enqueue job for report %s: %v", job.ReportID.Hex(), err)
				// Mark as failed if we can't re-enqueue
				updateCtx, cancel := context.WithTimeout(context.Background(), StatusUpdateTimeout)
				defer cancel()
				if updateErr := p.updater.UpdateStatus(updateCtx, job.ReportID, models.ReportFailed); updateErr != nil {
					log.Printf("Failed to update status to failed: %v", updateErr)
				}
			}
		}
	}()
}
