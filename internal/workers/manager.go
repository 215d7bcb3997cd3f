package workers

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/studiokit/crewboard/internal/repositories"
	"github.com/studiokit/crewboard/internal/services"
	"github.com/studiokit/crewboard/pkg/logger"
)

// WorkerManager manages multiple workers of different types
type WorkerManager struct {
	workers       []Worker
	jobRepo       *repositories.JobRepository
	reportService *services.ReportService
	wg            sync.WaitGroup
	ctx           context.Context
	cancel        context.CancelFunc
}

// NewWorkerManager creates a new worker manager
func NewWorkerManager(jobRepo *repositories.JobRepository, reportService *services.ReportService) *WorkerManager {
	ctx, cancel := context.WithCancel(context.Background())
	return &WorkerManager{
		workers:       make([]Worker, 0),
		jobRepo:       jobRepo,
		reportService: reportService,
		ctx:           ctx,
		cancel:        cancel,
	}
}

// StartAll starts all workers based on environment configuration
func (wm *WorkerManager) StartAll() error {
	reportWorkers := wm.getWorkerCount("REPORT_WORKERS", 1)

	logger.Infof("Starting workers - Report: %d", reportWorkers)

	for i := 0; i < reportWorkers; i++ {
		worker := NewReportWorker(fmt.Sprintf("report-%d", i+1), wm.jobRepo, wm.reportService)
		wm.workers = append(wm.workers, worker)
		wm.startWorker(worker)
	}

	logger.Infof("Started %d total workers", len(wm.workers))
	return nil
}

// StopAll gracefully stops all workers
func (wm *WorkerManager) StopAll() error {
	logger.Info("Stopping all workers...")

	// Cancel the context to signal all workers to stop
	wm.cancel()

	// Stop each worker
	for _, worker := range wm.workers {
		if err := worker.Stop(); err != nil {
			logger.Errorf("Error stopping worker %s: %v", worker.GetWorkerID(), err)
		}
	}

	// Wait for all workers to finish
	wm.wg.Wait()

	logger.Info("All workers stopped")
	return nil
}

// getWorkerCount reads worker count from environment variable with fallback
func (wm *WorkerManager) getWorkerCount(envVar string, defaultValue int) int {
	if value := os.Getenv(envVar); value != "" {
		if count, err := strconv.Atoi(value); err == nil && count > 0 {
			return count
		}
		logger.Warnf("Invalid value for %s, using default: %d", envVar, defaultValue)
	}
	return defaultValue
}

// startWorker starts a single worker in a goroutine
func (wm *WorkerManager) startWorker(worker Worker) {
	wm.wg.Add(1)
	go func() {
		defer wm.wg.Done()
		if err := worker.Start(wm.ctx); err != nil && err != context.Canceled {
			logger.Errorf("Worker %s stopped with error: %v", worker.GetWorkerID(), err)
		}
	}()
}

// GetWorkerStatus returns the status of all workers
func (wm *WorkerManager) GetWorkerStatus() map[string]bool {
	status := make(map[string]bool)
	for _, worker := range wm.workers {
		if reportWorker, ok := worker.(*ReportWorker); ok {
			status[worker.GetWorkerID()] = reportWorker.IsRunning()
		} else {
			status[worker.GetWorkerID()] = false
		}
	}
	return status
}
