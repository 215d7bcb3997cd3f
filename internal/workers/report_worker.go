package workers

import (
	"context"
	"time"

	"github.com/studiokit/crewboard/internal/models"
	"github.com/studiokit/crewboard/internal/repositories"
	"github.com/studiokit/crewboard/internal/services"
	"github.com/studiokit/crewboard/pkg/logger"
	"github.com/studiokit/crewboard/pkg/metrics"
)

// ReportWorker renders queued ranking report exports
type ReportWorker struct {
	*BaseWorker
	jobRepo       *repositories.JobRepository
	reportService *services.ReportService
}

// NewReportWorker creates a new report worker
func NewReportWorker(workerID string, jobRepo *repositories.JobRepository, reportService *services.ReportService) *ReportWorker {
	return &ReportWorker{
		BaseWorker:    NewBaseWorker(workerID, models.JobTypeRankingReport),
		jobRepo:       jobRepo,
		reportService: reportService,
	}
}

// Start begins the report worker process
func (w *ReportWorker) Start(ctx context.Context) error {
	w.Running = true
	logger.Infof("Report worker %s started", w.WorkerID)

	for {
		select {
		case <-ctx.Done():
			logger.Infof("Report worker %s stopping due to context cancellation", w.WorkerID)
			return ctx.Err()
		case <-w.StopChan:
			logger.Infof("Report worker %s stopping", w.WorkerID)
			return nil
		default:
			job, err := w.jobRepo.GetNextPendingJob(models.JobTypeRankingReport, w.WorkerID)
			if err != nil {
				logger.Errorf("Report worker %s error getting job: %v", w.WorkerID, err)
				time.Sleep(5 * time.Second)
				continue
			}

			if job == nil {
				// No jobs available, sleep and try again
				time.Sleep(2 * time.Second)
				continue
			}

			w.processReportJob(job)
		}
	}
}

// processReportJob renders one ranking report and records the outcome
func (w *ReportWorker) processReportJob(job *models.Job) {
	logger.Infof("Report worker %s processing job %s", w.WorkerID, job.ID)

	path, err := w.reportService.GenerateRankingReport(job.ProjectID)
	if err != nil {
		logger.Errorf("Report worker %s job %s failed: %v", w.WorkerID, job.ID, err)
		job.MarkFailed(err.Error())
		metrics.ReportsFailed.Inc()
	} else {
		job.MarkCompleted(path)
		metrics.ReportsGenerated.Inc()
	}

	if err := w.jobRepo.Update(job); err != nil {
		logger.Errorf("Report worker %s error updating job %s: %v", w.WorkerID, job.ID, err)
	}
}
