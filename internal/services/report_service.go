package services

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/studiokit/crewboard/internal/models"
	"github.com/studiokit/crewboard/internal/repositories"
	"github.com/xuri/excelize/v2"
)

type ReportService struct {
	jobRepo        *repositories.JobRepository
	projectRepo    *repositories.ProjectRepository
	scoringService *ScoringService
	reportsDir     string
}

func NewReportService(
	jobRepo *repositories.JobRepository,
	projectRepo *repositories.ProjectRepository,
	scoringService *ScoringService,
	reportsDir string,
) *ReportService {
	return &ReportService{
		jobRepo:        jobRepo,
		projectRepo:    projectRepo,
		scoringService: scoringService,
		reportsDir:     reportsDir,
	}
}

// CreateRankingReportJob enqueues a background export of a project's
// rankings. The report worker picks it up.
func (s *ReportService) CreateRankingReportJob(projectID string) (*models.Job, error) {
	if projectID == "" {
		return nil, errors.New("project ID is required")
	}

	job := models.NewJob(projectID, models.JobTypeRankingReport)
	if err := s.jobRepo.Create(job); err != nil {
		return nil, err
	}

	return job, nil
}

// GetProjectJobs retrieves all jobs for a project, newest first
func (s *ReportService) GetProjectJobs(projectID string) ([]*models.Job, error) {
	if projectID == "" {
		return nil, errors.New("project ID is required")
	}

	return s.jobRepo.GetByProjectID(projectID)
}

// GenerateRankingReport renders a project's current rankings into an
// .xlsx file under the reports directory and returns the file path.
func (s *ReportService) GenerateRankingReport(projectID string) (string, error) {
	project, err := s.projectRepo.GetByID(projectID)
	if err != nil {
		return "", err
	}

	rankings, err := s.scoringService.Rankings(projectID)
	if err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Rankings"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return "", err
	}

	headers := []string{"Rank", "Member", "Positives", "Warnings", "Net", "Difficulty", "Score", "Evaluated"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return "", err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return "", err
		}
	}

	for row, entry := range rankings {
		values := []interface{}{
			entry.Position,
			entry.UserName,
			entry.Breakdown.Positives,
			entry.Breakdown.Warnings,
			entry.Breakdown.Base(),
			entry.Difficulty.Label(),
			entry.Value,
			entry.HasEvaluations,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return "", err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return "", err
			}
		}
	}

	if err := os.MkdirAll(s.reportsDir, 0o755); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("rankings_%s_%s.xlsx", project.ID, time.Now().Format("20060102_150405"))
	path := filepath.Join(s.reportsDir, filename)
	if err := f.SaveAs(path); err != nil {
		return "", err
	}

	return path, nil
}
