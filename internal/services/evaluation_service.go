package services

import (
	"errors"
	"fmt"
	"sync"

	"github.com/studiokit/crewboard/internal/events"
	"github.com/studiokit/crewboard/internal/models"
	"github.com/studiokit/crewboard/internal/repositories"
	"github.com/studiokit/crewboard/pkg/metrics"
)

type EvaluationService struct {
	evaluationRepo *repositories.EvaluationRepository
	criterionRepo  *repositories.CriterionRepository
	scoringService *ScoringService
	hub            *events.Hub

	// One mutex per (project, user) key. Serializes the
	// replace-then-recompute pair so no reader can observe a replaced
	// ledger with a stale score.
	locks sync.Map
}

func NewEvaluationService(
	evaluationRepo *repositories.EvaluationRepository,
	criterionRepo *repositories.CriterionRepository,
	scoringService *ScoringService,
	hub *events.Hub,
) *EvaluationService {
	return &EvaluationService{
		evaluationRepo: evaluationRepo,
		criterionRepo:  criterionRepo,
		scoringService: scoringService,
		hub:            hub,
	}
}

func (s *EvaluationService) keyLock(projectID, userID string) *sync.Mutex {
	key := projectID + "/" + userID
	lock, _ := s.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// AddEvaluation appends a single record to the ledger and notifies
// subscribers. No duplicate detection and no criterion existence check;
// the embedded copy is taken as given.
func (s *EvaluationService) AddEvaluation(evaluation *models.Evaluation) error {
	if err := evaluation.Validate(); err != nil {
		return err
	}

	if err := s.evaluationRepo.Create(evaluation); err != nil {
		return err
	}

	s.hub.Publish(events.Event{
		Topic:     events.TopicEvaluationUpdated,
		ProjectID: evaluation.ProjectID,
		UserID:    evaluation.UserID,
	})

	return nil
}

// SaveEvaluation is the single mutation path used by the evaluation
// form: it resolves the checked criterion IDs against the catalog,
// replaces the ledger records for the (project, user) pair with the new
// batch, and recomputes the cached score with the chosen difficulty.
// Saving an empty selection is valid and zeroes the score.
func (s *EvaluationService) SaveEvaluation(projectID, userID string, criterionIDs []string, difficulty models.Difficulty) (*models.Score, error) {
	if projectID == "" || userID == "" {
		return nil, errors.New("project ID and user ID are required")
	}
	if !difficulty.IsValid() {
		return nil, errors.New("difficulty must be one of 1, 2, 3, 5")
	}

	evaluations := make([]*models.Evaluation, 0, len(criterionIDs))
	for _, criterionID := range criterionIDs {
		criterion, err := s.criterionRepo.GetByID(criterionID)
		if err != nil {
			return nil, fmt.Errorf("unknown criterion %s: %w", criterionID, err)
		}
		evaluations = append(evaluations, models.NewEvaluation(projectID, userID, criterion))
	}

	lock := s.keyLock(projectID, userID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.evaluationRepo.ReplaceForProjectUser(projectID, userID, evaluations); err != nil {
		return nil, err
	}

	s.hub.Publish(events.Event{
		Topic:     events.TopicEvaluationUpdated,
		ProjectID: projectID,
		UserID:    userID,
	})

	score, err := s.scoringService.Recompute(projectID, userID, difficulty)
	if err != nil {
		return nil, err
	}

	metrics.EvaluationsSaved.Inc()
	return score, nil
}

// GetEvaluations retrieves the ledger records for one (project, user)
// pair. A never-evaluated pair yields an empty slice.
func (s *EvaluationService) GetEvaluations(projectID, userID string) ([]*models.Evaluation, error) {
	if projectID == "" || userID == "" {
		return nil, errors.New("project ID and user ID are required")
	}

	return s.evaluationRepo.ListByProjectAndUser(projectID, userID)
}

// GetProjectEvaluations retrieves all ledger records for a project
func (s *EvaluationService) GetProjectEvaluations(projectID string) ([]*models.Evaluation, error) {
	if projectID == "" {
		return nil, errors.New("project ID is required")
	}

	return s.evaluationRepo.ListByProject(projectID)
}

// GetAllEvaluations retrieves the full ledger
func (s *EvaluationService) GetAllEvaluations() ([]*models.Evaluation, error) {
	return s.evaluationRepo.ListAll()
}
