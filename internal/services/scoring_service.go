package services

import (
	"errors"
	"sort"

	"github.com/studiokit/crewboard/internal/events"
	"github.com/studiokit/crewboard/internal/models"
	"github.com/studiokit/crewboard/internal/repositories"
	"github.com/studiokit/crewboard/pkg/metrics"
)

// RankingEntry is one row of a project's leaderboard
type RankingEntry struct {
	Position       int                   `json:"position"`
	UserID         string                `json:"user_id"`
	UserName       string                `json:"user_name"`
	Breakdown      models.ScoreBreakdown `json:"breakdown"`
	Difficulty     models.Difficulty     `json:"difficulty"`
	Value          int                   `json:"value"`
	HasEvaluations bool                  `json:"has_evaluations"`
}

type ScoringService struct {
	evaluationRepo *repositories.EvaluationRepository
	scoreRepo      *repositories.ScoreRepository
	userRepo       *repositories.UserRepository
	hub            *events.Hub
}

func NewScoringService(
	evaluationRepo *repositories.EvaluationRepository,
	scoreRepo *repositories.ScoreRepository,
	userRepo *repositories.UserRepository,
	hub *events.Hub,
) *ScoringService {
	return &ScoringService{
		evaluationRepo: evaluationRepo,
		scoreRepo:      scoreRepo,
		userRepo:       userRepo,
		hub:            hub,
	}
}

// Recompute deterministically rebuilds the score for one
// (project, user) pair from the current ledger contents and upserts it
// into the score table. Callers that pair it with a ledger replace must
// serialize both steps per key; EvaluationService.SaveEvaluation does.
func (s *ScoringService) Recompute(projectID, userID string, difficulty models.Difficulty) (*models.Score, error) {
	if projectID == "" || userID == "" {
		return nil, errors.New("project ID and user ID are required")
	}
	if !difficulty.IsValid() {
		return nil, errors.New("difficulty must be one of 1, 2, 3, 5")
	}

	records, err := s.evaluationRepo.ListByProjectAndUser(projectID, userID)
	if err != nil {
		return nil, err
	}

	score := models.NewScore(projectID, userID, difficulty)
	score.Compute(records)

	if err := s.scoreRepo.Upsert(score); err != nil {
		return nil, err
	}

	metrics.ScoresRecomputed.Inc()
	s.hub.Publish(events.Event{
		Topic:     events.TopicScoreUpdated,
		ProjectID: projectID,
		UserID:    userID,
	})

	return score, nil
}

// GetScore retrieves the cached score for a pair, or nil when the pair
// has never been evaluated
func (s *ScoringService) GetScore(projectID, userID string) (*models.Score, error) {
	return s.scoreRepo.FindByProjectAndUser(projectID, userID)
}

// GetProjectScores retrieves all score rows for a project, unordered
func (s *ScoringService) GetProjectScores(projectID string) ([]*models.Score, error) {
	return s.scoreRepo.ListByProject(projectID)
}

// Rankings builds the project leaderboard: descending by score value,
// ties broken by user ID ascending so the order is deterministic.
// Display names come from the user table; a dangling user ID falls back
// to the raw ID.
func (s *ScoringService) Rankings(projectID string) ([]*RankingEntry, error) {
	if projectID == "" {
		return nil, errors.New("project ID is required")
	}

	scores, err := s.scoreRepo.ListByProject(projectID)
	if err != nil {
		return nil, err
	}

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Value != scores[j].Value {
			return scores[i].Value > scores[j].Value
		}
		return scores[i].UserID < scores[j].UserID
	})

	entries := make([]*RankingEntry, 0, len(scores))
	for i, score := range scores {
		name := score.UserID
		if user, err := s.userRepo.GetByID(score.UserID); err == nil {
			name = user.DisplayName()
		}

		entries = append(entries, &RankingEntry{
			Position:       i + 1,
			UserID:         score.UserID,
			UserName:       name,
			Breakdown:      score.Breakdown,
			Difficulty:     score.Difficulty,
			Value:          score.Value,
			HasEvaluations: score.HasEvaluations,
		})
	}

	return entries, nil
}
