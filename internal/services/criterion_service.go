package services

import (
	"errors"

	"github.com/studiokit/crewboard/internal/models"
	"github.com/studiokit/crewboard/internal/repositories"
	"github.com/studiokit/crewboard/pkg/logger"
)

type CriterionService struct {
	criterionRepo *repositories.CriterionRepository
}

func NewCriterionService(criterionRepo *repositories.CriterionRepository) *CriterionService {
	return &CriterionService{
		criterionRepo: criterionRepo,
	}
}

// Seed populates the catalog with the built-in criteria. Without force
// a non-empty catalog is left untouched, so calling Seed on every
// startup is idempotent. With force the catalog is rebuilt from
// scratch.
func (s *CriterionService) Seed(force bool) error {
	count, err := s.criterionRepo.Count()
	if err != nil {
		return err
	}

	if count > 0 && !force {
		return nil
	}

	if count > 0 {
		if err := s.criterionRepo.DeleteAll(); err != nil {
			return err
		}
	}

	for _, criterion := range models.DefaultCriteria() {
		if err := s.criterionRepo.Create(criterion); err != nil {
			return err
		}
	}

	logger.Infof("Seeded criteria catalog with %d entries", len(models.DefaultCriteria()))
	return nil
}

// GetCriterionByID retrieves a single criterion
func (s *CriterionService) GetCriterionByID(id string) (*models.Criterion, error) {
	if id == "" {
		return nil, errors.New("criterion ID is required")
	}

	return s.criterionRepo.GetByID(id)
}

// ListAll retrieves the full catalog in seed order
func (s *CriterionService) ListAll() ([]*models.Criterion, error) {
	return s.criterionRepo.ListAll()
}

// ListByKind filters the catalog down to one kind. The split is purely
// for display grouping; scoring reads the embedded copies instead.
func (s *CriterionService) ListByKind(kind models.CriterionKind) ([]*models.Criterion, error) {
	if !kind.IsValid() {
		return nil, errors.New("unknown criterion kind")
	}

	criteria, err := s.criterionRepo.ListAll()
	if err != nil {
		return nil, err
	}

	var filtered []*models.Criterion
	for _, criterion := range criteria {
		if criterion.Kind == kind {
			filtered = append(filtered, criterion)
		}
	}

	return filtered, nil
}
