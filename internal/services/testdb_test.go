package services

import (
	"database/sql"
	"os"
	"path/filepath"
	"sort"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/studiokit/crewboard/internal/events"
	"github.com/studiokit/crewboard/internal/repositories"
)

// newTestDB opens an in-memory SQLite database with the full schema
// applied from the migration scripts
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	scripts, err := filepath.Glob(filepath.Join("..", "..", "migrations", "*.sql"))
	require.NoError(t, err)
	require.NotEmpty(t, scripts)
	sort.Strings(scripts)

	for _, script := range scripts {
		content, err := os.ReadFile(script)
		require.NoError(t, err)
		_, err = db.Exec(string(content))
		require.NoError(t, err, "failed to apply %s", script)
	}

	return db
}

// scoringStack bundles the scoring core wired against one test database
type scoringStack struct {
	criterionRepo *repositories.CriterionRepository
	userRepo      *repositories.UserRepository
	hub           *events.Hub
	criteria      *CriterionService
	evaluations   *EvaluationService
	scoring       *ScoringService
}

func newScoringStack(t *testing.T) *scoringStack {
	t.Helper()

	db := newTestDB(t)
	criterionRepo := repositories.NewCriterionRepository(db)
	evaluationRepo := repositories.NewEvaluationRepository(db)
	scoreRepo := repositories.NewScoreRepository(db)
	userRepo := repositories.NewUserRepository(db)
	hub := events.NewHub()

	scoring := NewScoringService(evaluationRepo, scoreRepo, userRepo, hub)
	return &scoringStack{
		criterionRepo: criterionRepo,
		userRepo:      userRepo,
		hub:           hub,
		criteria:      NewCriterionService(criterionRepo),
		evaluations:   NewEvaluationService(evaluationRepo, criterionRepo, scoring, hub),
		scoring:       scoring,
	}
}
