package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/studiokit/crewboard/internal/middleware"
	"github.com/studiokit/crewboard/internal/models"
	"github.com/studiokit/crewboard/internal/services"
)

type EvaluationHandler struct {
	projectService       *services.ProjectService
	projectMemberService *services.ProjectMemberService
	userService          *services.UserService
	criterionService     *services.CriterionService
	evaluationService    *services.EvaluationService
	scoringService       *services.ScoringService
}

func NewEvaluationHandler(projectService *services.ProjectService, projectMemberService *services.ProjectMemberService,
	userService *services.UserService, criterionService *services.CriterionService,
	evaluationService *services.EvaluationService, scoringService *services.ScoringService) *EvaluationHandler {
	return &EvaluationHandler{
		projectService:       projectService,
		projectMemberService: projectMemberService,
		userService:          userService,
		criterionService:     criterionService,
		evaluationService:    evaluationService,
		scoringService:       scoringService,
	}
}

// EvaluateForm displays the evaluation checkboxes for one team member,
// pre-checked with the currently stored selection
func (h *EvaluationHandler) EvaluateForm(c *gin.Context) {
	session := middleware.GetSession(c)
	projectID := c.Param("id")
	userID := c.Param("user_id")

	project, err := h.projectService.GetProjectByID(projectID)
	if err != nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	member, err := h.userService.GetUserByID(userID)
	if err != nil {
		c.Redirect(http.StatusFound, "/projects/"+projectID)
		return
	}

	positives, err := h.criterionService.ListByKind(models.KindPositive)
	if err != nil {
		positives = []*models.Criterion{}
	}
	warnings, err := h.criterionService.ListByKind(models.KindWarning)
	if err != nil {
		warnings = []*models.Criterion{}
	}

	// Pre-check the stored selection
	checked := make(map[string]bool)
	if evaluations, err := h.evaluationService.GetEvaluations(projectID, userID); err == nil {
		for _, evaluation := range evaluations {
			checked[evaluation.Criterion.ID] = true
		}
	}

	difficulty := models.DifficultyEasy
	if score, err := h.scoringService.GetScore(projectID, userID); err == nil && score != nil {
		difficulty = score.Difficulty
	}

	data := gin.H{
		"Title":        "Evaluate " + member.DisplayName(),
		"User":         session,
		"Project":      project,
		"Member":       member,
		"Positives":    positives,
		"Warnings":     warnings,
		"Checked":      checked,
		"Difficulty":   difficulty,
		"Difficulties": models.Difficulties(),
	}

	c.HTML(http.StatusOK, "projects_evaluate", data)
}

// SaveEvaluation replaces the member's evaluation set with the submitted
// checkboxes and recomputes the score
func (h *EvaluationHandler) SaveEvaluation(c *gin.Context) {
	projectID := c.Param("id")
	userID := c.Param("user_id")

	multiplier, err := strconv.Atoi(c.PostForm("difficulty"))
	if err != nil {
		c.Redirect(http.StatusFound, "/projects/"+projectID+"/evaluate/"+userID+"?error=invalid_difficulty")
		return
	}

	criterionIDs := c.PostFormArray("criteria")

	if _, err := h.evaluationService.SaveEvaluation(projectID, userID, criterionIDs, models.Difficulty(multiplier)); err != nil {
		c.Redirect(http.StatusFound, "/projects/"+projectID+"/evaluate/"+userID+"?error="+err.Error())
		return
	}

	c.Redirect(http.StatusFound, "/projects/"+projectID+"/rankings")
}

// Rankings displays the project leaderboard
func (h *EvaluationHandler) Rankings(c *gin.Context) {
	session := middleware.GetSession(c)
	projectID := c.Param("id")

	project, err := h.projectService.GetProjectByID(projectID)
	if err != nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	rankings, err := h.scoringService.Rankings(projectID)
	if err != nil {
		rankings = []*services.RankingEntry{}
	}

	data := gin.H{
		"Title":    project.Name + " - Rankings",
		"User":     session,
		"Project":  project,
		"Rankings": rankings,
	}

	c.HTML(http.StatusOK, "projects_rankings", data)
}
