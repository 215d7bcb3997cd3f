package handlers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/studiokit/crewboard/internal/middleware"
	"github.com/studiokit/crewboard/internal/models"
	"github.com/studiokit/crewboard/internal/services"
)

type DashboardHandler struct {
	userService          *services.UserService
	projectService       *services.ProjectService
	projectMemberService *services.ProjectMemberService
}

func NewDashboardHandler(userService *services.UserService, projectService *services.ProjectService, projectMemberService *services.ProjectMemberService) *DashboardHandler {
	return &DashboardHandler{
		userService:          userService,
		projectService:       projectService,
		projectMemberService: projectMemberService,
	}
}

// Dashboard handles the dashboard page: the user's own projects plus
// projects they are assigned to
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	session := middleware.GetSession(c)

	projects, err := h.projectService.GetProjectsByOwnerID(session.UserID)
	if err != nil {
		projects = []*models.Project{}
	}

	// Merge in projects where the user is a team member
	seen := make(map[string]bool, len(projects))
	for _, project := range projects {
		seen[project.ID] = true
	}

	assignments, err := h.projectMemberService.GetUserProjects(session.UserID)
	if err == nil {
		for _, assignment := range assignments {
			if seen[assignment.ProjectID] {
				continue
			}
			project, err := h.projectService.GetProjectByID(assignment.ProjectID)
			if err != nil {
				continue
			}
			seen[project.ID] = true
			projects = append(projects, project)
		}
	}

	// Sort projects alphabetically by name
	sort.Slice(projects, func(i, j int) bool {
		return projects[i].Name < projects[j].Name
	})

	data := gin.H{
		"Title":    "Dashboard",
		"User":     session,
		"Projects": projects,
	}

	c.HTML(http.StatusOK, "dashboard", data)
}
