package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/studiokit/crewboard/internal/middleware"
	"github.com/studiokit/crewboard/internal/models"
	"github.com/studiokit/crewboard/internal/services"
)

type ProjectHandler struct {
	projectService       *services.ProjectService
	clientService        *services.ClientService
	userService          *services.UserService
	projectMemberService *services.ProjectMemberService
	reportService        *services.ReportService
}

func NewProjectHandler(projectService *services.ProjectService, clientService *services.ClientService,
	userService *services.UserService, projectMemberService *services.ProjectMemberService,
	reportService *services.ReportService) *ProjectHandler {
	return &ProjectHandler{
		projectService:       projectService,
		clientService:        clientService,
		userService:          userService,
		projectMemberService: projectMemberService,
		reportService:        reportService,
	}
}

// CreateProjectForm displays the create project form
func (h *ProjectHandler) CreateProjectForm(c *gin.Context) {
	session := middleware.GetSession(c)

	clients, err := h.clientService.GetAllClients()
	if err != nil {
		clients = []*models.Client{}
	}

	data := gin.H{
		"Title":   "Create Project",
		"User":    session,
		"Project": &models.Project{},
		"Clients": clients,
	}

	c.HTML(http.StatusOK, "projects_create", data)
}

// CreateProject handles project creation
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	session := middleware.GetSession(c)

	// Get and validate form data
	name := strings.TrimSpace(c.PostForm("name"))
	clientID := c.PostForm("client_id")
	description := strings.TrimSpace(c.PostForm("description"))

	project := models.NewProject(name, clientID, session.UserID)
	project.Description = description

	if err := h.projectService.CreateProject(project); err != nil {
		clients, _ := h.clientService.GetAllClients()
		data := gin.H{
			"Title":   "Create Project",
			"User":    session,
			"Project": project,
			"Clients": clients,
			"Error":   err.Error(),
		}
		c.HTML(http.StatusBadRequest, "projects_create", data)
		return
	}

	c.Redirect(http.StatusFound, "/projects/"+project.ID)
}

// ViewProject displays a project: client, workflow stage, team and
// pending report exports
func (h *ProjectHandler) ViewProject(c *gin.Context) {
	session := middleware.GetSession(c)
	projectID := c.Param("id")

	project, err := h.projectService.GetProjectByID(projectID)
	if err != nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	var client *models.Client
	if project.ClientID != "" {
		client, _ = h.clientService.GetClientByID(project.ClientID)
	}

	team, err := h.projectMemberService.GetProjectTeam(projectID)
	if err != nil {
		team = []*models.User{}
	}

	users, err := h.userService.GetAllUsers()
	if err != nil {
		users = []*models.User{}
	}

	jobs, err := h.reportService.GetProjectJobs(projectID)
	if err != nil {
		jobs = []*models.Job{}
	}

	_, canAdvance := project.Stage.Next()

	data := gin.H{
		"Title":      project.Name,
		"User":       session,
		"Project":    project,
		"Client":     client,
		"Team":       team,
		"AllUsers":   users,
		"Jobs":       jobs,
		"Stages":     models.Stages(),
		"CanAdvance": canAdvance,
		"IsOwner":    project.OwnerID == session.UserID,
	}

	c.HTML(http.StatusOK, "projects_view", data)
}

// UpdateProject handles name/description/client updates
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	projectID := c.Param("id")

	project, err := h.projectService.GetProjectByID(projectID)
	if err != nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	project.Name = strings.TrimSpace(c.PostForm("name"))
	project.ClientID = c.PostForm("client_id")
	project.Description = strings.TrimSpace(c.PostForm("description"))

	if err := h.projectService.UpdateProject(project); err != nil {
		c.Redirect(http.StatusFound, "/projects/"+projectID+"?error="+err.Error())
		return
	}

	c.Redirect(http.StatusFound, "/projects/"+projectID)
}

// AdvanceStage moves the project one workflow stage forward
func (h *ProjectHandler) AdvanceStage(c *gin.Context) {
	projectID := c.Param("id")

	if _, err := h.projectService.AdvanceStage(projectID); err != nil {
		c.Redirect(http.StatusFound, "/projects/"+projectID+"?error="+err.Error())
		return
	}

	c.Redirect(http.StatusFound, "/projects/"+projectID)
}

// DeleteProject soft-deletes a project
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	session := middleware.GetSession(c)
	projectID := c.Param("id")

	project, err := h.projectService.GetProjectByID(projectID)
	if err != nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	// Only the owner can delete a project
	if project.OwnerID != session.UserID {
		c.Redirect(http.StatusFound, "/projects/"+projectID)
		return
	}

	if err := h.projectService.DeleteProject(projectID); err != nil {
		c.Redirect(http.StatusFound, "/projects/"+projectID+"?error="+err.Error())
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}

// AddMember assigns a user to the project team
func (h *ProjectHandler) AddMember(c *gin.Context) {
	projectID := c.Param("id")
	userID := c.PostForm("user_id")
	role := strings.TrimSpace(c.PostForm("role"))

	if err := h.projectMemberService.AddMember(projectID, userID, role); err != nil {
		c.Redirect(http.StatusFound, "/projects/"+projectID+"?error="+err.Error())
		return
	}

	c.Redirect(http.StatusFound, "/projects/"+projectID)
}

// RemoveMember removes a user from the project team
func (h *ProjectHandler) RemoveMember(c *gin.Context) {
	projectID := c.Param("id")
	userID := c.Param("user_id")

	if err := h.projectMemberService.RemoveMember(projectID, userID); err != nil {
		c.Redirect(http.StatusFound, "/projects/"+projectID+"?error="+err.Error())
		return
	}

	c.Redirect(http.StatusFound, "/projects/"+projectID)
}

// CreateRankingReport enqueues a rankings export job
func (h *ProjectHandler) CreateRankingReport(c *gin.Context) {
	projectID := c.Param("id")

	if _, err := h.reportService.CreateRankingReportJob(projectID); err != nil {
		c.Redirect(http.StatusFound, "/projects/"+projectID+"?error="+err.Error())
		return
	}

	c.Redirect(http.StatusFound, "/projects/"+projectID)
}
