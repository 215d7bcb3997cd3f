package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/studiokit/crewboard/internal/middleware"
	"github.com/studiokit/crewboard/internal/models"
	"github.com/studiokit/crewboard/internal/services"
)

type ClientHandler struct {
	clientService  *services.ClientService
	projectService *services.ProjectService
}

func NewClientHandler(clientService *services.ClientService, projectService *services.ProjectService) *ClientHandler {
	return &ClientHandler{
		clientService:  clientService,
		projectService: projectService,
	}
}

// ListClients displays all active clients
func (h *ClientHandler) ListClients(c *gin.Context) {
	session := middleware.GetSession(c)

	clients, err := h.clientService.GetAllClients()
	if err != nil {
		clients = []*models.Client{}
	}

	data := gin.H{
		"Title":   "Clients",
		"User":    session,
		"Clients": clients,
	}

	c.HTML(http.StatusOK, "clients_list", data)
}

// CreateClientForm displays the create client form
func (h *ClientHandler) CreateClientForm(c *gin.Context) {
	session := middleware.GetSession(c)

	data := gin.H{
		"Title":  "New Client",
		"User":   session,
		"Client": &models.Client{},
	}

	c.HTML(http.StatusOK, "clients_create", data)
}

// CreateClient handles client creation
func (h *ClientHandler) CreateClient(c *gin.Context) {
	session := middleware.GetSession(c)

	name := strings.TrimSpace(c.PostForm("name"))
	company := strings.TrimSpace(c.PostForm("company"))
	email := strings.TrimSpace(c.PostForm("email"))
	phone := strings.TrimSpace(c.PostForm("phone"))

	client := models.NewClient(name, company, email)
	client.Phone = phone

	if err := h.clientService.CreateClient(client); err != nil {
		data := gin.H{
			"Title":  "New Client",
			"User":   session,
			"Client": client,
			"Error":  err.Error(),
		}
		c.HTML(http.StatusBadRequest, "clients_create", data)
		return
	}

	c.Redirect(http.StatusFound, "/clients")
}

// ViewClient displays a client and its projects
func (h *ClientHandler) ViewClient(c *gin.Context) {
	session := middleware.GetSession(c)
	clientID := c.Param("id")

	client, err := h.clientService.GetClientByID(clientID)
	if err != nil {
		c.Redirect(http.StatusFound, "/clients")
		return
	}

	projects, err := h.projectService.GetProjectsByClientID(clientID)
	if err != nil {
		projects = []*models.Project{}
	}

	data := gin.H{
		"Title":    client.Name,
		"User":     session,
		"Client":   client,
		"Projects": projects,
	}

	c.HTML(http.StatusOK, "clients_view", data)
}

// UpdateClient handles client contact updates
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	clientID := c.Param("id")

	client, err := h.clientService.GetClientByID(clientID)
	if err != nil {
		c.Redirect(http.StatusFound, "/clients")
		return
	}

	client.Name = strings.TrimSpace(c.PostForm("name"))
	client.Company = strings.TrimSpace(c.PostForm("company"))
	client.Email = strings.TrimSpace(c.PostForm("email"))
	client.Phone = strings.TrimSpace(c.PostForm("phone"))

	if err := h.clientService.UpdateClient(client); err != nil {
		c.Redirect(http.StatusFound, "/clients/"+clientID+"?error="+err.Error())
		return
	}

	c.Redirect(http.StatusFound, "/clients/"+clientID)
}

// ArchiveClient soft-deletes a client
func (h *ClientHandler) ArchiveClient(c *gin.Context) {
	clientID := c.Param("id")

	if err := h.clientService.ArchiveClient(clientID); err != nil {
		c.Redirect(http.StatusFound, "/clients/"+clientID+"?error="+err.Error())
		return
	}

	c.Redirect(http.StatusFound, "/clients")
}
