package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studiokit/crewboard/internal/middleware"
)

type HomeHandler struct{}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// Index handles the home page
func (h *HomeHandler) Index(c *gin.Context) {
	session := middleware.GetSession(c)
	if session != nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	data := gin.H{
		"Title": "Crewboard",
		"User":  session,
	}

	c.HTML(http.StatusOK, "index", data)
}
