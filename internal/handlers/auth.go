package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/studiokit/crewboard/internal/middleware"
	"github.com/studiokit/crewboard/internal/models"
	"github.com/studiokit/crewboard/internal/services"
	"github.com/studiokit/crewboard/pkg/logger"
)

type AuthHandler struct {
	userService *services.UserService
	ssoService  *services.SSOService
}

func NewAuthHandler(userService *services.UserService) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		ssoService:  services.NewSSOService(),
	}
}

// Login handles the login page
func (h *AuthHandler) Login(c *gin.Context) {
	session := middleware.GetSession(c)
	errorMsg := c.Query("error")

	data := gin.H{
		"Title": "Login",
		"User":  session,
		"Error": errorMsg,
	}

	c.HTML(http.StatusOK, "login", data)
}

// Logout handles user logout
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearSession(c)
	c.Redirect(http.StatusFound, "/")
}

// SSOLogin initiates the OAuth flow against the identity provider
func (h *AuthHandler) SSOLogin(c *gin.Context) {
	authURL := h.ssoService.GetAuthURL()
	c.Redirect(http.StatusTemporaryRedirect, authURL)
}

// SSOCallback handles the OAuth callback
func (h *AuthHandler) SSOCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.Redirect(http.StatusFound, "/login?error=no_code")
		return
	}

	// Exchange code for token
	token, err := h.ssoService.ExchangeCodeForToken(code)
	if err != nil {
		c.Redirect(http.StatusFound, "/login?error=token_exchange_failed")
		return
	}

	// Get user profile from the provider
	profile, err := h.ssoService.GetUserInfo(token)
	if err != nil {
		c.Redirect(http.StatusFound, "/login?error=user_info_failed")
		return
	}

	// Check if user exists in our database
	user, err := h.userService.GetUserByEmail(profile.Email)
	if err != nil || user == nil {
		// User doesn't exist, create new user
		user = &models.User{
			ID:             uuid.New(),
			Name:           profile.Name,
			Email:          profile.Email,
			ProfilePicture: profile.Picture,
			Role:           "member",
		}

		if err := h.userService.CreateUser(user); err != nil {
			logger.WithError(err).Error("Failed to create user on first login")
			c.Redirect(http.StatusFound, "/login?error=user_creation_failed")
			return
		}
	}

	if err := middleware.SetSession(c, user.ID.String(), user.DisplayName(), user.Email); err != nil {
		c.Redirect(http.StatusFound, "/login?error=session_failed")
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}
