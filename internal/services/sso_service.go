package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/studiokit/crewboard/pkg/config"
	"golang.org/x/oauth2"
)

// SSOService drives the OAuth login flow against the agency's identity
// provider. Endpoints are fully config-driven so any OpenID-style
// provider works.
type SSOService struct {
	oauthConfig *oauth2.Config
	userInfoURL string
}

// SSOUser is the profile returned by the provider's userinfo endpoint
type SSOUser struct {
	Subject string `json:"sub"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}

func NewSSOService() *SSOService {
	oauthConfig := &oauth2.Config{
		ClientID:     config.AppConfig.OAuth.ClientID,
		ClientSecret: config.AppConfig.OAuth.ClientSecret,
		RedirectURL:  config.AppConfig.OAuth.CallbackURL,
		Scopes:       []string{"openid", "profile", "email"},
		Endpoint: oauth2.Endpoint{
			AuthURL:  config.AppConfig.OAuth.AuthURL,
			TokenURL: config.AppConfig.OAuth.TokenURL,
		},
	}

	return &SSOService{
		oauthConfig: oauthConfig,
		userInfoURL: config.AppConfig.OAuth.UserInfoURL,
	}
}

// GetAuthURL returns the provider's authorization URL
func (s *SSOService) GetAuthURL() string {
	return s.oauthConfig.AuthCodeURL("state", oauth2.AccessTypeOffline)
}

// ExchangeCodeForToken exchanges authorization code for access token
func (s *SSOService) ExchangeCodeForToken(code string) (*oauth2.Token, error) {
	ctx := context.Background()
	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code for token: %w", err)
	}
	return token, nil
}

// GetUserInfo retrieves the signed-in user's profile from the provider
func (s *SSOService) GetUserInfo(token *oauth2.Token) (*SSOUser, error) {
	ctx := context.Background()
	client := s.oauthConfig.Client(ctx, token)

	resp, err := client.Get(s.userInfoURL)
	if err != nil {
		return nil, fmt.Errorf("failed to get user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("identity provider returned status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var user SSOUser
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("failed to parse user info: %w", err)
	}

	return &user, nil
}
