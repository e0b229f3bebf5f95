package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/reclaim-app/backend/internal/models"
	"github.com/reclaim-app/backend/internal/repository"
	"github.com/reclaim-app/backend/pkg/supabase"
)

// ErrAuthUnavailable indicates the auth endpoint could not be reached at
// all, as opposed to rejecting the credentials.
var ErrAuthUnavailable = errors.New("auth provider unavailable")

type authService struct {
	client      *supabase.Client
	profileRepo repository.ProfileRepository
}

// NewAuthService creates a new auth service
func NewAuthService(client *supabase.Client, profileRepo repository.ProfileRepository) AuthService {
	return &authService{
		client:      client,
		profileRepo: profileRepo,
	}
}

// tokenResponse is the shape Supabase Auth returns for both password grants
// and signups
type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

func (s *authService) authRequest(ctx context.Context, url string, email, password string) (*tokenResponse, error) {
	reqBody := map[string]string{
		"email":    email,
		"password": password,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("apikey", s.client.ServiceKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("auth failed: %s", string(body))
	}

	var tokens tokenResponse
	if err := json.Unmarshal(body, &tokens); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &tokens, nil
}

func (s *authService) buildResponse(ctx context.Context, tokens *tokenResponse) *models.AuthResponse {
	user := models.Profile{
		ID:    tokens.User.ID,
		Email: tokens.User.Email,
	}

	// Enrich from the profiles table when the row exists; a missing profile
	// is fine for a fresh signup
	if profile, err := s.profileRepo.GetByID(ctx, tokens.User.ID); err == nil {
		user = *profile
	}

	return &models.AuthResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		User:         user,
	}
}

func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	url := fmt.Sprintf("%s/auth/v1/token?grant_type=password", s.client.URL)

	tokens, err := s.authRequest(ctx, url, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	return s.buildResponse(ctx, tokens), nil
}

func (s *authService) Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error) {
	url := fmt.Sprintf("%s/auth/v1/signup", s.client.URL)

	tokens, err := s.authRequest(ctx, url, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	return s.buildResponse(ctx, tokens), nil
}

func (s *authService) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	return s.profileRepo.GetByID(ctx, userID)
}

func (s *authService) UpdateProfile(ctx context.Context, userID string, req *models.UpdateProfileRequest) (*models.Profile, error) {
	return s.profileRepo.Update(ctx, userID, req)
}
