package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/reclaim-app/backend/internal/models"
	"github.com/reclaim-app/backend/pkg/supabase"
)

type profileRepository struct {
	client *supabase.Client
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(client *supabase.Client) ProfileRepository {
	return &profileRepository{client: client}
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	query := map[string]string{
		"id":     fmt.Sprintf("eq.%s", id),
		"select": "*",
	}

	body, err := r.client.Query("profiles", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	var profiles []models.Profile
	if err := json.Unmarshal(body, &profiles); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(profiles) == 0 {
		return nil, fmt.Errorf("profile not found")
	}

	return &profiles[0], nil
}

func (r *profileRepository) Update(ctx context.Context, id string, req *models.UpdateProfileRequest) (*models.Profile, error) {
	data := map[string]interface{}{}

	if req.DisplayName != nil {
		data["display_name"] = *req.DisplayName
	}
	if req.SobrietyDate != nil {
		data["sobriety_date"] = req.SobrietyDate.Format(time.RFC3339)
	}

	if len(data) == 0 {
		return r.GetByID(ctx, id)
	}

	body, err := r.client.Update("profiles", id, data)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	var profiles []models.Profile
	if err := json.Unmarshal(body, &profiles); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(profiles) == 0 {
		return nil, fmt.Errorf("no profile returned")
	}

	return &profiles[0], nil
}
