package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/reclaim-app/backend/internal/models"
	"github.com/reclaim-app/backend/pkg/supabase"
)

type streakRepository struct {
	client *supabase.Client
}

// NewStreakRepository creates a new streak repository
func NewStreakRepository(client *supabase.Client) StreakRepository {
	return &streakRepository{client: client}
}

func (r *streakRepository) GetByUserID(ctx context.Context, userID string) (*models.Streak, error) {
	query := map[string]string{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"select":  "*",
	}

	body, err := r.client.Query("streaks", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get streak: %w", err)
	}

	var streaks []models.Streak
	if err := json.Unmarshal(body, &streaks); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(streaks) == 0 {
		return nil, nil
	}

	return &streaks[0], nil
}

func (r *streakRepository) Upsert(ctx context.Context, streak *models.Streak) (*models.Streak, error) {
	data := map[string]interface{}{
		"user_id":          streak.UserID,
		"current_streak":   streak.CurrentStreak,
		"best_streak":      streak.BestStreak,
		"total_days_clean": streak.TotalDaysClean,
		"relapse_count":    streak.RelapseCount,
	}

	if streak.LastCheckIn != nil {
		data["last_check_in"] = streak.LastCheckIn.Format(time.RFC3339)
	}

	body, err := r.client.Upsert("streaks", data, "user_id")
	if err != nil {
		return nil, fmt.Errorf("failed to upsert streak: %w", err)
	}

	var streaks []models.Streak
	if err := json.Unmarshal(body, &streaks); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(streaks) == 0 {
		return nil, fmt.Errorf("no streak returned")
	}

	return &streaks[0], nil
}
