package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/reclaim-app/backend/internal/models"
	"github.com/reclaim-app/backend/pkg/supabase"
)

type urgeRepository struct {
	client *supabase.Client
}

// NewUrgeRepository creates a new urge repository
func NewUrgeRepository(client *supabase.Client) UrgeRepository {
	return &urgeRepository{client: client}
}

// urgeRow mirrors the store schema, which keeps the outcome as a nullable
// boolean `overcome` column. The enum mapping lives here so nothing above
// the repository ever sees the tri-state bool.
type urgeRow struct {
	ID        string    `json:"id,omitempty"`
	UserID    string    `json:"user_id"`
	Intensity int       `json:"intensity"`
	Location  string    `json:"location,omitempty"`
	Trigger   string    `json:"trigger,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	Overcome  *bool     `json:"overcome"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

func (r urgeRow) toModel() models.Urge {
	outcome := models.OutcomePending
	if r.Overcome != nil {
		if *r.Overcome {
			outcome = models.OutcomeResisted
		} else {
			outcome = models.OutcomeIndulged
		}
	}
	return models.Urge{
		ID:        r.ID,
		UserID:    r.UserID,
		Intensity: r.Intensity,
		Location:  r.Location,
		Trigger:   r.Trigger,
		Notes:     r.Notes,
		Outcome:   outcome,
		CreatedAt: r.CreatedAt,
	}
}

func overcomeValue(outcome models.UrgeOutcome) *bool {
	switch outcome {
	case models.OutcomeResisted:
		v := true
		return &v
	case models.OutcomeIndulged:
		v := false
		return &v
	default:
		return nil
	}
}

func decodeUrges(body []byte) ([]models.Urge, error) {
	var rows []urgeRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	urges := make([]models.Urge, 0, len(rows))
	for _, row := range rows {
		urges = append(urges, row.toModel())
	}
	return urges, nil
}

func (r *urgeRepository) Create(ctx context.Context, urge *models.Urge) (*models.Urge, error) {
	data := urgeRow{
		UserID:    urge.UserID,
		Intensity: urge.Intensity,
		Location:  urge.Location,
		Trigger:   urge.Trigger,
		Notes:     urge.Notes,
		Overcome:  overcomeValue(urge.Outcome),
	}

	body, err := r.client.InsertWithToken("urges", data, userTokenFromContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to create urge: %w", err)
	}

	urges, err := decodeUrges(body)
	if err != nil {
		return nil, err
	}
	if len(urges) == 0 {
		return nil, fmt.Errorf("no urge returned")
	}

	return &urges[0], nil
}

func (r *urgeRepository) GetByID(ctx context.Context, id string) (*models.Urge, error) {
	query := map[string]string{
		"id":     fmt.Sprintf("eq.%s", id),
		"select": "*",
	}

	body, err := r.client.Query("urges", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get urge: %w", err)
	}

	urges, err := decodeUrges(body)
	if err != nil {
		return nil, err
	}
	if len(urges) == 0 {
		return nil, fmt.Errorf("urge not found")
	}

	return &urges[0], nil
}

func (r *urgeRepository) GetByUserID(ctx context.Context, userID string) ([]models.Urge, error) {
	query := map[string]string{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"select":  "*",
		"order":   "created_at.asc",
	}

	body, err := r.client.Query("urges", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get urges: %w", err)
	}

	return decodeUrges(body)
}

func (r *urgeRepository) GetByUserIDAndDateRange(ctx context.Context, userID string, start, end time.Time) ([]models.Urge, error) {
	// PostgREST only allows one filter per key in a flat map, so the range
	// upper bound rides on a second column expression
	query := map[string]string{
		"user_id":    fmt.Sprintf("eq.%s", userID),
		"created_at": fmt.Sprintf("gte.%s", start.Format(time.RFC3339)),
		"select":     "*",
		"order":      "created_at.asc",
		"and":        fmt.Sprintf("(created_at.lt.%s)", end.Format(time.RFC3339)),
	}

	body, err := r.client.Query("urges", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get urges in range: %w", err)
	}

	return decodeUrges(body)
}

func (r *urgeRepository) GetToday(ctx context.Context, userID string) ([]models.Urge, error) {
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return r.GetByUserIDAndDateRange(ctx, userID, startOfDay, startOfDay.AddDate(0, 0, 1))
}

func (r *urgeRepository) Resolve(ctx context.Context, id string, outcome models.UrgeOutcome) (*models.Urge, error) {
	data := map[string]interface{}{
		"overcome": overcomeValue(outcome),
	}

	body, err := r.client.UpdateWithToken("urges", id, data, userTokenFromContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve urge: %w", err)
	}

	urges, err := decodeUrges(body)
	if err != nil {
		return nil, err
	}
	if len(urges) == 0 {
		return nil, fmt.Errorf("urge not found")
	}

	return &urges[0], nil
}

func (r *urgeRepository) CountOvercome(ctx context.Context, userID string) (int, error) {
	query := map[string]string{
		"user_id":  fmt.Sprintf("eq.%s", userID),
		"overcome": "is.true",
		"select":   "id",
	}

	body, err := r.client.Query("urges", query)
	if err != nil {
		return 0, fmt.Errorf("failed to count overcome urges: %w", err)
	}

	var rows []struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &rows); err != nil {
		return 0, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return len(rows), nil
}
