package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/reclaim-app/backend/internal/models"
	"github.com/reclaim-app/backend/pkg/supabase"
)

type journalRepository struct {
	client *supabase.Client
}

// NewJournalRepository creates a new journal repository
func NewJournalRepository(client *supabase.Client) JournalRepository {
	return &journalRepository{client: client}
}

// legacyPayload is the nested JSON some older clients stored inside the
// content column before the extended attributes became real columns.
type legacyPayload struct {
	Text             string   `json:"text"`
	EntryType        string   `json:"entry_type"`
	Emotions         []string `json:"emotions"`
	Triggers         []string `json:"triggers"`
	CopingStrategies []string `json:"coping_strategies"`
	Gratitude        []string `json:"gratitude"`
	Goals            []string `json:"goals"`
}

// promoteLegacyContent lifts a serialized payload out of the content field
// into the structured columns. Rows written by current clients pass through
// untouched.
func promoteLegacyContent(entry *models.JournalEntry) {
	content := strings.TrimSpace(entry.Content)
	if !strings.HasPrefix(content, "{") {
		return
	}

	var payload legacyPayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		// Not the legacy encoding, just content that happens to look like JSON
		return
	}

	entry.Content = payload.Text
	if entry.EntryType == "" {
		entry.EntryType = payload.EntryType
	}
	if len(entry.Emotions) == 0 {
		entry.Emotions = payload.Emotions
	}
	if len(entry.Triggers) == 0 {
		entry.Triggers = payload.Triggers
	}
	if len(entry.CopingStrategies) == 0 {
		entry.CopingStrategies = payload.CopingStrategies
	}
	if len(entry.Gratitude) == 0 {
		entry.Gratitude = payload.Gratitude
	}
	if len(entry.Goals) == 0 {
		entry.Goals = payload.Goals
	}
}

func decodeEntries(body []byte) ([]models.JournalEntry, error) {
	var entries []models.JournalEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	for i := range entries {
		promoteLegacyContent(&entries[i])
	}
	return entries, nil
}

func (r *journalRepository) GetByUserID(ctx context.Context, userID string) ([]models.JournalEntry, error) {
	query := map[string]string{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"select":  "*",
		"order":   "date.asc",
	}

	body, err := r.client.Query("journal_entries", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get journal entries: %w", err)
	}

	return decodeEntries(body)
}

func (r *journalRepository) GetByUserIDAndDateRange(ctx context.Context, userID string, start, end time.Time) ([]models.JournalEntry, error) {
	query := map[string]string{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"date":    fmt.Sprintf("gte.%s", start.Format(models.DateLayout)),
		"select":  "*",
		"order":   "date.asc",
		"and":     fmt.Sprintf("(date.lte.%s)", end.Format(models.DateLayout)),
	}

	body, err := r.client.Query("journal_entries", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get journal entries in range: %w", err)
	}

	return decodeEntries(body)
}

func (r *journalRepository) GetByDate(ctx context.Context, userID, date string) (*models.JournalEntry, error) {
	query := map[string]string{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"date":    fmt.Sprintf("eq.%s", date),
		"select":  "*",
	}

	body, err := r.client.Query("journal_entries", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get journal entry: %w", err)
	}

	entries, err := decodeEntries(body)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}

	return &entries[0], nil
}

func (r *journalRepository) Upsert(ctx context.Context, entry *models.JournalEntry) (*models.JournalEntry, error) {
	data := map[string]interface{}{
		"user_id": entry.UserID,
		"date":    entry.Date,
		"mood":    entry.Mood,
		"content": entry.Content,
	}

	if entry.EntryType != "" {
		data["entry_type"] = entry.EntryType
	}
	if entry.Emotions != nil {
		data["emotions"] = entry.Emotions
	}
	if entry.Triggers != nil {
		data["triggers"] = entry.Triggers
	}
	if entry.CopingStrategies != nil {
		data["coping_strategies"] = entry.CopingStrategies
	}
	if entry.Gratitude != nil {
		data["gratitude"] = entry.Gratitude
	}
	if entry.Goals != nil {
		data["goals"] = entry.Goals
	}

	// One entry per (user, date) is the table's natural key
	body, err := r.client.UpsertWithToken("journal_entries", data, "user_id,date", userTokenFromContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert journal entry: %w", err)
	}

	entries, err := decodeEntries(body)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no journal entry returned")
	}

	return &entries[0], nil
}
