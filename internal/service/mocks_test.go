package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/reclaim-app/backend/internal/models"
)

var errStoreDown = errors.New("store unavailable")

var mockIDCounter int

func generateMockID() string {
	mockIDCounter++
	return fmt.Sprintf("mock-id-%d", mockIDCounter)
}

// mockUrgeRepository is an in-memory UrgeRepository for testing
type mockUrgeRepository struct {
	urges map[string]*models.Urge // id -> urge
	// when set, every method returns this error
	err          error
	resolveCalls int
}

func newMockUrgeRepository() *mockUrgeRepository {
	return &mockUrgeRepository{urges: make(map[string]*models.Urge)}
}

func (m *mockUrgeRepository) Create(ctx context.Context, urge *models.Urge) (*models.Urge, error) {
	if m.err != nil {
		return nil, m.err
	}
	if urge.ID == "" {
		urge.ID = generateMockID()
	}
	if urge.CreatedAt.IsZero() {
		urge.CreatedAt = time.Now()
	}
	m.urges[urge.ID] = urge
	return urge, nil
}

func (m *mockUrgeRepository) GetByID(ctx context.Context, id string) (*models.Urge, error) {
	if m.err != nil {
		return nil, m.err
	}
	if urge, ok := m.urges[id]; ok {
		return urge, nil
	}
	return nil, fmt.Errorf("urge not found")
}

func (m *mockUrgeRepository) GetByUserID(ctx context.Context, userID string) ([]models.Urge, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []models.Urge
	for _, urge := range m.urges {
		if urge.UserID == userID {
			result = append(result, *urge)
		}
	}
	return result, nil
}

func (m *mockUrgeRepository) GetByUserIDAndDateRange(ctx context.Context, userID string, start, end time.Time) ([]models.Urge, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []models.Urge
	for _, urge := range m.urges {
		if urge.UserID == userID && !urge.CreatedAt.Before(start) && urge.CreatedAt.Before(end) {
			result = append(result, *urge)
		}
	}
	return result, nil
}

func (m *mockUrgeRepository) GetToday(ctx context.Context, userID string) ([]models.Urge, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []models.Urge
	now := time.Now()
	for _, urge := range m.urges {
		if urge.UserID == userID && sameDay(urge.CreatedAt, now) {
			result = append(result, *urge)
		}
	}
	return result, nil
}

func (m *mockUrgeRepository) Resolve(ctx context.Context, id string, outcome models.UrgeOutcome) (*models.Urge, error) {
	m.resolveCalls++
	if m.err != nil {
		return nil, m.err
	}
	urge, ok := m.urges[id]
	if !ok {
		return nil, nil
	}
	urge.Outcome = outcome
	return urge, nil
}

func (m *mockUrgeRepository) CountOvercome(ctx context.Context, userID string) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	count := 0
	for _, urge := range m.urges {
		if urge.UserID == userID && urge.Outcome == models.OutcomeResisted {
			count++
		}
	}
	return count, nil
}

// mockJournalRepository is an in-memory JournalRepository for testing
type mockJournalRepository struct {
	entries map[string]*models.JournalEntry // user_id+date -> entry
	err     error
}

func newMockJournalRepository() *mockJournalRepository {
	return &mockJournalRepository{entries: make(map[string]*models.JournalEntry)}
}

func journalKey(userID, date string) string {
	return userID + "|" + date
}

func (m *mockJournalRepository) GetByUserID(ctx context.Context, userID string) ([]models.JournalEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []models.JournalEntry
	for _, entry := range m.entries {
		if entry.UserID == userID {
			result = append(result, *entry)
		}
	}
	return result, nil
}

func (m *mockJournalRepository) GetByUserIDAndDateRange(ctx context.Context, userID string, start, end time.Time) ([]models.JournalEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []models.JournalEntry
	for _, entry := range m.entries {
		if entry.UserID != userID {
			continue
		}
		ts, err := time.ParseInLocation(models.DateLayout, entry.Date, time.Local)
		if err != nil {
			continue
		}
		if !ts.Before(start) && ts.Before(end) {
			result = append(result, *entry)
		}
	}
	return result, nil
}

func (m *mockJournalRepository) GetByDate(ctx context.Context, userID, date string) (*models.JournalEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	if entry, ok := m.entries[journalKey(userID, date)]; ok {
		return entry, nil
	}
	return nil, nil
}

func (m *mockJournalRepository) Upsert(ctx context.Context, entry *models.JournalEntry) (*models.JournalEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	if entry.ID == "" {
		entry.ID = generateMockID()
	}
	m.entries[journalKey(entry.UserID, entry.Date)] = entry
	return entry, nil
}

// mockStreakRepository is an in-memory StreakRepository for testing
type mockStreakRepository struct {
	streaks     map[string]*models.Streak // user_id -> streak
	err         error
	upsertCalls int
}

func newMockStreakRepository() *mockStreakRepository {
	return &mockStreakRepository{streaks: make(map[string]*models.Streak)}
}

func (m *mockStreakRepository) GetByUserID(ctx context.Context, userID string) (*models.Streak, error) {
	if m.err != nil {
		return nil, m.err
	}
	if streak, ok := m.streaks[userID]; ok {
		return streak, nil
	}
	return nil, nil
}

func (m *mockStreakRepository) Upsert(ctx context.Context, streak *models.Streak) (*models.Streak, error) {
	m.upsertCalls++
	if m.err != nil {
		return nil, m.err
	}
	if streak.ID == "" {
		streak.ID = generateMockID()
	}
	m.streaks[streak.UserID] = streak
	return streak, nil
}
