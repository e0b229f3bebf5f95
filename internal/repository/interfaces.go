package repository

import (
	"context"
	"time"

	"github.com/reclaim-app/backend/internal/models"
)

// UrgeRepository defines the interface for urge data access
type UrgeRepository interface {
	Create(ctx context.Context, urge *models.Urge) (*models.Urge, error)
	GetByID(ctx context.Context, id string) (*models.Urge, error)
	GetByUserID(ctx context.Context, userID string) ([]models.Urge, error)
	GetByUserIDAndDateRange(ctx context.Context, userID string, start, end time.Time) ([]models.Urge, error)
	GetToday(ctx context.Context, userID string) ([]models.Urge, error)
	Resolve(ctx context.Context, id string, outcome models.UrgeOutcome) (*models.Urge, error)
	CountOvercome(ctx context.Context, userID string) (int, error)
}

// JournalRepository defines the interface for journal entry data access
type JournalRepository interface {
	GetByUserID(ctx context.Context, userID string) ([]models.JournalEntry, error)
	GetByUserIDAndDateRange(ctx context.Context, userID string, start, end time.Time) ([]models.JournalEntry, error)
	// GetByDate returns (nil, nil) when no entry exists for the date
	GetByDate(ctx context.Context, userID, date string) (*models.JournalEntry, error)
	Upsert(ctx context.Context, entry *models.JournalEntry) (*models.JournalEntry, error)
}

// StreakRepository defines the interface for streak data access
type StreakRepository interface {
	// GetByUserID returns (nil, nil) when the user has no streak row yet
	GetByUserID(ctx context.Context, userID string) (*models.Streak, error)
	Upsert(ctx context.Context, streak *models.Streak) (*models.Streak, error)
}

// ProfileRepository defines the interface for profile data access
type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*models.Profile, error)
	Update(ctx context.Context, id string, req *models.UpdateProfileRequest) (*models.Profile, error)
}
