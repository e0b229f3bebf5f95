package service

import (
	"context"

	"github.com/reclaim-app/backend/internal/models"
)

// UrgeService defines the interface for urge business logic
type UrgeService interface {
	CreateUrge(ctx context.Context, userID string, req *models.CreateUrgeRequest) (*models.Urge, error)
	GetUrge(ctx context.Context, userID, urgeID string) (*models.Urge, error)
	GetUserUrges(ctx context.Context, userID string) ([]models.Urge, error)
	GetTodayUrges(ctx context.Context, userID string) ([]models.Urge, error)
	ResolveUrge(ctx context.Context, userID, urgeID string, req *models.ResolveUrgeRequest) (*models.Urge, error)
}

// JournalService defines the interface for journal business logic
type JournalService interface {
	GetUserEntries(ctx context.Context, userID string) ([]models.JournalEntry, error)
	GetEntry(ctx context.Context, userID, date string) (*models.JournalEntry, error)
	UpsertEntry(ctx context.Context, userID, date string, req *models.UpsertJournalRequest) (*models.JournalEntry, error)
}

// StreakService defines the interface for check-in/relapse streak logic
type StreakService interface {
	GetStreak(ctx context.Context, userID string) (*models.Streak, error)
	CheckIn(ctx context.Context, userID string) (*models.Streak, error)
	Relapse(ctx context.Context, userID string) (*models.Streak, error)
}

// AnalyticsService defines the interface for urge/mood aggregation
type AnalyticsService interface {
	GetUrgeAnalytics(ctx context.Context, userID string, timeRange models.TimeRange) (*models.UrgeAnalytics, error)
	GetMoodAnalytics(ctx context.Context, userID string, timeRange models.TimeRange) (*models.MoodAnalytics, error)
	GetMoodWeek(ctx context.Context, userID string) ([]models.MoodBucket, error)
	GetSummary(ctx context.Context, userID string) (*models.UrgeStats, *models.JournalStats, error)
}

// InsightService defines the interface for pattern heuristics
type InsightService interface {
	GetInsights(ctx context.Context, userID string) ([]models.Insight, error)
}

// AchievementService defines the interface for achievement derivation
type AchievementService interface {
	GetAchievements(ctx context.Context, userID string) ([]models.Achievement, error)
	GetMilestone(ctx context.Context, userID string) (string, error)
}

// DashboardService defines the interface for the joined home-screen payload
type DashboardService interface {
	GetDashboard(ctx context.Context, userID string) (*models.DashboardSummary, error)
}

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error)
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, userID string, req *models.UpdateProfileRequest) (*models.Profile, error)
}
