package service

import (
	"context"
	"time"

	"github.com/reclaim-app/backend/internal/logger"
	"github.com/reclaim-app/backend/internal/models"
	"github.com/reclaim-app/backend/internal/repository"
	"golang.org/x/sync/errgroup"
)

type dashboardService struct {
	urgeRepo    repository.UrgeRepository
	journalRepo repository.JournalRepository
	streakRepo  repository.StreakRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	urgeRepo repository.UrgeRepository,
	journalRepo repository.JournalRepository,
	streakRepo repository.StreakRepository,
) DashboardService {
	return &dashboardService{
		urgeRepo:    urgeRepo,
		journalRepo: journalRepo,
		streakRepo:  streakRepo,
	}
}

// GetDashboard fetches urges, journal entries and the streak concurrently,
// joins the three snapshots, and only then derives metrics. A failed fetch
// degrades that source to empty; the join never merges partial results from
// a retried call and never propagates a store error to the caller.
func (s *dashboardService) GetDashboard(ctx context.Context, userID string) (*models.DashboardSummary, error) {
	log := logger.Ctx(ctx)

	var (
		urges   []models.Urge
		today   []models.Urge
		entries []models.JournalEntry
		streak  *models.Streak
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		if urges, err = s.urgeRepo.GetByUserID(gctx, userID); err != nil {
			log.Warn("dashboard urge fetch failed", logger.Err(err))
			urges = nil
		}
		return nil
	})

	g.Go(func() error {
		var err error
		if today, err = s.urgeRepo.GetToday(gctx, userID); err != nil {
			log.Warn("dashboard today-urge fetch failed", logger.Err(err))
			today = nil
		}
		return nil
	})

	g.Go(func() error {
		var err error
		if entries, err = s.journalRepo.GetByUserID(gctx, userID); err != nil {
			log.Warn("dashboard journal fetch failed", logger.Err(err))
			entries = nil
		}
		return nil
	})

	g.Go(func() error {
		var err error
		if streak, err = s.streakRepo.GetByUserID(gctx, userID); err != nil {
			log.Warn("dashboard streak fetch failed", logger.Err(err))
			streak = nil
		}
		return nil
	})

	// Join: all fetches complete before any derivation runs
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := DeriveUrgeStats(urges)

	current := 0
	if streak != nil {
		current = streak.CurrentStreak
	}

	return &models.DashboardSummary{
		Streak:           streak,
		TodayUrgeCount:   len(today),
		UrgeStats:        stats,
		JournalStats:     DeriveJournalStats(entries),
		Insights:         DeriveInsights(urges),
		Achievements:     DeriveAchievements(streak, stats.OvercomeCount),
		MilestoneMessage: MilestoneMessage(current, time.Now()),
	}, nil
}
