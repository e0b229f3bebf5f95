package service

import (
	"context"
	"time"

	"github.com/reclaim-app/backend/internal/models"
	"github.com/reclaim-app/backend/internal/repository"
)

type streakService struct {
	streakRepo repository.StreakRepository
}

// NewStreakService creates a new streak service
func NewStreakService(streakRepo repository.StreakRepository) StreakService {
	return &streakService{streakRepo: streakRepo}
}

func (s *streakService) GetStreak(ctx context.Context, userID string) (*models.Streak, error) {
	streak, err := s.streakRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if streak == nil {
		// No row yet: a fresh zero streak, not an error
		return &models.Streak{UserID: userID}, nil
	}

	return streak, nil
}

// CheckIn records a clean day. Checking in twice on the same calendar day
// is a no-op; the counters only ever move once per day.
func (s *streakService) CheckIn(ctx context.Context, userID string) (*models.Streak, error) {
	streak, err := s.GetStreak(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if streak.LastCheckIn != nil && sameDay(*streak.LastCheckIn, now) {
		return streak, nil
	}

	streak.CurrentStreak++
	if streak.CurrentStreak > streak.BestStreak {
		streak.BestStreak = streak.CurrentStreak
	}
	streak.TotalDaysClean++
	streak.LastCheckIn = &now

	return s.streakRepo.Upsert(ctx, streak)
}

// Relapse resets the current streak. Best and total counters are history
// and stay untouched.
func (s *streakService) Relapse(ctx context.Context, userID string) (*models.Streak, error) {
	streak, err := s.GetStreak(ctx, userID)
	if err != nil {
		return nil, err
	}

	streak.CurrentStreak = 0
	streak.RelapseCount++

	return s.streakRepo.Upsert(ctx, streak)
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
