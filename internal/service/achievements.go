package service

import (
	"context"
	"time"

	"github.com/reclaim-app/backend/internal/logger"
	"github.com/reclaim-app/backend/internal/models"
	"github.com/reclaim-app/backend/internal/repository"
)

// Catalog is the fixed, ordered achievement catalog. It is evaluated in
// full on every call; unlocked state is always derived, never stored.
var Catalog = []models.AchievementDefinition{
	{ID: "first_day", Title: "First Day", Description: "Complete your first clean day", Metric: models.MetricStreakDays, Threshold: 1},
	{ID: "one_week", Title: "One Week Strong", Description: "Reach a 7-day streak", Metric: models.MetricStreakDays, Threshold: 7},
	{ID: "two_weeks", Title: "Two Weeks In", Description: "Reach a 14-day streak", Metric: models.MetricStreakDays, Threshold: 14},
	{ID: "one_month", Title: "One Month Milestone", Description: "Reach a 30-day streak", Metric: models.MetricStreakDays, Threshold: 30},
	{ID: "ninety_days", Title: "Ninety Days", Description: "Reach a 90-day streak", Metric: models.MetricStreakDays, Threshold: 90},
	{ID: "half_year", Title: "Half a Year", Description: "Reach a 180-day streak", Metric: models.MetricStreakDays, Threshold: 180},
	{ID: "one_year", Title: "One Full Year", Description: "Reach a 365-day streak", Metric: models.MetricStreakDays, Threshold: 365},
	{ID: "first_win", Title: "First Victory", Description: "Overcome your first urge", Metric: models.MetricOvercomeCount, Threshold: 1},
	{ID: "five_wins", Title: "Five Victories", Description: "Overcome 5 urges", Metric: models.MetricOvercomeCount, Threshold: 5},
	{ID: "ten_wins", Title: "Ten Victories", Description: "Overcome 10 urges", Metric: models.MetricOvercomeCount, Threshold: 10},
	{ID: "twenty_five_wins", Title: "Twenty-Five Victories", Description: "Overcome 25 urges", Metric: models.MetricOvercomeCount, Threshold: 25},
	{ID: "fifty_wins", Title: "Fifty Victories", Description: "Overcome 50 urges", Metric: models.MetricOvercomeCount, Threshold: 50},
	{ID: "hundred_wins", Title: "Centurion", Description: "Overcome 100 urges", Metric: models.MetricOvercomeCount, Threshold: 100},
}

// milestoneMessages are the fixed congratulations for exact streak values
var milestoneMessages = map[int]string{
	1:   "Day one is done. The hardest step is behind you.",
	7:   "One week! Seven days of showing up for yourself.",
	30:  "Thirty days clean. This is what momentum looks like.",
	90:  "Ninety days. You have rebuilt your baseline.",
	365: "One whole year. Remember who you were 365 days ago.",
}

// genericMessages rotate for every other streak value
var genericMessages = []string{
	"Keep going. Every clean day counts.",
	"Another day, another brick in the wall.",
	"You showed up again today. That matters.",
	"Progress is quiet. You're making it anyway.",
	"One day at a time still works.",
}

type achievementService struct {
	urgeRepo   repository.UrgeRepository
	streakRepo repository.StreakRepository
}

// NewAchievementService creates a new achievement service
func NewAchievementService(urgeRepo repository.UrgeRepository, streakRepo repository.StreakRepository) AchievementService {
	return &achievementService{
		urgeRepo:   urgeRepo,
		streakRepo: streakRepo,
	}
}

func (s *achievementService) GetAchievements(ctx context.Context, userID string) ([]models.Achievement, error) {
	log := logger.Ctx(ctx)

	streak, err := s.streakRepo.GetByUserID(ctx, userID)
	if err != nil {
		log.Warn("streak fetch failed, deriving achievements from zero", logger.Err(err))
		streak = nil
	}

	overcome, err := s.urgeRepo.CountOvercome(ctx, userID)
	if err != nil {
		log.Warn("overcome count fetch failed, deriving achievements from zero", logger.Err(err))
		overcome = 0
	}

	return DeriveAchievements(streak, overcome), nil
}

func (s *achievementService) GetMilestone(ctx context.Context, userID string) (string, error) {
	streak, err := s.streakRepo.GetByUserID(ctx, userID)
	if err != nil {
		logger.Ctx(ctx).Warn("streak fetch failed, using zero streak for milestone", logger.Err(err))
		streak = nil
	}

	current := 0
	if streak != nil {
		current = streak.CurrentStreak
	}
	return MilestoneMessage(current, time.Now()), nil
}

// DeriveAchievements evaluates the full catalog against a streak record and
// cumulative overcome count. Pure and idempotent: identical input yields
// identical output, with no state carried between calls.
func DeriveAchievements(streak *models.Streak, overcomeCount int) []models.Achievement {
	streakDays := 0
	if streak != nil {
		streakDays = streak.CurrentStreak
		if streak.BestStreak > streakDays {
			streakDays = streak.BestStreak
		}
	}

	achievements := make([]models.Achievement, 0, len(Catalog))
	for _, def := range Catalog {
		actual := overcomeCount
		if def.Metric == models.MetricStreakDays {
			actual = streakDays
		}

		progress := actual
		if progress > def.Threshold {
			progress = def.Threshold
		}

		achievements = append(achievements, models.Achievement{
			AchievementDefinition: def,
			Unlocked:              actual >= def.Threshold,
			Progress:              progress,
		})
	}
	return achievements
}

// MilestoneMessage selects the check-in message for a streak value. Exact
// milestone values get their fixed string; everything else rotates through
// the generic pool keyed by streak plus day of month.
func MilestoneMessage(currentStreak int, today time.Time) string {
	if msg, ok := milestoneMessages[currentStreak]; ok {
		return msg
	}
	return genericMessages[(currentStreak+today.Day())%len(genericMessages)]
}
