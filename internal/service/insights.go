package service

import (
	"context"
	"fmt"
	"math"

	"github.com/reclaim-app/backend/internal/logger"
	"github.com/reclaim-app/backend/internal/models"
	"github.com/reclaim-app/backend/internal/repository"
)

const (
	// MinUrgesForInsight is the minimum sample size before any pattern
	// insight is produced
	MinUrgesForInsight = 3

	// ConfidenceCap keeps the heuristic confidence below certainty no
	// matter how large the sample gets
	ConfidenceCap = 90

	// ConfidencePerUrge is the linear ramp applied per record
	ConfidencePerUrge = 5
)

type insightService struct {
	urgeRepo repository.UrgeRepository
}

// NewInsightService creates a new insight service
func NewInsightService(urgeRepo repository.UrgeRepository) InsightService {
	return &insightService{urgeRepo: urgeRepo}
}

func (s *insightService) GetInsights(ctx context.Context, userID string) ([]models.Insight, error) {
	urges, err := s.urgeRepo.GetByUserID(ctx, userID)
	if err != nil {
		logger.Ctx(ctx).Warn("urge fetch failed, rendering zero insights", logger.Err(err))
		urges = nil
	}

	return DeriveInsights(urges), nil
}

// timeWindow is one of the four named day parts
type timeWindow struct {
	name      string
	label     string
	action    string
	startHour int // inclusive
	endHour   int // exclusive
}

// The night window wraps midnight: [21,24) plus [0,5)
var timeWindows = []timeWindow{
	{"morning", "morning (5am-12pm)", "Plan a grounding activity for your mornings before the urge window opens.", 5, 12},
	{"afternoon", "afternoon (12pm-5pm)", "Schedule a check-in or a walk in the early afternoon.", 12, 17},
	{"evening", "evening (5pm-9pm)", "Line up an evening routine that keeps your hands and mind busy.", 17, 21},
	{"night", "night (9pm-5am)", "Set a wind-down alarm and keep your phone out of reach late at night.", 21, 5},
}

func windowForHour(hour int) timeWindow {
	for _, w := range timeWindows[:3] {
		if hour >= w.startHour && hour < w.endHour {
			return w
		}
	}
	return timeWindows[3]
}

// DeriveInsights runs the pattern heuristics over a record snapshot.
// Fewer than MinUrgesForInsight well-formed records produce zero insights.
//
// The reported percentage is the share of the single peak hour, not the
// whole window it falls in. That undersells the window's true share; the
// behavior is an intentional approximation carried over from the product,
// not a bug.
func DeriveInsights(urges []models.Urge) []models.Insight {
	hourCounts := make(map[int]int)
	total := 0
	peakHour, peakCount := -1, 0

	for _, u := range urges {
		if !validUrge(u) {
			continue
		}
		total++
		hour := u.CreatedAt.Hour()
		hourCounts[hour]++
		if hourCounts[hour] > peakCount {
			peakCount = hourCounts[hour]
			peakHour = hour
		}
	}

	if total < MinUrgesForInsight {
		return nil
	}

	window := windowForHour(peakHour)
	percentage := int(math.Round(float64(peakCount) / float64(total) * 100))
	confidence := total * ConfidencePerUrge
	if confidence > ConfidenceCap {
		confidence = ConfidenceCap
	}

	return []models.Insight{
		{
			Title: "Vulnerable time of day",
			Description: fmt.Sprintf("Your urges cluster in the %s. %d%% of them hit around %s.",
				window.label, percentage, formatHour(peakHour)),
			Confidence:      confidence,
			SuggestedAction: window.action,
		},
	}
}

// formatHour renders a 0-23 hour as a 12-hour clock label
func formatHour(hour int) string {
	switch {
	case hour == 0:
		return "12am"
	case hour < 12:
		return fmt.Sprintf("%dam", hour)
	case hour == 12:
		return "12pm"
	default:
		return fmt.Sprintf("%dpm", hour-12)
	}
}
