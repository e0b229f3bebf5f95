package models

// AchievementMetric names the aggregate an achievement threshold applies to
type AchievementMetric string

const (
	// MetricOvercomeCount thresholds on cumulative urges overcome
	MetricOvercomeCount AchievementMetric = "overcome_count"
	// MetricStreakDays thresholds on max(current streak, best streak)
	MetricStreakDays AchievementMetric = "streak_days"
)

// AchievementDefinition is one entry of the static achievement catalog.
// Definitions are not persisted per user; unlocked state is derived.
type AchievementDefinition struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Metric      AchievementMetric `json:"metric"`
	Threshold   int               `json:"threshold"`
}

// Achievement is a definition plus the user's derived progress toward it
type Achievement struct {
	AchievementDefinition
	Unlocked bool `json:"unlocked"`
	Progress int  `json:"progress"` // min(actual, threshold)
}
