package models

import "time"

// TimeRange selects the lookback window for analytics queries
type TimeRange string

const (
	RangeWeek    TimeRange = "week"    // last 7 days, day buckets
	RangeMonth   TimeRange = "month"   // last 1 month, day buckets
	RangeQuarter TimeRange = "quarter" // last 3 months, week buckets
	RangeYear    TimeRange = "year"    // last 1 year, week buckets
)

// ValidTimeRange reports whether s names a supported range
func ValidTimeRange(s string) bool {
	switch TimeRange(s) {
	case RangeWeek, RangeMonth, RangeQuarter, RangeYear:
		return true
	}
	return false
}

// IntensityTier classifies a bucket's average urge intensity
type IntensityTier string

const (
	TierHigh   IntensityTier = "high"   // avg > 7
	TierMedium IntensityTier = "medium" // avg > 5
	TierLow    IntensityTier = "low"
)

// MoodTier classifies a mood average. Boundaries are inclusive on the lower
// bound of each tier and evaluated from excellent down.
type MoodTier string

const (
	MoodExcellent MoodTier = "excellent" // avg >= 4
	MoodGood      MoodTier = "good"      // avg >= 3
	MoodNeutral   MoodTier = "neutral"   // avg >= 2
	MoodDifficult MoodTier = "difficult"
)

// UrgeBucket is one time-windowed aggregation unit of urge records.
// Derived fresh on every pass, never persisted.
type UrgeBucket struct {
	Key           time.Time     `json:"key"` // bucket start, truncated to granularity
	Label         string        `json:"label"`
	Count         int           `json:"count"`
	OvercomeCount int           `json:"overcome_count"`
	AvgIntensity  float64       `json:"avg_intensity"`
	Tier          IntensityTier `json:"tier"`
	Color         string        `json:"color"`
}

// MoodBucket is one time-windowed aggregation unit of journal moods
type MoodBucket struct {
	Key     time.Time `json:"key"`
	Label   string    `json:"label"`
	Count   int       `json:"count"`
	AvgMood float64   `json:"avg_mood"`
	Tier    MoodTier  `json:"tier"`
}

// UrgeStats holds whole-set urge metrics for a record snapshot
type UrgeStats struct {
	Total              int    `json:"total"`
	OvercomeCount      int    `json:"overcome_count"`
	OvercomePercentage int    `json:"overcome_percentage"` // round(overcome/total*100), 0 when empty
	MostCommonTrigger  string `json:"most_common_trigger,omitempty"`
	PeakHour           int    `json:"peak_hour"`    // 0-23 local time, -1 when no data
	PeakWeekday        int    `json:"peak_weekday"` // 0=Sunday..6=Saturday, -1 when no data
}

// JournalStats holds whole-set journal metrics
type JournalStats struct {
	TotalEntries     int     `json:"total_entries"`
	AverageMood      float64 `json:"average_mood"` // rounded to one decimal
	MostFrequentMood int     `json:"most_frequent_mood"`
}

// TriggerFrequency is one row of the top-triggers table
type TriggerFrequency struct {
	Trigger    string `json:"trigger"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// UrgeAnalytics is the full analytics response for a time range
type UrgeAnalytics struct {
	Range       TimeRange          `json:"range"`
	Buckets     []UrgeBucket       `json:"buckets"`
	Stats       UrgeStats          `json:"stats"`
	TopTriggers []TriggerFrequency `json:"top_triggers"`
}

// MoodAnalytics is the full mood series response for a time range
type MoodAnalytics struct {
	Range   TimeRange    `json:"range"`
	Buckets []MoodBucket `json:"buckets"`
	Stats   JournalStats `json:"stats"`
}

// Insight is a derived, human-readable pattern statement. Ephemeral:
// recomputed from the current record set on every call.
type Insight struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	Confidence      int    `json:"confidence"` // percentage, capped below 100
	SuggestedAction string `json:"suggested_action,omitempty"`
}

// DashboardSummary joins the three concurrently fetched sources into the
// payload the home screen renders
type DashboardSummary struct {
	Streak           *Streak       `json:"streak,omitempty"`
	TodayUrgeCount   int           `json:"today_urge_count"`
	UrgeStats        UrgeStats     `json:"urge_stats"`
	JournalStats     JournalStats  `json:"journal_stats"`
	Insights         []Insight     `json:"insights"`
	Achievements     []Achievement `json:"achievements"`
	MilestoneMessage string        `json:"milestone_message"`
}
