package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/reclaim-app/backend/internal/logger"
	"github.com/reclaim-app/backend/internal/models"
	"github.com/reclaim-app/backend/internal/repository"
)

// Tier display colors. The three-tier classification boundaries are the
// contract; the palette itself is presentation.
const (
	colorHigh   = "#EF4444"
	colorMedium = "#F59E0B"
	colorLow    = "#22C55E"
)

type analyticsService struct {
	urgeRepo    repository.UrgeRepository
	journalRepo repository.JournalRepository
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(urgeRepo repository.UrgeRepository, journalRepo repository.JournalRepository) AnalyticsService {
	return &analyticsService{
		urgeRepo:    urgeRepo,
		journalRepo: journalRepo,
	}
}

func (s *analyticsService) GetUrgeAnalytics(ctx context.Context, userID string, timeRange models.TimeRange) (*models.UrgeAnalytics, error) {
	now := time.Now()

	urges, err := s.urgeRepo.GetByUserIDAndDateRange(ctx, userID, RangeStart(timeRange, now), now)
	if err != nil {
		// Store failure degrades to the empty-state response, never a crash
		logger.Ctx(ctx).Warn("urge fetch failed, rendering empty analytics", logger.Err(err))
		urges = nil
	}

	return &models.UrgeAnalytics{
		Range:       timeRange,
		Buckets:     BucketUrges(urges, timeRange),
		Stats:       DeriveUrgeStats(urges),
		TopTriggers: TopTriggers(urges),
	}, nil
}

func (s *analyticsService) GetMoodAnalytics(ctx context.Context, userID string, timeRange models.TimeRange) (*models.MoodAnalytics, error) {
	now := time.Now()

	entries, err := s.journalRepo.GetByUserIDAndDateRange(ctx, userID, RangeStart(timeRange, now), now)
	if err != nil {
		logger.Ctx(ctx).Warn("journal fetch failed, rendering empty mood analytics", logger.Err(err))
		entries = nil
	}

	return &models.MoodAnalytics{
		Range:   timeRange,
		Buckets: BucketMoods(entries, timeRange),
		Stats:   DeriveJournalStats(entries),
	}, nil
}

func (s *analyticsService) GetMoodWeek(ctx context.Context, userID string) ([]models.MoodBucket, error) {
	now := time.Now()

	entries, err := s.journalRepo.GetByUserIDAndDateRange(ctx, userID, now.AddDate(0, 0, -6), now)
	if err != nil {
		logger.Ctx(ctx).Warn("journal fetch failed, rendering empty mood week", logger.Err(err))
		entries = nil
	}

	return MoodWeek(entries, now), nil
}

func (s *analyticsService) GetSummary(ctx context.Context, userID string) (*models.UrgeStats, *models.JournalStats, error) {
	log := logger.Ctx(ctx)

	urges, err := s.urgeRepo.GetByUserID(ctx, userID)
	if err != nil {
		log.Warn("urge fetch failed, rendering empty summary", logger.Err(err))
		urges = nil
	}

	entries, err := s.journalRepo.GetByUserID(ctx, userID)
	if err != nil {
		log.Warn("journal fetch failed, rendering empty summary", logger.Err(err))
		entries = nil
	}

	urgeStats := DeriveUrgeStats(urges)
	journalStats := DeriveJournalStats(entries)
	return &urgeStats, &journalStats, nil
}

// RangeStart returns the inclusive lower bound of a time range ending at now
func RangeStart(timeRange models.TimeRange, now time.Time) time.Time {
	switch timeRange {
	case models.RangeWeek:
		return now.AddDate(0, 0, -7)
	case models.RangeMonth:
		return now.AddDate(0, -1, 0)
	case models.RangeQuarter:
		return now.AddDate(0, -3, 0)
	case models.RangeYear:
		return now.AddDate(-1, 0, 0)
	default:
		return now.AddDate(0, -1, 0)
	}
}

// bucketsByDay reports whether the range uses calendar-day buckets.
// Week and month views bucket by day; quarter and year views bucket by
// Sunday-anchored week.
func bucketsByDay(timeRange models.TimeRange) bool {
	return timeRange == models.RangeWeek || timeRange == models.RangeMonth
}

// startOfDay truncates a timestamp to local midnight
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfWeek truncates a timestamp to the most recent Sunday midnight
func startOfWeek(t time.Time) time.Time {
	day := startOfDay(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// weekOfMonth returns the 1-based ordinal of the week within its month,
// counting Sunday-anchored weeks
func weekOfMonth(t time.Time) int {
	firstOfMonth := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	firstWeek := startOfWeek(firstOfMonth)
	return int(startOfWeek(t).Sub(firstWeek).Hours()/(24*7)) + 1
}

// BucketKey truncates a record timestamp to its bucket granularity
func BucketKey(ts time.Time, timeRange models.TimeRange) time.Time {
	if bucketsByDay(timeRange) {
		return startOfDay(ts)
	}
	return startOfWeek(ts)
}

// BucketLabel renders the display label for a bucket key: 3-letter weekday
// for day buckets, "W<n>" week-of-month for week buckets
func BucketLabel(key time.Time, timeRange models.TimeRange) string {
	if bucketsByDay(timeRange) {
		return key.Format("Mon")
	}
	return fmt.Sprintf("W%d", weekOfMonth(key))
}

// validUrge reports whether a record is well-formed enough to aggregate.
// Malformed records are skipped individually; they never fail the batch.
func validUrge(u models.Urge) bool {
	return !u.CreatedAt.IsZero() && u.Intensity >= 1 && u.Intensity <= 10
}

func validEntry(e models.JournalEntry) (time.Time, bool) {
	ts, err := time.ParseInLocation(models.DateLayout, e.Date, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	if e.Mood < 1 || e.Mood > 5 {
		return time.Time{}, false
	}
	return ts, true
}

// IntensityTier classifies an average intensity: >7 high, >5 medium, else low
func IntensityTier(avg float64) models.IntensityTier {
	switch {
	case avg > 7:
		return models.TierHigh
	case avg > 5:
		return models.TierMedium
	default:
		return models.TierLow
	}
}

// TierColor maps an intensity tier to its display color
func TierColor(tier models.IntensityTier) string {
	switch tier {
	case models.TierHigh:
		return colorHigh
	case models.TierMedium:
		return colorMedium
	default:
		return colorLow
	}
}

// MoodTier classifies an average mood. Checked in descending order so the
// inclusive lower bounds resolve 4 to excellent and 3 to good.
func MoodTier(avg float64) models.MoodTier {
	switch {
	case avg >= 4:
		return models.MoodExcellent
	case avg >= 3:
		return models.MoodGood
	case avg >= 2:
		return models.MoodNeutral
	default:
		return models.MoodDifficult
	}
}

// BucketUrges partitions urge records into time buckets for the given range.
// Only keys present in the input appear in the output; zero buckets are not
// synthesized. Output is ordered ascending by bucket key.
func BucketUrges(urges []models.Urge, timeRange models.TimeRange) []models.UrgeBucket {
	type acc struct {
		count    int
		overcome int
		sum      int
	}
	byKey := make(map[time.Time]*acc)

	for _, u := range urges {
		if !validUrge(u) {
			continue
		}
		key := BucketKey(u.CreatedAt, timeRange)
		a, ok := byKey[key]
		if !ok {
			a = &acc{}
			byKey[key] = a
		}
		a.count++
		a.sum += u.Intensity
		if u.Outcome == models.OutcomeResisted {
			a.overcome++
		}
	}

	keys := make([]time.Time, 0, len(byKey))
	for key := range byKey {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })

	buckets := make([]models.UrgeBucket, 0, len(keys))
	for _, key := range keys {
		a := byKey[key]
		avg := float64(a.sum) / float64(a.count)
		tier := IntensityTier(avg)
		buckets = append(buckets, models.UrgeBucket{
			Key:           key,
			Label:         BucketLabel(key, timeRange),
			Count:         a.count,
			OvercomeCount: a.overcome,
			AvgIntensity:  avg,
			Tier:          tier,
			Color:         TierColor(tier),
		})
	}
	return buckets
}

// MoodWeek builds the weekly mood chart: exactly 7 day buckets ending today,
// in chronological order, with zero-value placeholders for days that have no
// journal entry. This is the one place empty buckets are back-filled.
func MoodWeek(entries []models.JournalEntry, now time.Time) []models.MoodBucket {
	type acc struct {
		count int
		sum   int
	}
	byKey := make(map[time.Time]*acc)

	for _, e := range entries {
		ts, ok := validEntry(e)
		if !ok {
			continue
		}
		key := startOfDay(ts)
		a, exists := byKey[key]
		if !exists {
			a = &acc{}
			byKey[key] = a
		}
		a.count++
		a.sum += e.Mood
	}

	buckets := make([]models.MoodBucket, 0, 7)
	for offset := -6; offset <= 0; offset++ {
		key := startOfDay(now).AddDate(0, 0, offset)
		bucket := models.MoodBucket{
			Key:   key,
			Label: key.Format("Mon"),
		}
		if a, ok := byKey[key]; ok {
			bucket.Count = a.count
			bucket.AvgMood = float64(a.sum) / float64(a.count)
			bucket.Tier = MoodTier(bucket.AvgMood)
		}
		buckets = append(buckets, bucket)
	}
	return buckets
}

// BucketMoods partitions journal entries into time buckets for the given
// range, with the same no-synthesis rule as BucketUrges
func BucketMoods(entries []models.JournalEntry, timeRange models.TimeRange) []models.MoodBucket {
	type acc struct {
		count int
		sum   int
	}
	byKey := make(map[time.Time]*acc)

	for _, e := range entries {
		ts, ok := validEntry(e)
		if !ok {
			continue
		}
		key := BucketKey(ts, timeRange)
		a, exists := byKey[key]
		if !exists {
			a = &acc{}
			byKey[key] = a
		}
		a.count++
		a.sum += e.Mood
	}

	keys := make([]time.Time, 0, len(byKey))
	for key := range byKey {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })

	buckets := make([]models.MoodBucket, 0, len(keys))
	for _, key := range keys {
		a := byKey[key]
		avg := float64(a.sum) / float64(a.count)
		buckets = append(buckets, models.MoodBucket{
			Key:     key,
			Label:   BucketLabel(key, timeRange),
			Count:   a.count,
			AvgMood: avg,
			Tier:    MoodTier(avg),
		})
	}
	return buckets
}

// DeriveUrgeStats computes whole-set urge metrics. An empty or fully
// malformed input yields the defined zero result; there is no division by
// zero anywhere in this path.
func DeriveUrgeStats(urges []models.Urge) models.UrgeStats {
	stats := models.UrgeStats{PeakHour: -1, PeakWeekday: -1}

	triggerCounts := make(map[string]int)
	hourCounts := make(map[int]int)
	weekdayCounts := make(map[int]int)
	bestTrigger, bestHour, bestWeekday := 0, 0, 0

	for _, u := range urges {
		if !validUrge(u) {
			continue
		}
		stats.Total++
		if u.Outcome == models.OutcomeResisted {
			stats.OvercomeCount++
		}

		// Ties break toward the first-encountered value in record order
		if u.Trigger != "" {
			triggerCounts[u.Trigger]++
			if triggerCounts[u.Trigger] > bestTrigger {
				bestTrigger = triggerCounts[u.Trigger]
				stats.MostCommonTrigger = u.Trigger
			}
		}

		hour := u.CreatedAt.Hour()
		hourCounts[hour]++
		if hourCounts[hour] > bestHour {
			bestHour = hourCounts[hour]
			stats.PeakHour = hour
		}

		weekday := int(u.CreatedAt.Weekday())
		weekdayCounts[weekday]++
		if weekdayCounts[weekday] > bestWeekday {
			bestWeekday = weekdayCounts[weekday]
			stats.PeakWeekday = weekday
		}
	}

	if stats.Total > 0 {
		stats.OvercomePercentage = int(math.Round(float64(stats.OvercomeCount) / float64(stats.Total) * 100))
	}
	return stats
}

// DeriveJournalStats computes whole-set journal metrics, with the average
// mood rounded to one decimal place
func DeriveJournalStats(entries []models.JournalEntry) models.JournalStats {
	var stats models.JournalStats

	moodCounts := make(map[int]int)
	sum, best := 0, 0

	for _, e := range entries {
		if _, ok := validEntry(e); !ok {
			continue
		}
		stats.TotalEntries++
		sum += e.Mood

		moodCounts[e.Mood]++
		if moodCounts[e.Mood] > best {
			best = moodCounts[e.Mood]
			stats.MostFrequentMood = e.Mood
		}
	}

	if stats.TotalEntries > 0 {
		stats.AverageMood = math.Round(float64(sum)/float64(stats.TotalEntries)*10) / 10
	}
	return stats
}

// TopTriggers groups urges by exact trigger string (case-sensitive, no
// normalization) and returns the five most frequent, descending by count
func TopTriggers(urges []models.Urge) []models.TriggerFrequency {
	counts := make(map[string]int)
	order := make([]string, 0)
	total := 0

	for _, u := range urges {
		if !validUrge(u) {
			continue
		}
		total++
		if u.Trigger == "" {
			continue
		}
		if _, seen := counts[u.Trigger]; !seen {
			order = append(order, u.Trigger)
		}
		counts[u.Trigger]++
	}

	if total == 0 {
		return nil
	}

	// Stable sort keeps first-encountered order among equal counts
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > 5 {
		order = order[:5]
	}

	table := make([]models.TriggerFrequency, 0, len(order))
	for _, trigger := range order {
		table = append(table, models.TriggerFrequency{
			Trigger:    trigger,
			Count:      counts[trigger],
			Percentage: int(math.Round(float64(counts[trigger]) / float64(total) * 100)),
		})
	}
	return table
}
