package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/reclaim-app/backend/internal/models"
)

func TestWindowForHour(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{5, "morning"},
		{11, "morning"},
		{12, "afternoon"},
		{16, "afternoon"},
		{17, "evening"},
		{20, "evening"},
		{21, "night"},
		{23, "night"},
		{0, "night"}, // wraps midnight
		{4, "night"},
	}

	for _, tt := range tests {
		if got := windowForHour(tt.hour); got.name != tt.want {
			t.Errorf("windowForHour(%d) = %q, want %q", tt.hour, got.name, tt.want)
		}
	}
}

func TestDeriveInsightsBelowMinimum(t *testing.T) {
	base := time.Date(2026, 8, 10, 9, 0, 0, 0, time.Local)
	urges := []models.Urge{
		makeUrge("u1", base, 5, "", models.OutcomePending),
		makeUrge("u1", base, 5, "", models.OutcomePending),
	}

	if got := DeriveInsights(urges); got != nil {
		t.Errorf("two urges produced insights: %+v", got)
	}
	if got := DeriveInsights(nil); got != nil {
		t.Errorf("nil input produced insights: %+v", got)
	}
}

// Malformed records don't count toward the minimum sample size
func TestDeriveInsightsMalformedBelowMinimum(t *testing.T) {
	base := time.Date(2026, 8, 10, 9, 0, 0, 0, time.Local)
	urges := []models.Urge{
		makeUrge("u1", base, 5, "", models.OutcomePending),
		makeUrge("u1", base, 5, "", models.OutcomePending),
		makeUrge("u1", time.Time{}, 5, "", models.OutcomePending),
		makeUrge("u1", base, 0, "", models.OutcomePending),
	}

	if got := DeriveInsights(urges); got != nil {
		t.Errorf("only two valid urges but got insights: %+v", got)
	}
}

func TestDeriveInsightsPeakWindow(t *testing.T) {
	day := time.Date(2026, 8, 10, 0, 0, 0, 0, time.Local)
	urges := []models.Urge{
		makeUrge("u1", day.Add(8*time.Hour), 5, "", models.OutcomePending),
		makeUrge("u1", day.Add(8*time.Hour), 6, "", models.OutcomePending),
		makeUrge("u1", day.Add(14*time.Hour), 4, "", models.OutcomePending),
	}

	insights := DeriveInsights(urges)
	if len(insights) != 1 {
		t.Fatalf("got %d insights, want 1", len(insights))
	}

	in := insights[0]
	if !strings.Contains(in.Description, "morning (5am-12pm)") {
		t.Errorf("description %q does not name the morning window", in.Description)
	}
	// The percentage reflects only the peak hour's share: round(2/3*100) = 67
	if !strings.Contains(in.Description, "67%") {
		t.Errorf("description %q does not carry the 67%% peak-hour share", in.Description)
	}
	if !strings.Contains(in.Description, "8am") {
		t.Errorf("description %q does not name the 8am peak", in.Description)
	}
	if in.Confidence != 15 {
		t.Errorf("confidence = %d, want 15 for a 3-urge sample", in.Confidence)
	}
	if in.SuggestedAction == "" {
		t.Error("insight missing suggested action")
	}
}

func TestDeriveInsightsConfidence(t *testing.T) {
	day := time.Date(2026, 8, 10, 0, 0, 0, 0, time.Local)

	build := func(n int) []models.Urge {
		urges := make([]models.Urge, 0, n)
		for i := 0; i < n; i++ {
			urges = append(urges, makeUrge("u1", day.Add(9*time.Hour), 5, "", models.OutcomePending))
		}
		return urges
	}

	tests := []struct {
		count int
		want  int
	}{
		{3, 15},
		{10, 50},
		{18, 90},
		{1000, 90}, // capped
	}

	for _, tt := range tests {
		insights := DeriveInsights(build(tt.count))
		if len(insights) != 1 {
			t.Fatalf("count %d: got %d insights, want 1", tt.count, len(insights))
		}
		if insights[0].Confidence != tt.want {
			t.Errorf("count %d: confidence = %d, want %d", tt.count, insights[0].Confidence, tt.want)
		}
	}
}

func TestFormatHour(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, "12am"},
		{1, "1am"},
		{11, "11am"},
		{12, "12pm"},
		{13, "1pm"},
		{23, "11pm"},
	}

	for _, tt := range tests {
		if got := formatHour(tt.hour); got != tt.want {
			t.Errorf("formatHour(%d) = %q, want %q", tt.hour, got, tt.want)
		}
	}
}

func TestGetInsightsDegradesOnStoreFailure(t *testing.T) {
	urgeRepo := newMockUrgeRepository()
	urgeRepo.err = errStoreDown
	svc := NewInsightService(urgeRepo)

	insights, err := svc.GetInsights(context.Background(), "u1")
	if err != nil {
		t.Fatalf("expected degraded result, got error: %v", err)
	}
	if insights != nil {
		t.Errorf("degraded insights = %+v, want nil", insights)
	}
}
