package service

import (
	"context"
	"testing"
	"time"

	"github.com/reclaim-app/backend/internal/models"
)

func TestGetDashboard(t *testing.T) {
	ctx := context.Background()
	urgeRepo := newMockUrgeRepository()
	journalRepo := newMockJournalRepository()
	streakRepo := newMockStreakRepository()

	now := time.Now()
	resisted := makeUrge("u1", now.Add(-time.Minute), 5, "stress", models.OutcomeResisted)
	pending := makeUrge("u1", now.AddDate(0, 0, -2), 8, "boredom", models.OutcomePending)
	urgeRepo.urges[resisted.ID] = &resisted
	urgeRepo.urges[pending.ID] = &pending

	journalRepo.entries[journalKey("u1", now.Format(models.DateLayout))] = &models.JournalEntry{
		UserID: "u1",
		Date:   now.Format(models.DateLayout),
		Mood:   4,
	}

	streakRepo.streaks["u1"] = &models.Streak{UserID: "u1", CurrentStreak: 7, BestStreak: 7}

	svc := NewDashboardService(urgeRepo, journalRepo, streakRepo)
	summary, err := svc.GetDashboard(ctx, "u1")
	if err != nil {
		t.Fatalf("GetDashboard: %v", err)
	}

	if summary.Streak == nil || summary.Streak.CurrentStreak != 7 {
		t.Errorf("streak = %+v, want current 7", summary.Streak)
	}
	if summary.TodayUrgeCount != 1 {
		t.Errorf("today count = %d, want 1", summary.TodayUrgeCount)
	}
	if summary.UrgeStats.Total != 2 || summary.UrgeStats.OvercomeCount != 1 {
		t.Errorf("urge stats = %+v, want total 2 overcome 1", summary.UrgeStats)
	}
	if summary.JournalStats.TotalEntries != 1 {
		t.Errorf("journal stats = %+v, want 1 entry", summary.JournalStats)
	}
	if len(summary.Achievements) != len(Catalog) {
		t.Errorf("got %d achievements, want full catalog", len(summary.Achievements))
	}
	if summary.MilestoneMessage != milestoneMessages[7] {
		t.Errorf("milestone = %q, want the 7-day message", summary.MilestoneMessage)
	}
}

// One failing source degrades to empty without sinking the whole dashboard
func TestGetDashboardDegradesPerSource(t *testing.T) {
	urgeRepo := newMockUrgeRepository()
	urgeRepo.err = errStoreDown
	journalRepo := newMockJournalRepository()
	streakRepo := newMockStreakRepository()
	streakRepo.streaks["u1"] = &models.Streak{UserID: "u1", CurrentStreak: 3}

	svc := NewDashboardService(urgeRepo, journalRepo, streakRepo)
	summary, err := svc.GetDashboard(context.Background(), "u1")
	if err != nil {
		t.Fatalf("expected degraded dashboard, got error: %v", err)
	}

	if summary.UrgeStats.Total != 0 || summary.TodayUrgeCount != 0 {
		t.Errorf("failed source not degraded to empty: %+v", summary.UrgeStats)
	}
	// Healthy sources still come through
	if summary.Streak == nil || summary.Streak.CurrentStreak != 3 {
		t.Errorf("healthy streak lost: %+v", summary.Streak)
	}
}

func TestGetDashboardAllSourcesDown(t *testing.T) {
	urgeRepo := newMockUrgeRepository()
	urgeRepo.err = errStoreDown
	journalRepo := newMockJournalRepository()
	journalRepo.err = errStoreDown
	streakRepo := newMockStreakRepository()
	streakRepo.err = errStoreDown

	svc := NewDashboardService(urgeRepo, journalRepo, streakRepo)
	summary, err := svc.GetDashboard(context.Background(), "u1")
	if err != nil {
		t.Fatalf("total outage should still render: %v", err)
	}

	if summary.Streak != nil {
		t.Errorf("streak = %+v, want nil", summary.Streak)
	}
	if summary.Insights != nil {
		t.Errorf("insights = %+v, want none", summary.Insights)
	}
	if summary.MilestoneMessage == "" {
		t.Error("milestone message missing even in the empty state")
	}
}
