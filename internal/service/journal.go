package service

import (
	"context"
	"fmt"
	"time"

	"github.com/reclaim-app/backend/internal/models"
	"github.com/reclaim-app/backend/internal/repository"
)

type journalService struct {
	journalRepo repository.JournalRepository
}

// NewJournalService creates a new journal service
func NewJournalService(journalRepo repository.JournalRepository) JournalService {
	return &journalService{journalRepo: journalRepo}
}

func (s *journalService) GetUserEntries(ctx context.Context, userID string) ([]models.JournalEntry, error) {
	return s.journalRepo.GetByUserID(ctx, userID)
}

func (s *journalService) GetEntry(ctx context.Context, userID, date string) (*models.JournalEntry, error) {
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	return s.journalRepo.GetByDate(ctx, userID, date)
}

func (s *journalService) UpsertEntry(ctx context.Context, userID, date string, req *models.UpsertJournalRequest) (*models.JournalEntry, error) {
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	entry := &models.JournalEntry{
		UserID:           userID,
		Date:             date,
		Mood:             req.Mood,
		Content:          req.Content,
		EntryType:        req.EntryType,
		Emotions:         req.Emotions,
		Triggers:         req.Triggers,
		CopingStrategies: req.CopingStrategies,
		Gratitude:        req.Gratitude,
		Goals:            req.Goals,
	}

	return s.journalRepo.Upsert(ctx, entry)
}
