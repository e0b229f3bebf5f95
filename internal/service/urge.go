package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/reclaim-app/backend/internal/models"
	"github.com/reclaim-app/backend/internal/repository"
)

// ErrUrgeResolved indicates an attempt to change a terminal outcome.
// An urge's outcome is immutable once set.
var ErrUrgeResolved = errors.New("urge already resolved")

type urgeService struct {
	urgeRepo repository.UrgeRepository
}

// NewUrgeService creates a new urge service
func NewUrgeService(urgeRepo repository.UrgeRepository) UrgeService {
	return &urgeService{urgeRepo: urgeRepo}
}

func (s *urgeService) CreateUrge(ctx context.Context, userID string, req *models.CreateUrgeRequest) (*models.Urge, error) {
	urge := &models.Urge{
		UserID:    userID,
		Intensity: req.Intensity,
		Location:  req.Location,
		Trigger:   req.Trigger,
		Notes:     req.Notes,
		Outcome:   models.OutcomePending,
	}

	return s.urgeRepo.Create(ctx, urge)
}

func (s *urgeService) GetUrge(ctx context.Context, userID, urgeID string) (*models.Urge, error) {
	urge, err := s.urgeRepo.GetByID(ctx, urgeID)
	if err != nil {
		return nil, err
	}

	// Ownership check: never leak another user's records
	if urge.UserID != userID {
		return nil, fmt.Errorf("urge not found")
	}

	return urge, nil
}

func (s *urgeService) GetUserUrges(ctx context.Context, userID string) ([]models.Urge, error) {
	return s.urgeRepo.GetByUserID(ctx, userID)
}

func (s *urgeService) GetTodayUrges(ctx context.Context, userID string) ([]models.Urge, error) {
	return s.urgeRepo.GetToday(ctx, userID)
}

func (s *urgeService) ResolveUrge(ctx context.Context, userID, urgeID string, req *models.ResolveUrgeRequest) (*models.Urge, error) {
	existing, err := s.GetUrge(ctx, userID, urgeID)
	if err != nil {
		return nil, err
	}

	if existing.Outcome.Resolved() {
		return nil, ErrUrgeResolved
	}

	if !req.Outcome.Resolved() {
		return nil, fmt.Errorf("outcome must be resisted or indulged")
	}

	return s.urgeRepo.Resolve(ctx, urgeID, req.Outcome)
}
