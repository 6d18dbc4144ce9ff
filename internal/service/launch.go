package service

import (
	"context"
	"fmt"

	"wordbank/internal/repository"
)

// LaunchService tracks whether a user has already seen the welcome screens
type LaunchService struct {
	slots repository.SlotRepository
}

// NewLaunchService creates a new launch service
func NewLaunchService(slots repository.SlotRepository) *LaunchService {
	return &LaunchService{slots: slots}
}

// HasLaunched reports whether the first-launch flag is set
func (s *LaunchService) HasLaunched(ctx context.Context, userID int64) (bool, error) {
	value, ok, err := s.slots.GetSlot(ctx, userID, repository.SlotHasLaunched)
	if err != nil {
		return false, fmt.Errorf("read launch flag: %w", err)
	}
	return ok && value != "", nil
}

// MarkLaunched sets the first-launch flag
func (s *LaunchService) MarkLaunched(ctx context.Context, userID int64) error {
	if err := s.slots.SetSlot(ctx, userID, repository.SlotHasLaunched, "true"); err != nil {
		return fmt.Errorf("write launch flag: %w", err)
	}
	return nil
}
