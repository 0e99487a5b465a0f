package services

import (
	"context"
	"errors"

	"imagevault/internal/common"
	"imagevault/internal/logging"
	"imagevault/internal/models"
	"imagevault/internal/repositories/accesslogs"
)

// TrackingService counts authenticated accesses by display name.
type TrackingService struct {
	repo   accesslogs.Repository
	logger logging.Logger
}

func NewTrackingService(repo accesslogs.Repository, logger logging.Logger) *TrackingService {
	return &TrackingService{repo: repo, logger: logger}
}

// Record appends one access entry for the given display name.
func (s *TrackingService) Record(ctx context.Context, username string) (*models.AccessLog, error) {
	if username == "" {
		return nil, common.ErrInvalidInput
	}

	entry, err := s.repo.Create(ctx, username)
	if err != nil {
		return nil, err
	}

	s.logger.Debug(ctx, "access recorded", "username", username)
	return entry, nil
}

// Stats aggregates the log. LastUser is nil when the log is empty, and
// UniqueUsers is always non-nil so it serializes as [] rather than null.
func (s *TrackingService) Stats(ctx context.Context) (*models.TrackingStats, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	unique, err := s.repo.UniqueUsernames(ctx)
	if err != nil {
		return nil, err
	}
	if unique == nil {
		unique = []string{}
	}

	stats := &models.TrackingStats{
		TotalAccesses: total,
		UniqueUsers:   unique,
	}

	last, err := s.repo.Last(ctx)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return stats, nil
		}
		return nil, err
	}
	stats.LastUser = &last.Username

	return stats, nil
}

// List returns the raw log, newest first.
func (s *TrackingService) List(ctx context.Context) ([]*models.AccessLog, error) {
	return s.repo.List(ctx)
}

// Clear empties the log.
func (s *TrackingService) Clear(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return err
	}
	s.logger.Info(ctx, "access log cleared")
	return nil
}
