package service

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/notitech/internal/notitech/domain"
	"github.com/aussiebroadwan/notitech/internal/notitech/store"
)

type StatisticsService struct {
	Store store.Store
	Auth  *AuthService
}

// Get returns the user's counters, creating the statistics row on first use.
func (s *StatisticsService) Get(ctx context.Context, userID string) (domain.Statistics, error) {
	st, err := s.Store.Statistics().GetStatistics(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		if err := s.Store.Statistics().EnsureStatistics(ctx, userID); err != nil {
			return domain.Statistics{}, resourceError(ctx, "create statistics", err)
		}
		st, err = s.Store.Statistics().GetStatistics(ctx, userID)
	}
	if err != nil {
		return domain.Statistics{}, resourceError(ctx, "get statistics", err)
	}
	return st, nil
}

// RecordAppUsage shares its counter with AuthService.RecordAppUsage.
func (s *StatisticsService) RecordAppUsage(ctx context.Context, userID string) (int64, error) {
	if err := s.Store.Statistics().EnsureStatistics(ctx, userID); err != nil {
		return 0, resourceError(ctx, "create statistics", err)
	}
	return s.Auth.RecordAppUsage(ctx, userID)
}
