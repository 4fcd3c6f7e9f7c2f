package service

import (
	"context"
	"time"

	"kuchi/restaurant-svc/internal/domain"
)

const defaultRecentLimit = 20

type ActivitySummary struct {
	Date   string            `json:"date"`
	Counts map[string]int64  `json:"counts"`
	Recent []domain.LogEntry `json:"recent"`
}

type ActivityServiceInterface interface {
	Summary(ctx context.Context, p *domain.Principal, day time.Time) (*ActivitySummary, error)
}

// ActivityService reads the per-day counters aggregated by activity-svc.
type ActivityService struct {
	Store       ActivityStore
	RecentLimit int64
}

func NewActivityService(store ActivityStore) *ActivityService {
	return &ActivityService{Store: store, RecentLimit: defaultRecentLimit}
}

func (s *ActivityService) Summary(ctx context.Context, p *domain.Principal, day time.Time) (*ActivitySummary, error) {
	summary := &ActivitySummary{
		Date:   day.UTC().Format("2006-01-02"),
		Counts: map[string]int64{},
		Recent: []domain.LogEntry{},
	}
	if s.Store == nil {
		return summary, nil
	}

	counts, err := s.Store.DailyCounts(ctx, p.RestaurantID, day)
	if err != nil {
		return nil, err
	}
	recent, err := s.Store.RecentEvents(ctx, p.RestaurantID, s.RecentLimit)
	if err != nil {
		return nil, err
	}
	summary.Counts = counts
	summary.Recent = recent
	return summary, nil
}
