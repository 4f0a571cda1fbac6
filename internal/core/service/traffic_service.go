package service

import (
	"context"

	"github.com/demobank/banking-api/internal/core/domain"
	"github.com/demobank/banking-api/internal/core/ports"
)

const recentLogLimit = 20

// TrafficService aggregates the request log for the dashboard.
type TrafficService struct {
	logs ports.LogRepository
}

func NewTrafficService(logs ports.LogRepository) *TrafficService {
	return &TrafficService{logs: logs}
}

func (s *TrafficService) Overview(ctx context.Context) (*ports.TrafficResult, error) {
	stats, err := s.logs.Stats(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.logs.Recent(ctx, recentLogLimit)
	if err != nil {
		return nil, err
	}
	if recent == nil {
		recent = []domain.LogEntry{}
	}

	return &ports.TrafficResult{Stats: stats, Recent: recent}, nil
}
