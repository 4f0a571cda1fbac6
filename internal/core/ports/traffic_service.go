package ports

import (
	"context"

	"github.com/demobank/banking-api/internal/core/domain"
)

// TrafficResult bundles the aggregate counters with the most recent entries.
type TrafficResult struct {
	Stats  domain.TrafficStats
	Recent []domain.LogEntry
}

// TrafficService serves the read/write traffic dashboard.
type TrafficService interface {
	Overview(ctx context.Context) (*TrafficResult, error)
}
