package ports

import (
	"context"

	"github.com/demobank/banking-api/internal/core/domain"
)

// LogRepository appends and aggregates request log rows.
type LogRepository interface {
	Insert(ctx context.Context, entry domain.LogEntry) error
	Stats(ctx context.Context) (domain.TrafficStats, error)
	Recent(ctx context.Context, limit int) ([]domain.LogEntry, error)
}
