package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/demobank/banking-api/internal/core/domain"
)

// LogRepository appends and aggregates request log rows for the traffic
// dashboard.
type LogRepository struct {
	db *sql.DB
}

func NewLogRepository(db *sql.DB) *LogRepository {
	return &LogRepository{db: db}
}

func (r *LogRepository) Insert(ctx context.Context, entry domain.LogEntry) error {
	if _, err := r.db.ExecContext(ctx,
		"INSERT INTO logs (description, type) VALUES (?, ?)",
		entry.Description, int(entry.Kind)); err != nil {
		return fmt.Errorf("insert log: %w", err)
	}
	return nil
}

func (r *LogRepository) Stats(ctx context.Context) (domain.TrafficStats, error) {
	var stats domain.TrafficStats
	err := r.db.QueryRowContext(ctx, `
		SELECT
			COALESCE(SUM(type = 1), 0),
			COALESCE(SUM(type = 2), 0),
			COUNT(*)
		FROM logs`).Scan(&stats.Reads, &stats.Writes, &stats.Total)
	if err != nil {
		return domain.TrafficStats{}, fmt.Errorf("log stats: %w", err)
	}
	return stats, nil
}

func (r *LogRepository) Recent(ctx context.Context, limit int) ([]domain.LogEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, description, type, created_at
		FROM logs
		ORDER BY id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent logs: %w", err)
	}
	defer rows.Close()

	var entries []domain.LogEntry
	for rows.Next() {
		var e domain.LogEntry
		var kind int
		if err := rows.Scan(&e.ID, &e.Description, &kind, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan log: %w", err)
		}
		e.Kind = domain.LogKind(kind)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
