package domain

import "time"

// LogKind classifies a logged request for the traffic dashboard.
type LogKind int

const (
	LogRead  LogKind = 1
	LogWrite LogKind = 2
)

// LogEntry is an append-only request log row. Entries are written
// opportunistically; losing one is acceptable.
type LogEntry struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Kind        LogKind   `json:"type"`
	CreatedAt   time.Time `json:"created_at"`
}

// TrafficStats aggregates the log table for dashboard consumption.
type TrafficStats struct {
	Reads  int64 `json:"reads"`
	Writes int64 `json:"writes"`
	Total  int64 `json:"total"`
}
