package mysql

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/demobank/banking-api/internal/core/domain"
)

func TestLogRepository_Insert(t *testing.T) {
	db, mock := newMock(t)
	repo := NewLogRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO logs (description, type) VALUES (?, ?)")).
		WithArgs("GET /user/getUser", 1).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Insert(context.Background(), domain.LogEntry{Description: "GET /user/getUser", Kind: domain.LogRead})
	if err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}
	expectMet(t, mock)
}

func TestLogRepository_Stats(t *testing.T) {
	db, mock := newMock(t)
	repo := NewLogRepository(db)

	mock.ExpectQuery("SELECT").
		WillReturnRows(sqlmock.NewRows([]string{"reads", "writes", "total"}).AddRow(7, 3, 10))

	stats, err := repo.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}
	if stats.Reads != 7 || stats.Writes != 3 || stats.Total != 10 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	expectMet(t, mock)
}

func TestLogRepository_Recent(t *testing.T) {
	db, mock := newMock(t)
	repo := NewLogRepository(db)

	now := time.Now()
	mock.ExpectQuery("SELECT id, description, type, created_at").
		WithArgs(20).
		WillReturnRows(sqlmock.NewRows([]string{"id", "description", "type", "created_at"}).
			AddRow(10, "POST /account/deposit/3", 2, now).
			AddRow(9, "GET /traffic/stats", 1, now))

	entries, err := repo.Recent(context.Background(), 20)
	if err != nil {
		t.Fatalf("Recent returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Kind != domain.LogWrite || entries[1].Kind != domain.LogRead {
		t.Fatalf("unexpected entries: %+v", entries)
	}
	expectMet(t, mock)
}
