package repository

import (
	"context"

	"agriedu/entities"
)

type JournalRepository interface {
	Create(ctx context.Context, e *entities.JournalEntry) error
	// Recent returns up to limit entries, newest first.
	Recent(ctx context.Context, limit int) ([]entities.JournalEntry, error)
	CountByKind(ctx context.Context) (map[string]int64, error)
}
