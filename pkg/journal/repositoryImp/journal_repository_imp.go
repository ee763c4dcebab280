package repositoryImp

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"agriedu/entities"
	"agriedu/pkg/journal/repository"
)

type journalRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.JournalRepository { return &journalRepo{db} }

func (r *journalRepo) Create(ctx context.Context, e *entities.JournalEntry) error {
	if e == nil {
		return errors.New("nil journal entry")
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *journalRepo) Recent(ctx context.Context, limit int) ([]entities.JournalEntry, error) {
	out := []entities.JournalEntry{}
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Limit(limit).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *journalRepo) CountByKind(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Kind string
		N    int64
	}
	err := r.db.WithContext(ctx).Model(&entities.JournalEntry{}).
		Select("kind, COUNT(*) AS n").
		Group("kind").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := map[string]int64{entities.JournalDiagnosis: 0, entities.JournalYield: 0}
	for _, row := range rows {
		out[row.Kind] = row.N
	}
	return out, nil
}
