package repositoryImp

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agriedu/database"
	"agriedu/entities"
)

func TestJournalRepo_CreateRecentCount(t *testing.T) {
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	repo := New(db)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	for i, kind := range []string{entities.JournalDiagnosis, entities.JournalYield, entities.JournalDiagnosis} {
		e := &entities.JournalEntry{Kind: kind, RefID: kind, CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		require.NoError(t, repo.Create(ctx, e))
		assert.Len(t, e.ID, 36, "uuid assigned")
	}

	recent, err := repo.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.True(t, recent[0].CreatedAt.After(recent[1].CreatedAt), "newest first")
	assert.Equal(t, entities.JournalDiagnosis, recent[0].Kind)

	totals, err := repo.CountByKind(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), totals[entities.JournalDiagnosis])
	assert.Equal(t, int64(1), totals[entities.JournalYield])
}

func TestJournalRepo_EmptyAndNil(t *testing.T) {
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	repo := New(db)
	ctx := context.Background()

	recent, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	assert.NotNil(t, recent)
	assert.Empty(t, recent)

	totals, err := repo.CountByKind(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{entities.JournalDiagnosis: 0, entities.JournalYield: 0}, totals)

	assert.Error(t, repo.Create(ctx, nil))
}
