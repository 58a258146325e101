package runlog

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestLedger(t *testing.T, path string) *Ledger {
	t.Helper()
	l, err := Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { l.Close() })
	return l
}

func TestRecordAndRecent(t *testing.T) {
	l := openTestLedger(t, filepath.Join(t.TempDir(), "runs.db"))
	ctx := context.Background()

	start := time.Now().Add(-time.Minute)
	_, err := l.Record(ctx, Run{
		Kind: KindBuild, StartedAt: start, FinishedAt: time.Now(),
		Strains: 97334, Wells: 412, Enzymes: 120, Success: true,
	})
	require.NoError(t, err)

	_, err = l.Record(ctx, Run{
		Kind: KindValidate, StartedAt: time.Now(), FinishedAt: time.Now(),
		Errors: 3, Warnings: 7, Success: false,
	})
	require.NoError(t, err)

	runs, err := l.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// Newest first.
	assert.Equal(t, KindValidate, runs[0].Kind)
	assert.False(t, runs[0].Success)
	assert.Equal(t, 3, runs[0].Errors)
	assert.Equal(t, KindBuild, runs[1].Kind)
	assert.True(t, runs[1].Success)
	assert.Equal(t, 97334, runs[1].Strains)
}

func TestRecentLimit(t *testing.T) {
	l := openTestLedger(t, filepath.Join(t.TempDir(), "runs.db"))
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := l.Record(ctx, Run{Kind: KindBuild, StartedAt: time.Now(), FinishedAt: time.Now(), Success: true})
		require.NoError(t, err)
	}

	runs, err := l.Recent(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestLedgerPersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	ctx := context.Background()

	first, err := Open(ctx, path)
	require.NoError(t, err)
	_, err = first.Record(ctx, Run{Kind: KindBuild, StartedAt: time.Now(), FinishedAt: time.Now(), Success: true})
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second := openTestLedger(t, path)
	runs, err := second.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}
