package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRepository_ReadEmpty(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newSnapshotRepository(db.conn)

	data, err := repo.Read(context.Background())
	require.NoError(t, err, "Unexpected error when no snapshot stored")
	assert.Nil(t, data, "Expected nil data when no snapshot stored")
}

func TestSnapshotRepository_WriteRead(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newSnapshotRepository(db.conn)
	ctx := context.Background()

	err := repo.Write(ctx, []byte(`{"version":"1.0"}`))
	require.NoError(t, err, "Failed to write snapshot")

	data, err := repo.Read(ctx)
	require.NoError(t, err, "Failed to read snapshot")
	assert.JSONEq(t, `{"version":"1.0"}`, string(data))
}

func TestSnapshotRepository_WriteReplaces(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newSnapshotRepository(db.conn)
	ctx := context.Background()

	require.NoError(t, repo.Write(ctx, []byte(`{"version":"1.0","schedule_guild":{}}`)))
	require.NoError(t, repo.Write(ctx, []byte(`{"version":"1.0","schedule_dm":{}}`)))

	data, err := repo.Read(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":"1.0","schedule_dm":{}}`, string(data))

	var rows int
	err = db.conn.QueryRow(`SELECT COUNT(*) FROM snapshots`).Scan(&rows)
	require.NoError(t, err)
	assert.Equal(t, 1, rows, "Expected a single snapshot row")
}
