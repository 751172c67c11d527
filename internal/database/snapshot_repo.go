package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/diegoclair/meeting-alarm-bot/internal/domain/contract"
)

// snapshotID is the only row of the snapshots table
const snapshotID = 1

type snapshotRepository struct {
	db dbConn
}

// NewSnapshotRepository stores the snapshot document in a single SQLite row
func NewSnapshotRepository(db *DB) contract.SnapshotStorage {
	return newSnapshotRepository(db.conn)
}

func newSnapshotRepository(db dbConn) *snapshotRepository {
	return &snapshotRepository{db: db}
}

func (r *snapshotRepository) Read(ctx context.Context) ([]byte, error) {
	query := `
		SELECT data
		FROM snapshots
		WHERE id = ?
	`

	var data []byte
	err := r.db.QueryRowContext(ctx, query, snapshotID).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}
	if data == nil {
		data = []byte{}
	}

	return data, nil
}

func (r *snapshotRepository) Write(ctx context.Context, data []byte) error {
	query := `
		INSERT INTO snapshots (id, data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at
	`

	_, err := r.db.ExecContext(ctx, query, snapshotID, data, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}
