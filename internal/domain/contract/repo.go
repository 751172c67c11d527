package contract

import (
	"context"

	"github.com/diegoclair/meeting-alarm-bot/internal/domain/entity"
)

// SnapshotStorage defines the contract for a raw snapshot backend.
// Both operations replace or return the whole document.
type SnapshotStorage interface {
	// Read returns nil data and nil error when nothing has been stored yet
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
}

// Snapshotter loads and saves the full schedule state
type Snapshotter interface {
	Load(ctx context.Context) (*entity.Snapshot, error)
	Save(ctx context.Context, snap *entity.Snapshot) error
}
