package storage

import (
	"context"

	"github.com/quartersapp/quarters/internal/models"
)

//go:generate moq -out snapshotstorage_mock.go . SnapshotStorage

// SnapshotStorage defines interface for storing per-game local snapshots.
// A snapshot is the last state the UI committed locally, independent of
// whether the matching mutation has reached the server.
type SnapshotStorage interface {
	// SaveSnapshot stores or overwrites the snapshot for its entity key
	SaveSnapshot(ctx context.Context, snapshot *models.LocalSnapshot) error

	// GetSnapshot retrieves the snapshot for the entity key.
	// Returns ErrSnapshotNotFound if no snapshot exists
	GetSnapshot(ctx context.Context, entityKey string) (*models.LocalSnapshot, error)

	// ListSnapshots returns all stored snapshots, most recently saved first
	ListSnapshots(ctx context.Context) ([]models.LocalSnapshot, error)

	// DeleteSnapshot removes the snapshot for the entity key.
	// Deleting a missing snapshot is not an error
	DeleteSnapshot(ctx context.Context, entityKey string) error
}
