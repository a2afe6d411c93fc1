package storage

import (
	"context"
	"time"

	"github.com/quartersapp/quarters/internal/models"
)

//go:generate moq -out syncstate_mock.go . SyncStateStorage

// SyncStateStorage defines interface for sync bookkeeping: the time of the
// last successful delivery and the bounded buffer of recent sync errors.
type SyncStateStorage interface {
	// SaveLastSync stores the time of the last successful delivery
	SaveLastSync(ctx context.Context, ts time.Time) error

	// GetLastSync retrieves the time of the last successful delivery.
	// Returns the zero time if no sync has succeeded yet
	GetLastSync(ctx context.Context) (time.Time, error)

	// SaveErrors replaces the stored error buffer
	SaveErrors(ctx context.Context, errs []models.SyncError) error

	// LoadErrors returns the stored error buffer, newest last.
	// Returns an empty slice when no errors have been recorded
	LoadErrors(ctx context.Context) ([]models.SyncError, error)
}
