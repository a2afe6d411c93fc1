package storage

import (
	"context"

	"github.com/quartersapp/quarters/internal/models"
)

//go:generate moq -out queuestorage_mock.go . QueueStorage

// QueueStorage defines interface for persisting the pending mutation queue.
// The queue is always written as a whole: a crash between an enqueue and the
// next sync pass must never lose a mutation, so every mutating call replaces
// the stored list atomically.
type QueueStorage interface {
	// SaveQueue atomically replaces the persisted queue with items
	SaveQueue(ctx context.Context, items []models.QueueItem) error

	// LoadQueue returns the persisted queue in insertion order.
	// Returns an empty slice when nothing has been queued yet
	LoadQueue(ctx context.Context) ([]models.QueueItem, error)
}
