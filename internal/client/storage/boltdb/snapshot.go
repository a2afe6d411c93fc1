package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"go.etcd.io/bbolt"

	"github.com/quartersapp/quarters/internal/client/storage"
	"github.com/quartersapp/quarters/internal/models"
)

// SaveSnapshot stores or overwrites the snapshot for its entity key
func (s *Storage) SaveSnapshot(ctx context.Context, snapshot *models.LocalSnapshot) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}
	if snapshot.EntityKey == "" {
		return fmt.Errorf("snapshot entity key cannot be empty")
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketGameState)
		if bucket == nil {
			return fmt.Errorf("game-state bucket not found")
		}

		if err := bucket.Put([]byte(snapshot.EntityKey), data); err != nil {
			return fmt.Errorf("failed to save snapshot: %w", err)
		}

		return nil
	})
}

// GetSnapshot retrieves the snapshot for the entity key
func (s *Storage) GetSnapshot(ctx context.Context, entityKey string) (*models.LocalSnapshot, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var snapshot *models.LocalSnapshot

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketGameState)
		if bucket == nil {
			return fmt.Errorf("game-state bucket not found")
		}

		data := bucket.Get([]byte(entityKey))
		if data == nil {
			return storage.ErrSnapshotNotFound
		}

		snapshot = &models.LocalSnapshot{}
		if err := json.Unmarshal(data, snapshot); err != nil {
			return fmt.Errorf("failed to unmarshal snapshot: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return snapshot, nil
}

// ListSnapshots returns all stored snapshots, most recently saved first
func (s *Storage) ListSnapshots(ctx context.Context) ([]models.LocalSnapshot, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var snapshots []models.LocalSnapshot

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketGameState)
		if bucket == nil {
			return fmt.Errorf("game-state bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			var snapshot models.LocalSnapshot
			if err := json.Unmarshal(v, &snapshot); err != nil {
				return fmt.Errorf("failed to unmarshal snapshot %s: %w", string(k), err)
			}
			snapshots = append(snapshots, snapshot)
			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].SavedAt.After(snapshots[j].SavedAt)
	})

	return snapshots, nil
}

// DeleteSnapshot removes the snapshot for the entity key.
// Удаление отсутствующего снапшота не считается ошибкой:
// вызывающий чистит состояние после завершения раунда.
func (s *Storage) DeleteSnapshot(ctx context.Context, entityKey string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketGameState)
		if bucket == nil {
			return fmt.Errorf("game-state bucket not found")
		}

		if err := bucket.Delete([]byte(entityKey)); err != nil {
			return fmt.Errorf("failed to delete snapshot: %w", err)
		}

		return nil
	})
}
