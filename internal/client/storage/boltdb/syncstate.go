package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/quartersapp/quarters/internal/client/storage"
	"github.com/quartersapp/quarters/internal/models"
)

const (
	keyLastSync   = "last-sync"
	keySyncErrors = "sync-errors"
)

// SaveLastSync stores the time of the last successful delivery.
// Хранится строкой RFC 3339, чтобы содержимое БД было читаемым при отладке.
func (s *Storage) SaveLastSync(ctx context.Context, ts time.Time) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSyncMeta)
		if bucket == nil {
			return fmt.Errorf("sync-meta bucket not found")
		}

		value := ts.UTC().Format(time.RFC3339Nano)
		if err := bucket.Put([]byte(keyLastSync), []byte(value)); err != nil {
			return fmt.Errorf("failed to save last sync time: %w", err)
		}

		return nil
	})
}

// GetLastSync retrieves the time of the last successful delivery.
// Returns the zero time if no sync has succeeded yet
func (s *Storage) GetLastSync(ctx context.Context) (time.Time, error) {
	if s.db == nil {
		return time.Time{}, storage.ErrStorageClosed
	}

	var ts time.Time

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSyncMeta)
		if bucket == nil {
			return fmt.Errorf("sync-meta bucket not found")
		}

		data := bucket.Get([]byte(keyLastSync))
		if data == nil {
			// Синхронизаций еще не было
			return nil
		}

		parsed, err := time.Parse(time.RFC3339Nano, string(data))
		if err != nil {
			return fmt.Errorf("failed to parse last sync time: %w", err)
		}
		ts = parsed

		return nil
	})

	if err != nil {
		return time.Time{}, err
	}

	return ts, nil
}

// SaveErrors replaces the stored sync error buffer
func (s *Storage) SaveErrors(ctx context.Context, errs []models.SyncError) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(errs)
	if err != nil {
		return fmt.Errorf("failed to marshal sync errors: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSyncMeta)
		if bucket == nil {
			return fmt.Errorf("sync-meta bucket not found")
		}

		if err := bucket.Put([]byte(keySyncErrors), data); err != nil {
			return fmt.Errorf("failed to save sync errors: %w", err)
		}

		return nil
	})
}

// LoadErrors returns the stored sync error buffer, newest last
func (s *Storage) LoadErrors(ctx context.Context) ([]models.SyncError, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	errs := []models.SyncError{}

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSyncMeta)
		if bucket == nil {
			return fmt.Errorf("sync-meta bucket not found")
		}

		data := bucket.Get([]byte(keySyncErrors))
		if data == nil {
			// Ошибок еще не записывали
			return nil
		}

		if err := json.Unmarshal(data, &errs); err != nil {
			return fmt.Errorf("failed to unmarshal sync errors: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return errs, nil
}
