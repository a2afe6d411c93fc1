package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/quartersapp/quarters/internal/client/storage"
	"github.com/quartersapp/quarters/internal/models"
)

// queueKey единственный ключ в bucket очереди: очередь всегда
// пишется целиком, чтобы состояние на диске соответствовало
// ровно одному поколению изменений.
var queueKey = []byte("queue")

// SaveQueue atomically replaces the persisted queue
func (s *Storage) SaveQueue(ctx context.Context, items []models.QueueItem) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	// Сериализуем очередь в JSON массив
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal queue: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSyncQueue)
		if bucket == nil {
			return fmt.Errorf("sync-queue bucket not found")
		}

		if err := bucket.Put(queueKey, data); err != nil {
			return fmt.Errorf("failed to save queue: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// LoadQueue returns the persisted queue in insertion order
func (s *Storage) LoadQueue(ctx context.Context) ([]models.QueueItem, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	items := []models.QueueItem{}

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSyncQueue)
		if bucket == nil {
			return fmt.Errorf("sync-queue bucket not found")
		}

		data := bucket.Get(queueKey)
		if data == nil {
			// Очередь еще не сохранялась - возвращаем пустую
			return nil
		}

		if err := json.Unmarshal(data, &items); err != nil {
			return fmt.Errorf("failed to unmarshal queue: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return items, nil
}
