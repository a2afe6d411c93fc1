// Package queue реализует очередь отложенных мутаций поверх локального
// хранилища.
//
// Очередь хранится целиком: каждая мутирующая операция сохраняет полный
// список одной транзакцией, поэтому обрыв процесса не оставляет очередь
// в частично записанном состоянии.
package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/quartersapp/quarters/internal/client/storage"
	"github.com/quartersapp/quarters/internal/merge"
	"github.com/quartersapp/quarters/internal/models"
)

// EnqueueOption настраивает добавляемую мутацию
type EnqueueOption func(*models.QueueItem)

// WithPriority задает приоритет мутации (по умолчанию normal)
func WithPriority(p models.Priority) EnqueueOption {
	return func(item *models.QueueItem) {
		item.Priority = p
	}
}

// Store управляет очередью мутаций
type Store struct {
	storage storage.QueueStorage
	policy  *merge.Policy
	clock   clockwork.Clock
	logger  *slog.Logger
}

// NewStore создает очередь мутаций
func NewStore(st storage.QueueStorage, policy *merge.Policy, clock clockwork.Clock, logger *slog.Logger) *Store {
	return &Store{
		storage: st,
		policy:  policy,
		clock:   clock,
		logger:  logger,
	}
}

// Enqueue добавляет мутацию в очередь. Для сливаемых типов повторная
// мутация той же пары (entityKey, kind) сливается в уже стоящий в
// очереди элемент, поэтому для таких пар в очереди не бывает дублей.
// Возвращает ID элемента очереди.
func (s *Store) Enqueue(ctx context.Context, entityKey string, kind models.MutationKind, payload map[string]any, opts ...EnqueueOption) (string, error) {
	items, err := s.storage.LoadQueue(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load queue: %w", err)
	}

	now := s.clock.Now()

	if s.policy.Mergeable(kind) {
		for i := range items {
			if items[i].EntityKey == entityKey && items[i].Kind == kind {
				items[i].Payload = s.policy.Merge(items[i].Payload, payload)
				items[i].UpdatedAt = now

				if err := s.storage.SaveQueue(ctx, items); err != nil {
					return "", fmt.Errorf("failed to save queue: %w", err)
				}

				s.logger.Debug("mutation merged into queued item",
					slog.String("id", items[i].ID),
					slog.String("entity_key", entityKey),
					slog.String("kind", string(kind)))

				return items[i].ID, nil
			}
		}
	}

	item := models.QueueItem{
		ID:        uuid.New().String(),
		EntityKey: entityKey,
		Kind:      kind,
		Payload:   payload,
		CreatedAt: now,
		UpdatedAt: now,
		Priority:  models.PriorityNormal,
	}
	for _, opt := range opts {
		opt(&item)
	}

	// Копия отвязывает элемент от payload вызывающей стороны
	items = append(items, *item.Clone())

	if err := s.storage.SaveQueue(ctx, items); err != nil {
		return "", fmt.Errorf("failed to save queue: %w", err)
	}

	s.logger.Debug("mutation queued",
		slog.String("id", item.ID),
		slog.String("entity_key", entityKey),
		slog.String("kind", string(kind)))

	return item.ID, nil
}

// List возвращает элементы очереди в порядке добавления
func (s *Store) List(ctx context.Context) ([]models.QueueItem, error) {
	items, err := s.storage.LoadQueue(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load queue: %w", err)
	}
	return items, nil
}

// Remove удаляет элемент по ID. Отсутствующий ID не считается ошибкой.
func (s *Store) Remove(ctx context.Context, id string) error {
	items, err := s.storage.LoadQueue(ctx)
	if err != nil {
		return fmt.Errorf("failed to load queue: %w", err)
	}

	filtered := make([]models.QueueItem, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			filtered = append(filtered, item)
		}
	}
	if len(filtered) == len(items) {
		return nil
	}

	if err := s.storage.SaveQueue(ctx, filtered); err != nil {
		return fmt.Errorf("failed to save queue: %w", err)
	}
	return nil
}

// ReplaceAll атомарно заменяет содержимое очереди. Используется
// координатором после прохода: оставшиеся элементы записываются
// отфильтрованным списком, а не добавляются заново.
func (s *Store) ReplaceAll(ctx context.Context, items []models.QueueItem) error {
	if items == nil {
		items = []models.QueueItem{}
	}
	if err := s.storage.SaveQueue(ctx, items); err != nil {
		return fmt.Errorf("failed to save queue: %w", err)
	}
	return nil
}

// PendingCount возвращает число отложенных мутаций
func (s *Store) PendingCount(ctx context.Context) (int, error) {
	items, err := s.storage.LoadQueue(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load queue: %w", err)
	}
	return len(items), nil
}
