// Package snapshot хранит последнее локально сохраненное состояние
// раундов независимо от прогресса синхронизации.
//
// Снапшот пишется при каждом локальном изменении и переживает рестарт,
// поэтому игрок видит свои правки даже если они еще не дошли до сервера.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/quartersapp/quarters/internal/client/storage"
	"github.com/quartersapp/quarters/internal/models"
)

// Service управляет локальными снапшотами раундов
type Service struct {
	storage storage.SnapshotStorage
	clock   clockwork.Clock
	logger  *slog.Logger
}

// NewService создает сервис локальных снапшотов
func NewService(st storage.SnapshotStorage, clock clockwork.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: st,
		clock:   clock,
		logger:  logger,
	}
}

// Save сохраняет состояние раунда с текущей меткой времени.
// Работает полностью офлайн.
func (s *Service) Save(ctx context.Context, entityKey string, state map[string]any) error {
	snap := &models.LocalSnapshot{
		EntityKey: entityKey,
		State:     state,
		SavedAt:   s.clock.Now(),
	}
	if err := s.storage.SaveSnapshot(ctx, snap); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	s.logger.Debug("local snapshot saved", slog.String("entity_key", entityKey))
	return nil
}

// Load возвращает состояние раунда. Второй результат false, когда
// снапшота нет.
func (s *Service) Load(ctx context.Context, entityKey string) (map[string]any, bool, error) {
	snap, err := s.storage.GetSnapshot(ctx, entityKey)
	if err != nil {
		if errors.Is(err, storage.ErrSnapshotNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to load snapshot: %w", err)
	}
	return snap.State, true, nil
}

// List возвращает все сохраненные снапшоты, свежие первыми
func (s *Service) List(ctx context.Context) ([]models.LocalSnapshot, error) {
	snaps, err := s.storage.ListSnapshots(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	return snaps, nil
}

// Clear удаляет снапшот раунда. Отсутствующий снапшот не ошибка.
func (s *Service) Clear(ctx context.Context, entityKey string) error {
	if err := s.storage.DeleteSnapshot(ctx, entityKey); err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}

	s.logger.Debug("local snapshot cleared", slog.String("entity_key", entityKey))
	return nil
}

// NewerThan возвращает состояние, только если локальный снапшот строго
// новее серверной метки времени. Используется после восстановления
// связи: локальные правки не затираются устаревшим ответом сервера.
func (s *Service) NewerThan(ctx context.Context, entityKey string, remoteUpdatedAt time.Time) (map[string]any, bool, error) {
	snap, err := s.storage.GetSnapshot(ctx, entityKey)
	if err != nil {
		if errors.Is(err, storage.ErrSnapshotNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to load snapshot: %w", err)
	}
	if !snap.IsNewerThan(remoteUpdatedAt) {
		return nil, false, nil
	}
	return snap.State, true, nil
}
