// Package sync реализует offline-first синхронизацию правок раундов
// с сервером.
//
// Правки копятся в локальной очереди (internal/client/queue) и
// доставляются проходами координатора: один проход за раз, с
// экспоненциальным backoff при временных сбоях и немедленным проходом
// после восстановления связи. Доставка at-least-once: серверные
// эндпоинты идемпотентны (upsert по ключу раунда), поэтому повтор уже
// принятой мутации безопасен.
package sync

import (
	"context"
	"fmt"
	"log/slog"
	stdsync "sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/quartersapp/quarters/internal/client/api"
	"github.com/quartersapp/quarters/internal/client/connectivity"
	"github.com/quartersapp/quarters/internal/client/queue"
	"github.com/quartersapp/quarters/internal/client/snapshot"
	"github.com/quartersapp/quarters/internal/client/storage"
	"github.com/quartersapp/quarters/internal/models"
)

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс синхронизации для CLI
type Service interface {
	// Enqueue ставит мутацию в очередь и, при наличии связи, планирует
	// проход с коротким debounce
	Enqueue(ctx context.Context, entityKey string, kind models.MutationKind, payload map[string]any, opts ...queue.EnqueueOption) (string, error)

	// ProcessQueue выполняет один проход очереди ("повторить сейчас")
	ProcessQueue(ctx context.Context) (models.ProcessResult, error)

	// SyncMutation пытается доставить правку сразу, при неудаче или
	// офлайне откладывает ее в очередь
	SyncMutation(ctx context.Context, entityKey string, payload map[string]any) (models.MutationResult, error)

	// Subscribe регистрирует подписчика статуса синхронизации,
	// возвращает функцию отписки
	Subscribe(fn func(models.SyncStatus)) func()

	// PendingCount возвращает число отложенных мутаций
	PendingCount(ctx context.Context) (int, error)

	// HasPendingSync сообщает, есть ли несинхронизированные правки
	HasPendingSync(ctx context.Context) (bool, error)

	// LastSyncTime возвращает время последней успешной доставки
	LastSyncTime(ctx context.Context) (time.Time, error)

	// SyncErrors возвращает последние ошибки синхронизации
	SyncErrors(ctx context.Context) ([]models.SyncError, error)

	// SaveLocalSnapshot сохраняет локальное состояние раунда
	SaveLocalSnapshot(ctx context.Context, entityKey string, state map[string]any) error

	// LoadLocalSnapshot возвращает локальное состояние раунда
	LoadLocalSnapshot(ctx context.Context, entityKey string) (map[string]any, bool, error)

	// ListLocalSnapshots возвращает локальные состояния всех раундов,
	// свежие первыми
	ListLocalSnapshots(ctx context.Context) ([]models.LocalSnapshot, error)

	// ClearLocalSnapshot удаляет локальное состояние раунда
	ClearLocalSnapshot(ctx context.Context, entityKey string) error

	// SnapshotNewerThan возвращает локальное состояние, только если оно
	// строго новее серверной метки времени
	SnapshotNewerThan(ctx context.Context, entityKey string, remoteUpdatedAt time.Time) (map[string]any, bool, error)

	// Start подписывает координатор на события связи и запускает
	// планировщик проходов
	Start(ctx context.Context) error

	// Close останавливает планировщик и ждет завершения его горутины
	Close() error
}

// coordinatorState хранит состояние координатора одного экземпляра
// сервиса: флаг single-flight, единственный взведенный таймер и фазу
// жизненного цикла. Глобального состояния у пакета нет.
type coordinatorState struct {
	mu         stdsync.Mutex
	timer      clockwork.Timer
	processing bool
	started    bool
	closed     bool
}

type service struct {
	apiClient    api.ClientAPI
	queue        *queue.Store
	snapshots    *snapshot.Service
	syncState    storage.SyncStateStorage
	authStorage  storage.AuthStorage
	connectivity connectivity.Monitor
	broadcaster  *broadcaster
	clock        clockwork.Clock
	logger       *slog.Logger

	// armedCh будит планировщик, когда таймер взводится с нуля
	armedCh chan struct{}
	runCtx  context.Context
	cancel  context.CancelFunc
	wg      stdsync.WaitGroup

	state coordinatorState
	cfg   Config
}

// NewService создает сервис синхронизации
func NewService(
	apiClient api.ClientAPI,
	queueStore *queue.Store,
	snapshots *snapshot.Service,
	syncState storage.SyncStateStorage,
	authStorage storage.AuthStorage,
	monitor connectivity.Monitor,
	clock clockwork.Clock,
	cfg Config,
	logger *slog.Logger,
) Service {
	return &service{
		apiClient:    apiClient,
		queue:        queueStore,
		snapshots:    snapshots,
		syncState:    syncState,
		authStorage:  authStorage,
		connectivity: monitor,
		broadcaster:  newBroadcaster(logger),
		clock:        clock,
		logger:       logger,
		armedCh:      make(chan struct{}, 1),
		cfg:          cfg,
	}
}

// Start запускает планировщик проходов и подписывает координатор на
// смену состояния связи. Если на старте есть отложенные мутации и
// связь уже есть, проход планируется сразу.
func (s *service) Start(ctx context.Context) error {
	s.state.mu.Lock()
	if s.state.started {
		s.state.mu.Unlock()
		return fmt.Errorf("sync service already started")
	}
	if s.state.closed {
		s.state.mu.Unlock()
		return fmt.Errorf("sync service closed")
	}
	s.state.started = true
	s.runCtx, s.cancel = context.WithCancel(ctx)
	s.state.mu.Unlock()

	s.wg.Add(1)
	go s.run(s.runCtx)

	s.connectivity.Subscribe(s.onConnectivityChange)

	if pending, err := s.queue.PendingCount(ctx); err == nil && pending > 0 && s.connectivity.IsOnline() {
		s.logger.Info("pending mutations on startup, scheduling queue processing",
			slog.Int("pending", pending))
		s.requestSchedule(s.cfg.ReconnectDelay)
	}

	s.broadcast(ctx)

	s.logger.Debug("sync service started")
	return nil
}

// Close останавливает планировщик. Повторный вызов безопасен.
func (s *service) Close() error {
	s.state.mu.Lock()
	if s.state.closed {
		s.state.mu.Unlock()
		return nil
	}
	s.state.closed = true
	cancel := s.cancel
	s.state.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()

	s.logger.Debug("sync service closed")
	return nil
}

// run ждет срабатывания таймера координатора и запускает проход.
// Таймером владеет coordinatorState: requestSchedule взводит или
// перевзводит его синхронно, здесь только ожидание.
func (s *service) run(ctx context.Context) {
	defer s.wg.Done()

	for {
		s.state.mu.Lock()
		var timerCh <-chan time.Time
		if s.state.timer != nil {
			timerCh = s.state.timer.Chan()
		}
		s.state.mu.Unlock()

		select {
		case <-ctx.Done():
			s.state.mu.Lock()
			if s.state.timer != nil {
				stopAndDrainTimer(s.state.timer)
				s.state.timer = nil
			}
			s.state.mu.Unlock()
			return

		case <-s.armedCh:
			// Таймер взведен с нуля, перечитываем его канал

		case <-timerCh:
			s.state.mu.Lock()
			s.state.timer = nil
			s.state.mu.Unlock()

			if _, err := s.ProcessQueue(ctx); err != nil {
				s.logger.Warn("scheduled queue processing failed",
					slog.String("error", err.Error()))
			}
		}
	}
}

// stopAndDrainTimer останавливает таймер и вычищает уже отправленное
// срабатывание, чтобы Reset не сработал от старого тика
func stopAndDrainTimer(timer clockwork.Timer) {
	if !timer.Stop() {
		select {
		case <-timer.Chan():
		default:
		}
	}
}

// requestSchedule взводит таймер прохода, заменяя уже взведенный.
// Таймер один: новая задержка вытесняет старую, а не добавляется к ней.
func (s *service) requestSchedule(delay time.Duration) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if !s.state.started || s.state.closed {
		return
	}

	if s.state.timer == nil {
		s.state.timer = s.clock.NewTimer(delay)
		select {
		case s.armedCh <- struct{}{}:
		default:
		}
		return
	}

	stopAndDrainTimer(s.state.timer)
	s.state.timer.Reset(delay)
}

// onConnectivityChange реализует правило восстановления связи:
// переход offline -> online планирует проход очереди с небольшой
// задержкой, заменяя любой взведенный backoff таймер.
func (s *service) onConnectivityChange(online bool) {
	s.state.mu.Lock()
	ctx := s.runCtx
	closed := s.state.closed
	s.state.mu.Unlock()
	if closed || ctx == nil {
		return
	}

	s.broadcast(ctx)

	if !online {
		return
	}

	s.logger.Info("connection restored, scheduling queue processing")
	s.requestSchedule(s.cfg.ReconnectDelay)
}

// Enqueue ставит мутацию в очередь. При наличии связи проход
// планируется с коротким debounce: серия быстрых правок выливается в
// один сетевой заход.
func (s *service) Enqueue(ctx context.Context, entityKey string, kind models.MutationKind, payload map[string]any, opts ...queue.EnqueueOption) (string, error) {
	id, err := s.queue.Enqueue(ctx, entityKey, kind, payload, opts...)
	if err != nil {
		return "", err
	}

	s.broadcast(ctx)

	if s.connectivity.IsOnline() {
		s.requestSchedule(s.cfg.DebounceDelay)
	}

	return id, nil
}

// ProcessQueue выполняет один проход очереди.
//
// Одновременно живет не больше одного прохода: параллельный вызов
// сразу возвращает {Skipped: true}. Без связи проход не трогает ни
// очередь, ни счетчики попыток и возвращает {Offline: true}.
func (s *service) ProcessQueue(ctx context.Context) (models.ProcessResult, error) {
	if !s.connectivity.IsOnline() {
		s.logger.Debug("offline, queue processing skipped")
		return models.ProcessResult{Offline: true}, nil
	}

	s.state.mu.Lock()
	if s.state.processing {
		s.state.mu.Unlock()
		s.logger.Debug("queue processing already in flight")
		return models.ProcessResult{Skipped: true}, nil
	}
	s.state.processing = true
	s.state.mu.Unlock()

	s.broadcast(ctx)

	result, err := s.drainQueue(ctx)

	s.state.mu.Lock()
	s.state.processing = false
	s.state.mu.Unlock()

	s.broadcast(ctx)

	return result, err
}

// drainQueue проходит очередь по порядку, классифицируя каждую
// неудачу независимо: застрявший раунд не блокирует доставку
// остальных. Оставшиеся элементы записываются обратно одним
// отфильтрованным списком.
func (s *service) drainQueue(ctx context.Context) (models.ProcessResult, error) {
	var result models.ProcessResult

	auth, err := s.authStorage.GetAuth(ctx)
	if err != nil {
		s.logger.Warn("not authenticated, queue processing postponed",
			slog.String("error", err.Error()))
		return models.ProcessResult{Offline: true}, nil
	}
	if auth.ExpiresAt > 0 && s.clock.Now().Unix() >= auth.ExpiresAt {
		s.logger.Warn("session expired, queue processing postponed")
		return models.ProcessResult{Offline: true}, nil
	}

	items, err := s.queue.List(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to load queue: %w", err)
	}
	if len(items) == 0 {
		return result, nil
	}

	s.logger.Info("processing sync queue", slog.Int("pending", len(items)))

	var (
		remaining   = make([]models.QueueItem, 0, len(items))
		syncedKeys  []string
		newErrors   []models.SyncError
		maxAttempts int
	)

	for _, item := range items {
		item.LastAttemptAt = s.clock.Now()

		err := s.deliver(ctx, auth.AccessToken, &item)
		if err == nil {
			result.SyncedCount++
			syncedKeys = append(syncedKeys, item.EntityKey)
			s.logger.Debug("mutation delivered",
				slog.String("id", item.ID),
				slog.String("entity_key", item.EntityKey),
				slog.String("kind", string(item.Kind)))
			continue
		}

		transient, msg := classify(err)
		item.Attempts++
		item.LastError = msg

		if !transient {
			result.FailedCount++
			newErrors = append(newErrors, models.SyncError{
				EntityKey: item.EntityKey,
				Message:   msg,
				Timestamp: s.clock.Now(),
			})
			s.logger.Warn("mutation dropped after permanent failure",
				slog.String("id", item.ID),
				slog.String("entity_key", item.EntityKey),
				slog.String("error", msg))
			continue
		}

		if item.Attempts >= s.cfg.MaxAttempts {
			result.FailedCount++
			newErrors = append(newErrors, models.SyncError{
				EntityKey: item.EntityKey,
				Message:   fmt.Sprintf("max attempts reached: %s", msg),
				Timestamp: s.clock.Now(),
			})
			s.logger.Warn("mutation dropped after max attempts",
				slog.String("id", item.ID),
				slog.String("entity_key", item.EntityKey),
				slog.Int("attempts", item.Attempts))
			continue
		}

		result.RetryingIDs = append(result.RetryingIDs, item.ID)
		remaining = append(remaining, item)
		if item.Attempts > maxAttempts {
			maxAttempts = item.Attempts
		}
	}

	if err := s.queue.ReplaceAll(ctx, remaining); err != nil {
		return result, fmt.Errorf("failed to persist queue: %w", err)
	}

	if err := s.updateSyncErrors(ctx, syncedKeys, newErrors); err != nil {
		s.logger.Warn("failed to update sync errors", slog.String("error", err.Error()))
	}

	if result.SyncedCount > 0 {
		if err := s.syncState.SaveLastSync(ctx, s.clock.Now()); err != nil {
			s.logger.Warn("failed to save last sync time", slog.String("error", err.Error()))
		}
	}

	s.logger.Info("sync queue processed",
		slog.Int("synced", result.SyncedCount),
		slog.Int("failed", result.FailedCount),
		slog.Int("retrying", len(remaining)))

	if len(remaining) > 0 {
		delay := s.backoffDelay(maxAttempts)
		s.logger.Info("scheduling retry",
			slog.Duration("delay", delay),
			slog.Int("remaining", len(remaining)))
		s.requestSchedule(delay)
	}

	return result, nil
}

// deliver отправляет одну мутацию по маршруту ее типа
func (s *service) deliver(ctx context.Context, accessToken string, item *models.QueueItem) error {
	switch item.Kind {
	case models.KindProgress:
		_, err := s.apiClient.PushProgress(ctx, accessToken, item.EntityKey, item.Payload)
		return err
	case models.KindFinalize:
		_, err := s.apiClient.FinalizeGame(ctx, accessToken, item.EntityKey, item.Payload)
		return err
	default:
		return fmt.Errorf("unknown mutation kind: %s", item.Kind)
	}
}

// backoffDelay вычисляет задержку повтора: base * 2^(attempts-1),
// не больше потолка
func (s *service) backoffDelay(maxAttempts int) time.Duration {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	delay := s.cfg.BaseDelay * (1 << (maxAttempts - 1))
	if delay <= 0 || delay > s.cfg.MaxDelay {
		delay = s.cfg.MaxDelay
	}
	return delay
}

// updateSyncErrors очищает ошибки успешно доставленных раундов,
// добавляет новые и ограничивает буфер последними записями
func (s *service) updateSyncErrors(ctx context.Context, syncedKeys []string, newErrors []models.SyncError) error {
	if len(syncedKeys) == 0 && len(newErrors) == 0 {
		return nil
	}

	current, err := s.syncState.LoadErrors(ctx)
	if err != nil {
		return fmt.Errorf("failed to load sync errors: %w", err)
	}

	synced := make(map[string]struct{}, len(syncedKeys))
	for _, key := range syncedKeys {
		synced[key] = struct{}{}
	}

	kept := make([]models.SyncError, 0, len(current)+len(newErrors))
	for _, e := range current {
		if _, ok := synced[e.EntityKey]; !ok {
			kept = append(kept, e)
		}
	}
	kept = append(kept, newErrors...)

	if len(kept) > s.cfg.ErrorBufferSize {
		kept = kept[len(kept)-s.cfg.ErrorBufferSize:]
	}

	if err := s.syncState.SaveErrors(ctx, kept); err != nil {
		return fmt.Errorf("failed to save sync errors: %w", err)
	}
	return nil
}

// SyncMutation пытается доставить правку прогресса немедленно.
// Если раунд уже ждет в очереди, правка сливается туда же, чтобы не
// обогнать более ранние изменения. При офлайне или неудаче правка
// откладывается в очередь.
func (s *service) SyncMutation(ctx context.Context, entityKey string, payload map[string]any) (models.MutationResult, error) {
	direct := s.connectivity.IsOnline()

	if direct {
		if pending, err := s.hasPendingFor(ctx, entityKey); err == nil && pending {
			direct = false
		}
	}

	if direct {
		if auth, err := s.authStorage.GetAuth(ctx); err == nil {
			if _, err := s.apiClient.PushProgress(ctx, auth.AccessToken, entityKey, payload); err == nil {
				if err := s.syncState.SaveLastSync(ctx, s.clock.Now()); err != nil {
					s.logger.Warn("failed to save last sync time", slog.String("error", err.Error()))
				}
				s.broadcast(ctx)
				return models.MutationResult{
					Success: true,
					Synced:  true,
					Message: "synced",
				}, nil
			} else {
				s.logger.Debug("direct sync failed, falling back to queue",
					slog.String("entity_key", entityKey),
					slog.String("error", err.Error()))
			}
		}
	}

	if _, err := s.Enqueue(ctx, entityKey, models.KindProgress, payload); err != nil {
		return models.MutationResult{}, fmt.Errorf("failed to queue mutation: %w", err)
	}

	return models.MutationResult{
		Success: true,
		Queued:  true,
		Message: "queued for sync",
	}, nil
}

// hasPendingFor сообщает, есть ли в очереди мутации данного раунда
func (s *service) hasPendingFor(ctx context.Context, entityKey string) (bool, error) {
	items, err := s.queue.List(ctx)
	if err != nil {
		return false, err
	}
	for _, item := range items {
		if item.EntityKey == entityKey {
			return true, nil
		}
	}
	return false, nil
}

// Subscribe регистрирует подписчика статуса синхронизации
func (s *service) Subscribe(fn func(models.SyncStatus)) func() {
	return s.broadcaster.subscribe(fn)
}

// PendingCount возвращает число отложенных мутаций
func (s *service) PendingCount(ctx context.Context) (int, error) {
	return s.queue.PendingCount(ctx)
}

// HasPendingSync сообщает, есть ли несинхронизированные правки
func (s *service) HasPendingSync(ctx context.Context) (bool, error) {
	count, err := s.queue.PendingCount(ctx)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// LastSyncTime возвращает время последней успешной доставки
func (s *service) LastSyncTime(ctx context.Context) (time.Time, error) {
	return s.syncState.GetLastSync(ctx)
}

// SyncErrors возвращает последние ошибки синхронизации
func (s *service) SyncErrors(ctx context.Context) ([]models.SyncError, error) {
	return s.syncState.LoadErrors(ctx)
}

// SaveLocalSnapshot сохраняет локальное состояние раунда
func (s *service) SaveLocalSnapshot(ctx context.Context, entityKey string, state map[string]any) error {
	return s.snapshots.Save(ctx, entityKey, state)
}

// LoadLocalSnapshot возвращает локальное состояние раунда
func (s *service) LoadLocalSnapshot(ctx context.Context, entityKey string) (map[string]any, bool, error) {
	return s.snapshots.Load(ctx, entityKey)
}

// ListLocalSnapshots возвращает локальные состояния всех раундов
func (s *service) ListLocalSnapshots(ctx context.Context) ([]models.LocalSnapshot, error) {
	return s.snapshots.List(ctx)
}

// ClearLocalSnapshot удаляет локальное состояние раунда
func (s *service) ClearLocalSnapshot(ctx context.Context, entityKey string) error {
	return s.snapshots.Clear(ctx, entityKey)
}

// SnapshotNewerThan возвращает локальное состояние, только если оно
// строго новее серверной метки времени
func (s *service) SnapshotNewerThan(ctx context.Context, entityKey string, remoteUpdatedAt time.Time) (map[string]any, bool, error) {
	return s.snapshots.NewerThan(ctx, entityKey, remoteUpdatedAt)
}

// currentStatus собирает производный статус синхронизации
func (s *service) currentStatus(ctx context.Context) models.SyncStatus {
	s.state.mu.Lock()
	processing := s.state.processing
	s.state.mu.Unlock()

	status := models.SyncStatus{
		IsProcessing: processing,
		IsOnline:     s.connectivity.IsOnline(),
	}
	if count, err := s.queue.PendingCount(ctx); err == nil {
		status.PendingCount = count
	}
	if last, err := s.syncState.GetLastSync(ctx); err == nil {
		status.LastSyncAt = last
	}
	if errs, err := s.syncState.LoadErrors(ctx); err == nil {
		status.RecentErrors = errs
	}
	return status
}

// broadcast доводит текущий статус до подписчиков
func (s *service) broadcast(ctx context.Context) {
	s.broadcaster.publish(s.currentStatus(ctx))
}
