package sync

import (
	"log/slog"
	"sync"

	"github.com/quartersapp/quarters/internal/models"
)

// broadcaster рассылает статус синхронизации подписчикам.
//
// Вызовы синхронные: подписчик получает статус в горутине источника
// изменения. Паника подписчика изолируется и логируется, остальные
// подписчики уведомление получают.
type broadcaster struct {
	logger    *slog.Logger
	listeners map[uint64]func(models.SyncStatus)
	mu        sync.Mutex
	nextID    uint64
}

func newBroadcaster(logger *slog.Logger) *broadcaster {
	return &broadcaster{
		logger:    logger,
		listeners: make(map[uint64]func(models.SyncStatus)),
	}
}

// subscribe регистрирует подписчика и возвращает функцию отписки.
// Повторный вызов отписки безопасен.
func (b *broadcaster) subscribe(fn func(models.SyncStatus)) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.listeners[id] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.listeners, id)
		b.mu.Unlock()
	}
}

// publish доводит статус до всех подписчиков
func (b *broadcaster) publish(status models.SyncStatus) {
	b.mu.Lock()
	listeners := make([]func(models.SyncStatus), 0, len(b.listeners))
	for _, fn := range b.listeners {
		listeners = append(listeners, fn)
	}
	b.mu.Unlock()

	for _, fn := range listeners {
		b.notify(fn, status)
	}
}

// notify вызывает одного подписчика, изолируя его панику
func (b *broadcaster) notify(fn func(models.SyncStatus), status models.SyncStatus) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("status listener panicked", slog.Any("panic", r))
		}
	}()
	fn(status)
}
