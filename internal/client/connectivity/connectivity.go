// Package connectivity отслеживает доступность сервера.
//
// Монитор периодически опрашивает health endpoint и хранит последнее
// известное состояние связи. Подписчики уведомляются только при смене
// состояния (offline -> online и обратно), не на каждый опрос.
package connectivity

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/quartersapp/quarters/internal/client/api"
)

//go:generate moq -out monitor_mock.go . Monitor

const (
	// DefaultProbeInterval задает период опроса health endpoint
	DefaultProbeInterval = 15 * time.Second

	// probeTimeout ограничивает длительность одного опроса
	probeTimeout = 5 * time.Second
)

// Monitor предоставляет текущее состояние связи с сервером
type Monitor interface {
	// IsOnline возвращает последнее известное состояние связи
	IsOnline() bool

	// SetOnline принудительно выставляет состояние связи.
	// Следующий опрос health endpoint перезапишет ручное значение.
	SetOnline(online bool)

	// Subscribe регистрирует подписчика смены состояния.
	// Подписчик вызывается только при переходе offline <-> online.
	Subscribe(fn func(online bool))
}

// Poller реализует Monitor периодическим опросом health endpoint.
// Начальное состояние - offline, первый успешный опрос переводит в online.
type Poller struct {
	client   api.ClientAPI
	clock    clockwork.Clock
	logger   *slog.Logger
	stopCh   chan struct{}
	interval time.Duration

	mu        sync.RWMutex
	listeners []func(online bool)
	online    bool
	running   bool

	wg sync.WaitGroup
}

// Проверка реализации интерфейса
var _ Monitor = (*Poller)(nil)

// NewPoller создает монитор связи. При interval <= 0 используется
// DefaultProbeInterval.
func NewPoller(client api.ClientAPI, clock clockwork.Clock, logger *slog.Logger, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultProbeInterval
	}
	return &Poller{
		client:   client,
		clock:    clock,
		logger:   logger,
		stopCh:   make(chan struct{}),
		interval: interval,
	}
}

// Start запускает цикл опроса. Первый опрос выполняется сразу,
// последующие по таймеру. Цикл останавливается при отмене ctx или Stop.
func (p *Poller) Start(ctx context.Context) error {
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return fmt.Errorf("connectivity poller already running")
	}
	p.running = true
	p.mu.Unlock()

	p.wg.Add(1)
	go p.run(ctx)

	p.logger.Debug("connectivity poller started",
		slog.Duration("interval", p.interval))

	return nil
}

// Stop останавливает цикл опроса и дожидается завершения горутины.
// Повторный вызов безопасен.
func (p *Poller) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	p.mu.Unlock()

	close(p.stopCh)
	p.wg.Wait()

	p.logger.Debug("connectivity poller stopped")
}

func (p *Poller) run(ctx context.Context) {
	defer p.wg.Done()

	ticker := p.clock.NewTicker(p.interval)
	defer ticker.Stop()

	// Первый опрос сразу при старте
	p.probe(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.Chan():
			p.probe(ctx)
		}
	}
}

// probe опрашивает health endpoint и обновляет состояние связи
func (p *Poller) probe(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	err := p.client.Health(probeCtx)
	if err != nil {
		p.logger.Debug("health probe failed", slog.String("error", err.Error()))
	}
	p.SetOnline(err == nil)
}

// IsOnline возвращает последнее известное состояние связи
func (p *Poller) IsOnline() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.online
}

// SetOnline выставляет состояние связи. Подписчики уведомляются
// только если состояние действительно сменилось.
func (p *Poller) SetOnline(online bool) {
	p.mu.Lock()
	if p.online == online {
		p.mu.Unlock()
		return
	}
	p.online = online
	listeners := make([]func(online bool), len(p.listeners))
	copy(listeners, p.listeners)
	p.mu.Unlock()

	p.logger.Info("connectivity state changed", slog.Bool("online", online))

	// Уведомляем вне блокировки: подписчик может обратиться к монитору
	for _, fn := range listeners {
		fn(online)
	}
}

// Subscribe регистрирует подписчика смены состояния
func (p *Poller) Subscribe(fn func(online bool)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listeners = append(p.listeners, fn)
}
