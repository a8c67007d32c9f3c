package views

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/hitushen/opscut/internal/logging"
)

// Factory 为新访客创建控制器。
type Factory func(visitorID string) *Controller

type entry struct {
	ctrl     *Controller
	lastSeen time.Time
}

// Registry 按访客 ID 保存互相独立的控制器，并回收长期空闲的访客。
type Registry struct {
	mu      sync.Mutex
	entries map[string]*entry
	factory Factory
	ttl     time.Duration
	now     func() time.Time

	wg           sync.WaitGroup
	shutdownOnce sync.Once
	stopCh       chan struct{}
	log          zerolog.Logger
}

// NewRegistry 创建访客注册表，ttl 为空闲回收时间。
func NewRegistry(ttl time.Duration, factory Factory) *Registry {
	if factory == nil {
		factory = func(string) *Controller { return NewController(nil, nil) }
	}
	return &Registry{
		entries: make(map[string]*entry),
		factory: factory,
		ttl:     ttl,
		now:     time.Now,
		stopCh:  make(chan struct{}),
		log:     logging.For("views"),
	}
}

// Get 返回访客的控制器，首次访问时创建。
func (r *Registry) Get(visitorID string) *Controller {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	if e, ok := r.entries[visitorID]; ok {
		e.lastSeen = now
		return e.ctrl
	}
	ctrl := r.factory(visitorID)
	r.entries[visitorID] = &entry{ctrl: ctrl, lastSeen: now}
	r.log.Debug().Str("visitor", visitorID).Msg("visitor created")
	return ctrl
}

// Touch 刷新访客的活跃时间，不存在时返回 false。
func (r *Registry) Touch(visitorID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[visitorID]
	if ok {
		e.lastSeen = r.now()
	}
	return ok
}

// Len 返回当前访客数量。
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Sweep 关闭并移除空闲超过 ttl 的控制器，返回回收数量。
func (r *Registry) Sweep() int {
	if r.ttl <= 0 {
		return 0
	}
	cutoff := r.now().Add(-r.ttl)
	var evicted []*Controller
	r.mu.Lock()
	for id, e := range r.entries {
		if e.lastSeen.Before(cutoff) {
			evicted = append(evicted, e.ctrl)
			delete(r.entries, id)
		}
	}
	r.mu.Unlock()

	for _, ctrl := range evicted {
		ctrl.Close()
	}
	if len(evicted) > 0 {
		r.log.Info().Int("evicted", len(evicted)).Msg("idle visitors evicted")
	}
	return len(evicted)
}

// StartTicker 启动周期任务，定期回收空闲访客。
func (r *Registry) StartTicker(interval time.Duration) {
	if interval <= 0 {
		return
	}
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				r.Sweep()
			case <-r.stopCh:
				return
			}
		}
	}()
}

// Close 停止回收任务并关闭全部控制器。
func (r *Registry) Close() {
	r.shutdownOnce.Do(func() {
		close(r.stopCh)
	})
	r.wg.Wait()

	r.mu.Lock()
	entries := r.entries
	r.entries = make(map[string]*entry)
	r.mu.Unlock()
	for _, e := range entries {
		e.ctrl.Close()
	}
}
