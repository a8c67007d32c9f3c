package scanner

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/hitushen/opscut/internal/logging"
)

// Manager 负责协调后台扫描回放任务。
type Manager struct {
	seq          *Sequencer
	concurrency  int
	jobs         chan scanJob
	wg           sync.WaitGroup
	mu           sync.Mutex
	closed       bool
	base         context.Context
	cancel       context.CancelFunc
	shutdownOnce sync.Once
	stopCh       chan struct{}
	log          zerolog.Logger
}

type scanJob struct {
	ctx    context.Context
	domain string
	obs    Observer
}

// NewManager 按照指定并发数启动工作协程执行扫描。
func NewManager(seq *Sequencer, concurrency int) *Manager {
	if concurrency <= 0 {
		concurrency = 1
	}
	base, cancel := context.WithCancel(context.Background())
	m := &Manager{
		seq:         seq,
		concurrency: concurrency,
		jobs:        make(chan scanJob, concurrency*2),
		base:        base,
		cancel:      cancel,
		stopCh:      make(chan struct{}),
		log:         logging.For("scanner"),
	}
	for i := 0; i < concurrency; i++ {
		m.wg.Add(1)
		go m.worker()
	}
	return m
}

// Launch 排入一次扫描，不会阻塞调用方。
// ctx 为本次运行的取消令牌；返回 false 表示管理器已关闭或 ctx 已取消。
func (m *Manager) Launch(ctx context.Context, domain string, obs Observer) bool {
	if ctx.Err() != nil {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return false
	}
	job := scanJob{ctx: ctx, domain: domain, obs: obs}
	select {
	case m.jobs <- job:
		m.log.Debug().Str("domain", domain).Msg("enqueued scan")
		return true
	default:
	}
	// 队列已满时由独立协程等待空位，保证调用方不被阻塞。
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		select {
		case m.jobs <- job:
			m.log.Debug().Str("domain", domain).Msg("enqueued scan after backlog")
		case <-ctx.Done():
		case <-m.stopCh:
		}
	}()
	return true
}

// Close 优雅停止所有扫描协程，正在进行的回放会被取消。
func (m *Manager) Close() {
	m.shutdownOnce.Do(func() {
		m.mu.Lock()
		m.closed = true
		m.mu.Unlock()
		m.cancel()
		close(m.stopCh)
	})
	m.wg.Wait()
}

func (m *Manager) worker() {
	defer m.wg.Done()
	for {
		select {
		case job := <-m.jobs:
			m.handleJob(job)
		case <-m.stopCh:
			return
		}
	}
}

func (m *Manager) handleJob(job scanJob) {
	if job.ctx.Err() != nil || m.base.Err() != nil {
		m.log.Debug().Str("domain", job.domain).Msg("dropped cancelled scan")
		return
	}
	ctx, cancel := context.WithCancel(job.ctx)
	defer cancel()
	stop := context.AfterFunc(m.base, cancel)
	defer stop()

	if _, err := m.seq.Run(ctx, job.domain, job.obs); err != nil {
		m.log.Debug().Str("domain", job.domain).Err(err).Msg("scan stopped")
	}
}
