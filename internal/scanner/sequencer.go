package scanner

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/hitushen/opscut/internal/logging"
	"github.com/hitushen/opscut/internal/models"
)

// Observer 接收一次扫描回放中的各类回调。
type Observer interface {
	StepStarted(index int, label string)
	Progress(p models.Progress)
	Complete(result models.ScanResult)
}

// Clock 抽象定时器，便于测试中替换。
type Clock interface {
	After(d time.Duration) <-chan time.Time
}

type realClock struct{}

func (realClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

type instantClock struct{}

func (instantClock) After(time.Duration) <-chan time.Time {
	ch := make(chan time.Time, 1)
	ch <- time.Now()
	return ch
}

// Option 调整 Sequencer 的行为。
type Option func(*Sequencer)

// WithClock 指定定时器来源。
func WithClock(c Clock) Option {
	return func(s *Sequencer) {
		if c != nil {
			s.clock = c
		}
	}
}

// Instant 跳过所有等待，按顺序立即回放。
func Instant() Option {
	return WithClock(instantClock{})
}

// Sequencer 按脚本回放一次模拟扫描。
type Sequencer struct {
	script models.ScanScript
	clock  Clock
	log    zerolog.Logger
}

// NewSequencer 使用给定脚本创建回放器。
func NewSequencer(script models.ScanScript, opts ...Option) *Sequencer {
	s := &Sequencer{
		script: script,
		clock:  realClock{},
		log:    logging.For("scanner"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Script 返回正在使用的脚本。
func (s *Sequencer) Script() models.ScanScript {
	return s.script
}

// Run 逐步回放脚本，ctx 取消后不再触发任何回调并返回 ctx.Err()。
func (s *Sequencer) Run(ctx context.Context, domain string, obs Observer) (models.ScanResult, error) {
	steps := s.script.Steps
	total := len(steps)
	start := time.Now()
	s.log.Debug().Str("domain", domain).Int("steps", total).Msg("scan started")

	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return s.cancelled(domain, i, err)
		}
		obs.StepStarted(i, step.Label)

		if err := s.wait(ctx, step.Delay); err != nil {
			return s.cancelled(domain, i, err)
		}
		obs.Progress(models.Progress{
			Index:     i,
			Step:      step.Label,
			Percent:   float64(i+1) / float64(total) * 100,
			Discovery: step.Discovery,
		})
	}

	if err := s.wait(ctx, s.script.Settle); err != nil {
		return s.cancelled(domain, total, err)
	}
	result := s.script.ResultFor(domain)
	obs.Complete(result)
	s.log.Debug().Str("domain", domain).Dur("elapsed", time.Since(start)).Msg("scan completed")
	return result, nil
}

func (s *Sequencer) wait(ctx context.Context, d time.Duration) error {
	if d > 0 {
		select {
		case <-ctx.Done():
		case <-s.clock.After(d):
		}
	}
	// select 在两者同时就绪时可能选中定时器，这里再确认一次。
	return ctx.Err()
}

func (s *Sequencer) cancelled(domain string, step int, err error) (models.ScanResult, error) {
	s.log.Debug().Str("domain", domain).Int("step", step).Err(err).Msg("scan cancelled")
	return models.ScanResult{}, err
}
