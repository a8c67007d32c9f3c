package views

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/hitushen/opscut/internal/logging"
	"github.com/hitushen/opscut/internal/models"
	"github.com/hitushen/opscut/internal/scanner"
	"github.com/hitushen/opscut/internal/targets"
)

// Launcher 启动一次扫描回放，ctx 即本次运行的取消令牌。
type Launcher interface {
	Launch(ctx context.Context, domain string, obs scanner.Observer) bool
}

// Observer 接收视图与扫描状态的变更通知。
// 回调在控制器持锁期间触发，实现不得回调控制器。
type Observer interface {
	ViewChanged(s models.Snapshot)
	ScanStepStarted(index int, label string)
	ScanProgress(p models.Progress)
	ScanComplete(result models.ScanResult)
}

// RunToken 标识一次扫描运行，过期令牌的回调会被丢弃。
type RunToken uint64

type nopObserver struct{}

func (nopObserver) ViewChanged(models.Snapshot)    {}
func (nopObserver) ScanStepStarted(int, string)    {}
func (nopObserver) ScanProgress(models.Progress)   {}
func (nopObserver) ScanComplete(models.ScanResult) {}

// Controller 是单个访客的视图状态机，所有变更经由同一把锁串行化。
type Controller struct {
	mu       sync.Mutex
	view     models.View
	domain   string
	result   *models.ScanResult
	step     string
	percent  float64
	logLines []string

	token  RunToken
	cancel context.CancelFunc
	closed bool

	launcher Launcher
	observer Observer
	log      zerolog.Logger
}

// NewController 创建处于 landing 视图的控制器。launcher 与 observer 均可为 nil。
func NewController(launcher Launcher, observer Observer) *Controller {
	if observer == nil {
		observer = nopObserver{}
	}
	return &Controller{
		view:     models.ViewLanding,
		launcher: launcher,
		observer: observer,
		log:      logging.For("views"),
	}
}

// StartScan 从 landing 发起扫描；空白输入被静默拒绝。
func (c *Controller) StartScan(input string) bool {
	domain := targets.Normalize(input)
	if domain == "" {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.view != models.ViewLanding {
		return false
	}

	c.stopRunLocked()
	c.token++
	token := c.token
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel

	c.domain = domain
	c.result = nil
	c.resetProgressLocked()
	c.setViewLocked(models.ViewScanning)

	if c.launcher != nil && !c.launcher.Launch(ctx, domain, &run{c: c, token: token}) {
		c.log.Warn().Str("domain", domain).Msg("scan launcher unavailable")
	}
	return true
}

// CompleteScan 仅在 scanning 且令牌有效时接受结果。
func (c *Controller) CompleteScan(token RunToken, result models.ScanResult) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.activeLocked(token) {
		c.log.Debug().Uint64("token", uint64(token)).Msg("discarded stale scan completion")
		return false
	}

	res := result.Clone()
	if res.Domain == "" {
		res.Domain = c.domain
	}
	c.result = &res
	c.percent = 100
	c.stopRunLocked()
	c.observer.ScanComplete(res.Clone())
	c.setViewLocked(models.ViewResults)
	return true
}

// Upgrade results → premium。
func (c *Controller) Upgrade() bool {
	return c.transition(models.ViewResults, models.ViewPremium)
}

// StartDemo premium → dashboard。
func (c *Controller) StartDemo() bool {
	return c.transition(models.ViewPremium, models.ViewDashboard)
}

// ReturnToPremium dashboard → premium，保留结果。
func (c *Controller) ReturnToPremium() bool {
	return c.transition(models.ViewDashboard, models.ViewPremium)
}

// BackToLanding 可从任意视图返回首页，同时取消扫描并清空上下文。
func (c *Controller) BackToLanding() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	c.stopRunLocked()
	c.token++
	c.domain = ""
	c.result = nil
	c.resetProgressLocked()
	c.setViewLocked(models.ViewLanding)
	return true
}

// Navigate 只允许在信息页之间跳转，不影响扫描上下文。
func (c *Controller) Navigate(view models.View) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || !c.view.IsStatic() || !view.IsStatic() {
		return false
	}
	if c.view == view {
		return false
	}
	c.setViewLocked(view)
	return true
}

// View 返回当前视图。
func (c *Controller) View() models.View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

// Snapshot 返回当前状态的只读副本。
func (c *Controller) Snapshot() models.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Close 取消进行中的扫描，之后所有操作均为空操作。
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.token++
	c.stopRunLocked()
}

func (c *Controller) transition(from, to models.View) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.view != from {
		return false
	}
	c.setViewLocked(to)
	return true
}

func (c *Controller) stepStarted(token RunToken, index int, label string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.activeLocked(token) {
		return
	}
	c.step = label
	c.observer.ScanStepStarted(index, label)
}

func (c *Controller) progress(token RunToken, p models.Progress) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.activeLocked(token) {
		c.log.Debug().Uint64("token", uint64(token)).Int("index", p.Index).Msg("discarded stale scan progress")
		return
	}
	c.step = p.Step
	c.percent = p.Percent
	c.logLines = append(c.logLines, p.Discovery)
	c.observer.ScanProgress(p)
}

func (c *Controller) activeLocked(token RunToken) bool {
	return !c.closed && c.view == models.ViewScanning && token == c.token
}

func (c *Controller) stopRunLocked() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

func (c *Controller) resetProgressLocked() {
	c.step = ""
	c.percent = 0
	c.logLines = nil
}

func (c *Controller) setViewLocked(view models.View) {
	c.view = view
	c.observer.ViewChanged(c.snapshotLocked())
}

func (c *Controller) snapshotLocked() models.Snapshot {
	snap := models.Snapshot{
		View:    c.view,
		Domain:  c.domain,
		Step:    c.step,
		Percent: c.percent,
		Log:     make([]string, len(c.logLines)),
	}
	copy(snap.Log, c.logLines)
	if c.result != nil {
		res := c.result.Clone()
		snap.Result = &res
	}
	return snap
}

// run 把扫描回调绑定到某一次运行的令牌上。
type run struct {
	c     *Controller
	token RunToken
}

func (r *run) StepStarted(index int, label string) { r.c.stepStarted(r.token, index, label) }
func (r *run) Progress(p models.Progress)          { r.c.progress(r.token, p) }
func (r *run) Complete(result models.ScanResult)   { r.c.CompleteScan(r.token, result) }
