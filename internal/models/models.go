package models

import (
	"errors"
	"strings"
	"time"
)

// View 表示当前展示的页面，同一时刻只有一个处于激活状态。
type View string

const (
	ViewLanding    View = "landing"
	ViewFeatures   View = "features"
	ViewPricing    View = "pricing"
	ViewResources  View = "resources"
	ViewEnterprise View = "enterprise"
	ViewScanning   View = "scanning"
	ViewResults    View = "results"
	ViewPremium    View = "premium"
	ViewDashboard  View = "dashboard"
)

var allViews = []View{
	ViewLanding, ViewFeatures, ViewPricing, ViewResources, ViewEnterprise,
	ViewScanning, ViewResults, ViewPremium, ViewDashboard,
}

var viewTitles = map[View]string{
	ViewLanding:    "Cut Cloud Costs by 70% Instantly",
	ViewFeatures:   "Platform Features",
	ViewPricing:    "Pricing",
	ViewResources:  "Resources",
	ViewEnterprise: "Enterprise",
	ViewScanning:   "Analyzing Infrastructure",
	ViewResults:    "Analysis Complete",
	ViewPremium:    "Premium Features",
	ViewDashboard:  "OpsCut Dashboard",
}

// Views 按声明顺序返回全部视图。
func Views() []View {
	out := make([]View, len(allViews))
	copy(out, allViews)
	return out
}

// ParseView 将字符串解析为视图，忽略大小写与首尾空白。
func ParseView(raw string) (View, bool) {
	v := View(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := viewTitles[v]; !ok {
		return "", false
	}
	return v, true
}

// IsStatic 判断是否为可直接跳转的信息页。
func (v View) IsStatic() bool {
	switch v {
	case ViewLanding, ViewFeatures, ViewPricing, ViewResources, ViewEnterprise:
		return true
	}
	return false
}

// HoldsResult 判断该视图是否持有扫描结果。
func (v View) HoldsResult() bool {
	switch v {
	case ViewResults, ViewPremium, ViewDashboard:
		return true
	}
	return false
}

// Title 返回页面标题。
func (v View) Title() string {
	return viewTitles[v]
}

func (v View) String() string {
	return string(v)
}

// ErrUnknownSeverity 表示无法识别的严重级别。
var ErrUnknownSeverity = errors.New("unknown severity")

// Severity 定义问题严重级别枚举。
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Valid 判断严重级别是否合法。
func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	}
	return false
}

// Rank 返回用于排序的权重，数值越大越严重。
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	}
	return 0
}

func (s Severity) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, ErrUnknownSeverity
	}
	return []byte(s), nil
}

func (s *Severity) UnmarshalText(text []byte) error {
	parsed := Severity(strings.ToLower(strings.TrimSpace(string(text))))
	if !parsed.Valid() {
		return ErrUnknownSeverity
	}
	*s = parsed
	return nil
}

// Issue 描述扫描结果中的一类优化问题。
type Issue struct {
	Type     string   `json:"type" yaml:"type"`
	Count    int      `json:"count" yaml:"count"`
	Severity Severity `json:"severity" yaml:"severity"`
}

// ScanResult 是扫描完成后产出的只读结果记录。
type ScanResult struct {
	Domain         string  `json:"domain" yaml:"domain"`
	TotalServers   int     `json:"totalServers" yaml:"totalServers"`
	Databases      int     `json:"databases" yaml:"databases"`
	CurrentCost    float64 `json:"currentCost" yaml:"currentCost"`
	OptimizedCost  float64 `json:"optimizedCost" yaml:"optimizedCost"`
	Savings        float64 `json:"savings" yaml:"savings"`
	SavingsPercent int     `json:"savingsPercent" yaml:"savingsPercent"`
	Issues         []Issue `json:"issues" yaml:"issues"`
}

// Clone 返回深拷贝，避免调用方共享 Issues 切片。
func (r ScanResult) Clone() ScanResult {
	out := r
	if r.Issues != nil {
		out.Issues = make([]Issue, len(r.Issues))
		copy(out.Issues, r.Issues)
	}
	return out
}

// ResourceCount 返回发现的服务器与数据库总数。
func (r ScanResult) ResourceCount() int {
	return r.TotalServers + r.Databases
}

// IssueCount 汇总全部问题数量。
func (r ScanResult) IssueCount() int {
	total := 0
	for _, issue := range r.Issues {
		total += issue.Count
	}
	return total
}

// WorstSeverity 返回结果中出现的最高严重级别，没有问题时返回空值。
func (r ScanResult) WorstSeverity() Severity {
	var worst Severity
	for _, issue := range r.Issues {
		if issue.Severity.Rank() > worst.Rank() {
			worst = issue.Severity
		}
	}
	return worst
}

// ScanStep 是脚本化扫描中的单个阶段。
type ScanStep struct {
	Label     string        `json:"label"`
	Delay     time.Duration `json:"delay"`
	Discovery string        `json:"discovery"`
}

// ScanScript 汇总扫描步骤、收尾等待时间与固定结果。
type ScanScript struct {
	Steps  []ScanStep    `json:"steps"`
	Settle time.Duration `json:"settle"`
	Result ScanResult    `json:"result"`
}

// ResultFor 生成指定域名的结果，除域名外全部取自固定数据。
func (s ScanScript) ResultFor(domain string) ScanResult {
	out := s.Result.Clone()
	out.Domain = domain
	return out
}

// Duration 返回完整回放一次脚本所需的时间。
func (s ScanScript) Duration() time.Duration {
	total := s.Settle
	for _, step := range s.Steps {
		total += step.Delay
	}
	return total
}

// Progress 描述一次步骤完成后的进度通知。
type Progress struct {
	Index     int     `json:"index"`
	Step      string  `json:"step"`
	Percent   float64 `json:"percent"`
	Discovery string  `json:"discovery"`
}

// Snapshot 是某一时刻视图与扫描上下文的只读副本。
type Snapshot struct {
	View    View        `json:"view"`
	Domain  string      `json:"domain"`
	Result  *ScanResult `json:"result,omitempty"`
	Step    string      `json:"step,omitempty"`
	Percent float64     `json:"percent"`
	Log     []string    `json:"log"`
}
