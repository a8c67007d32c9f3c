package content

import "github.com/hitushen/opscut/internal/models"

// Stat 是页面中常见的“指标 + 标签”展示块。
type Stat struct {
	Metric      string `yaml:"metric"`
	Label       string `yaml:"label"`
	Description string `yaml:"description,omitempty"`
}

// Card 描述带要点列表的功能卡片。
type Card struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Badge       string   `yaml:"badge,omitempty"`
	Points      []string `yaml:"points"`
}

// Plan 描述一个定价套餐，价格为每月美元。
type Plan struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Monthly     int      `yaml:"monthly"`
	Yearly      int      `yaml:"yearly"`
	Badge       string   `yaml:"badge,omitempty"`
	CTA         string   `yaml:"cta"`
	Popular     bool     `yaml:"popular,omitempty"`
	Enterprise  bool     `yaml:"enterprise,omitempty"`
	Features    []string `yaml:"features"`
}

// PriceFor 返回按月或按年计费时的月单价。
func (p Plan) PriceFor(yearly bool) int {
	if yearly {
		return p.Yearly
	}
	return p.Monthly
}

// YearlySavings 返回按年计费每年节省的金额。
func (p Plan) YearlySavings() int {
	return (p.Monthly - p.Yearly) * 12
}

type Blurb struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type FAQ struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

type Resource struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Type        string `yaml:"type"`
	ReadTime    string `yaml:"readTime"`
	Date        string `yaml:"date"`
	Featured    bool   `yaml:"featured,omitempty"`
}

type DocSection struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Items       []string `yaml:"items"`
}

type CaseStudy struct {
	Company     string `yaml:"company"`
	Industry    string `yaml:"industry"`
	Savings     string `yaml:"savings"`
	Description string `yaml:"description"`
}

type UseCase struct {
	Industry   string   `yaml:"industry"`
	Challenges []string `yaml:"challenges"`
	Solutions  []string `yaml:"solutions"`
}

type SupportTier struct {
	Title    string   `yaml:"title"`
	Features []string `yaml:"features"`
}

// MigrationStep 是高级功能页中演示迁移进度的一项。
type MigrationStep struct {
	Step     string `yaml:"step"`
	Status   string `yaml:"status"`
	Time     string `yaml:"time"`
	Progress int    `yaml:"progress,omitempty"`
}

type SavingsPoint struct {
	Month     string `yaml:"month"`
	Current   int    `yaml:"current"`
	Optimized int    `yaml:"optimized"`
}

type DevOpsPoint struct {
	Time      string `yaml:"time"`
	Incidents int    `yaml:"incidents"`
	Automated int    `yaml:"automated"`
}

// ResourceRow 用于结果页“资源优化”对比表。
type ResourceRow struct {
	Name      string `yaml:"name"`
	Current   int    `yaml:"current"`
	Optimized int    `yaml:"optimized"`
}

type PerformancePoint struct {
	Time    string `yaml:"time"`
	CPU     int    `yaml:"cpu"`
	Memory  int    `yaml:"memory"`
	Network int    `yaml:"network"`
}

type CostSlice struct {
	Name  string `yaml:"name"`
	Value int    `yaml:"value"`
	Color string `yaml:"color"`
}

type Component struct {
	Name        string `yaml:"name"`
	Count       int    `yaml:"count"`
	Status      string `yaml:"status"`
	Utilization int    `yaml:"utilization"`
}

type Optimization struct {
	Action  string `yaml:"action"`
	Savings string `yaml:"savings"`
	Time    string `yaml:"time"`
}

type Setting struct {
	Name    string `yaml:"name"`
	Enabled bool   `yaml:"enabled"`
}

// Link 指向站内视图；View 为空表示占位链接。
type Link struct {
	Label string      `yaml:"label"`
	View  models.View `yaml:"view,omitempty"`
}

type FooterSection struct {
	Title string `yaml:"title"`
	Links []Link `yaml:"links"`
}

type HeroPage struct {
	Badge    string   `yaml:"badge"`
	Headline string   `yaml:"headline"`
	Tagline  string   `yaml:"tagline"`
	Perks    []string `yaml:"perks"`
	Stats    []Stat   `yaml:"stats"`
}

type FeaturesPage struct {
	Intro    string `yaml:"intro"`
	Benefits []Stat `yaml:"benefits"`
	Cards    []Card `yaml:"cards"`
}

type PricingPage struct {
	Intro              string  `yaml:"intro"`
	Plans              []Plan  `yaml:"plans"`
	EnterpriseFeatures []Blurb `yaml:"enterpriseFeatures"`
	FAQ                []FAQ   `yaml:"faq"`
}

type ResourcesPage struct {
	Featured    []Resource   `yaml:"featured"`
	Docs        []DocSection `yaml:"docs"`
	CaseStudies []CaseStudy  `yaml:"caseStudies"`
	Community   []Stat       `yaml:"community"`
}

type EnterprisePage struct {
	Features     []Card        `yaml:"features"`
	UseCases     []UseCase     `yaml:"useCases"`
	SupportTiers []SupportTier `yaml:"supportTiers"`
	Stats        []Stat        `yaml:"stats"`
}

type ResultsPage struct {
	Resources []ResourceRow `yaml:"resources"`
	Benefits  []string      `yaml:"benefits"`
}

type PremiumPage struct {
	Migration []MigrationStep `yaml:"migration"`
	Savings   []SavingsPoint  `yaml:"savings"`
	DevOps    []DevOpsPoint   `yaml:"devops"`
}

type DashboardPage struct {
	Metrics       []Stat             `yaml:"metrics"`
	Performance   []PerformancePoint `yaml:"performance"`
	CostBreakdown []CostSlice        `yaml:"costBreakdown"`
	Components    []Component        `yaml:"components"`
	Optimizations []Optimization     `yaml:"optimizations"`
	Settings      []Setting          `yaml:"settings"`
	Next          Blurb              `yaml:"next"`
}

type Footer struct {
	Sections       []FooterSection `yaml:"sections"`
	Certifications []string        `yaml:"certifications"`
}

// Catalog 汇总站点全部静态展示内容。
type Catalog struct {
	Hero       HeroPage       `yaml:"hero"`
	Features   FeaturesPage   `yaml:"features"`
	Pricing    PricingPage    `yaml:"pricing"`
	Resources  ResourcesPage  `yaml:"resources"`
	Enterprise EnterprisePage `yaml:"enterprise"`
	Results    ResultsPage    `yaml:"results"`
	Premium    PremiumPage    `yaml:"premium"`
	Dashboard  DashboardPage  `yaml:"dashboard"`
	Footer     Footer         `yaml:"footer"`
}

// TotalCost 汇总仪表盘成本分布。
func (d DashboardPage) TotalCost() int {
	total := 0
	for _, slice := range d.CostBreakdown {
		total += slice.Value
	}
	return total
}
