package server

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/csrf"

	"github.com/hitushen/opscut/internal/content"
	"github.com/hitushen/opscut/internal/models"
	"github.com/hitushen/opscut/internal/report"
)

var dashboardTabs = []string{"overview", "infrastructure", "costs", "optimization"}

type navItem struct {
	View   models.View
	Label  string
	Active bool
}

// pageData 是所有页面模板共享的数据。
type pageData struct {
	View      models.View
	Title     string
	Snapshot  models.Snapshot
	Catalog   content.Catalog
	Steps     []models.ScanStep
	ETA       time.Duration
	Nav       []navItem
	Theme     string
	Yearly    bool
	Tab       string
	Tabs      []string
	Path      string
	CSRFField template.HTML
	CSRFToken string
	Body      template.HTML
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"money":    money,
		"number":   report.Number,
		"severity": report.SeverityLabel,
		"pct": func(v float64) string {
			return fmt.Sprintf("%.0f", v)
		},
		"price": func(p content.Plan, yearly bool) string {
			return report.Money(float64(p.PriceFor(yearly)))
		},
		"yearlySavings": func(p content.Plan) string {
			return report.Money(float64(p.YearlySavings()))
		},
		"share": func(part, total int) int {
			if total <= 0 {
				return 0
			}
			return part * 100 / total
		},
		"lower": strings.ToLower,
	}
}

// money 兼容模板中的整数与浮点金额。
func money(v interface{}) string {
	switch n := v.(type) {
	case int:
		return report.Money(float64(n))
	case float64:
		return report.Money(n)
	}
	return fmt.Sprint(v)
}

func (s *Server) showStatic(w http.ResponseWriter, r *http.Request) {
	target, ok := models.ParseView(strings.TrimPrefix(r.URL.Path, "/"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	ctrl := visitorFrom(r).ctrl
	ctrl.Navigate(target)
	if ctrl.View() != target {
		redirectHome(w, r)
		return
	}
	s.renderCurrent(w, r)
}

func (s *Server) renderCurrent(w http.ResponseWriter, r *http.Request) {
	snap := visitorFrom(r).ctrl.Snapshot()
	data := s.pageData(r, snap)

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "view-"+snap.View.String(), data); err != nil {
		s.log.Error().Err(err).Str("view", snap.View.String()).Msg("render view")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	data.Body = template.HTML(body.String())

	var page bytes.Buffer
	if err := s.templates.ExecuteTemplate(&page, "layout", data); err != nil {
		s.log.Error().Err(err).Msg("render layout")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = page.WriteTo(w)
}

func (s *Server) pageData(r *http.Request, snap models.Snapshot) pageData {
	query := r.URL.Query()
	tab := strings.ToLower(query.Get("tab"))
	if !validTab(tab) {
		tab = dashboardTabs[0]
	}
	return pageData{
		View:      snap.View,
		Title:     snap.View.Title(),
		Snapshot:  snap,
		Catalog:   s.content.Catalog,
		Steps:     s.seq.Script().Steps,
		ETA:       s.seq.Script().Duration(),
		Nav:       navFor(snap.View),
		Theme:     s.sessions.Theme(r),
		Yearly:    query.Get("billing") == "yearly",
		Tab:       tab,
		Tabs:      dashboardTabs,
		Path:      r.URL.RequestURI(),
		CSRFField: csrf.TemplateField(r),
		CSRFToken: csrf.Token(r),
	}
}

func navFor(current models.View) []navItem {
	items := []navItem{
		{View: models.ViewFeatures, Label: "Features"},
		{View: models.ViewPricing, Label: "Pricing"},
		{View: models.ViewResources, Label: "Resources"},
		{View: models.ViewEnterprise, Label: "Enterprise"},
	}
	for i := range items {
		items[i].Active = items[i].View == current
	}
	return items
}

func validTab(tab string) bool {
	for _, t := range dashboardTabs {
		if t == tab {
			return true
		}
	}
	return false
}
