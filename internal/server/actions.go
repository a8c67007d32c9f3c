package server

import (
	"net/http"

	"github.com/hitushen/opscut/internal/models"
)

// 所有表单操作完成后统一 303 跳回首页；被拒绝的操作视为空操作。

func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	v := visitorFrom(r)
	if v.ctrl.StartScan(r.FormValue("domain")) {
		s.log.Info().Str("visitor", v.id).Str("domain", v.ctrl.Snapshot().Domain).Msg("scan started")
	}
	redirectHome(w, r)
}

func (s *Server) handleUpgrade(w http.ResponseWriter, r *http.Request) {
	visitorFrom(r).ctrl.Upgrade()
	redirectHome(w, r)
}

func (s *Server) handleDemo(w http.ResponseWriter, r *http.Request) {
	visitorFrom(r).ctrl.StartDemo()
	redirectHome(w, r)
}

func (s *Server) handleReturnToPremium(w http.ResponseWriter, r *http.Request) {
	visitorFrom(r).ctrl.ReturnToPremium()
	redirectHome(w, r)
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	visitorFrom(r).ctrl.BackToLanding()
	redirectHome(w, r)
}

func (s *Server) handleNavigate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	if view, ok := models.ParseView(r.FormValue("view")); ok {
		visitorFrom(r).ctrl.Navigate(view)
	}
	redirectHome(w, r)
}

func (s *Server) handleTheme(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	var err error
	if theme := r.FormValue("theme"); theme != "" {
		err = s.sessions.SetTheme(w, r, theme)
	} else {
		_, err = s.sessions.ToggleTheme(w, r)
	}
	if err != nil {
		s.log.Debug().Err(err).Msg("theme not changed")
	}
	http.Redirect(w, r, returnPath(r), http.StatusSeeOther)
}

// returnPath 仅接受站内相对路径，防止开放重定向。
func returnPath(r *http.Request) string {
	next := r.FormValue("next")
	if len(next) > 1 && next[0] == '/' && next[1] != '/' && next[1] != '\\' {
		return next
	}
	return "/"
}
