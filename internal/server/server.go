package server

import (
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/csrf"
	"github.com/rs/zerolog"

	"github.com/hitushen/opscut/internal/config"
	"github.com/hitushen/opscut/internal/content"
	"github.com/hitushen/opscut/internal/logging"
	"github.com/hitushen/opscut/internal/realtime"
	"github.com/hitushen/opscut/internal/scanner"
	"github.com/hitushen/opscut/internal/session"
	"github.com/hitushen/opscut/internal/views"
	"github.com/hitushen/opscut/web"
)

// Server 负责协调 HTTP 路由、模板渲染与访客状态。
type Server struct {
	cfg       *config.Config
	content   content.Bundle
	sessions  *session.Manager
	seq       *scanner.Sequencer
	scanner   *scanner.Manager
	registry  *views.Registry
	broker    *realtime.Broker
	templates *template.Template
	static    fs.FS
	log       zerolog.Logger
}

// New 创建并初始化带路由的 Server。opts 透传给扫描回放器。
func New(cfg *config.Config, bundle content.Bundle, opts ...scanner.Option) (*Server, error) {
	tmpl, err := template.New("opscut").Funcs(templateFuncs()).ParseFS(web.Templates, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	static, err := fs.Sub(web.Static, "static")
	if err != nil {
		return nil, fmt.Errorf("static assets: %w", err)
	}

	broker := realtime.NewBroker()
	seq := scanner.NewSequencer(bundle.Script, opts...)
	scanManager := scanner.NewManager(seq, cfg.ScanConcurrency)
	registry := views.NewRegistry(cfg.VisitorTTL, func(visitorID string) *views.Controller {
		return views.NewController(scanManager, realtime.NewPublisher(broker, visitorID))
	})
	registry.StartTicker(cfg.SweepInterval)

	srv := &Server{
		cfg:       cfg,
		content:   bundle,
		sessions:  session.NewManager(cfg.SessionKey, cfg.SecureCookies),
		seq:       seq,
		scanner:   scanManager,
		registry:  registry,
		broker:    broker,
		templates: tmpl,
		static:    static,
		log:       logging.For("http"),
	}
	return srv, nil
}

// Close 关闭后台组件。
func (s *Server) Close() {
	s.registry.Close()
	s.scanner.Close()
}

// Handler 返回根 HTTP 处理器。
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(logging.RequestLogger(s.log))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/healthz"))

	csrfMiddleware := csrf.Protect(
		s.cfg.CSRFKey,
		csrf.Secure(s.cfg.SecureCookies),
		csrf.Path("/"),
		csrf.FieldName("csrf_token"),
	)

	fileServer := http.FileServer(http.FS(s.static))
	r.Handle("/static/*", http.StripPrefix("/static/", fileServer))

	r.Group(func(site chi.Router) {
		site.Use(s.withVisitor)

		site.Get("/", s.renderCurrent)
		site.Get("/features", s.showStatic)
		site.Get("/pricing", s.showStatic)
		site.Get("/resources", s.showStatic)
		site.Get("/enterprise", s.showStatic)
		site.Get("/results.md", s.exportMarkdown)

		site.Post("/scan", s.handleScan)
		site.Post("/upgrade", s.handleUpgrade)
		site.Post("/demo", s.handleDemo)
		site.Post("/premium", s.handleReturnToPremium)
		site.Post("/home", s.handleHome)
		site.Post("/navigate", s.handleNavigate)
		site.Post("/theme", s.handleTheme)

		site.Route("/api", func(api chi.Router) {
			api.Get("/state", s.apiState)
			api.Get("/events", s.streamEvents)
		})
	})

	return csrfMiddleware(r)
}

type visitorKey struct{}

type visitor struct {
	id   string
	ctrl *views.Controller
}

// withVisitor 为请求绑定访客 ID 与对应的控制器。
func (s *Server) withVisitor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := s.sessions.VisitorID(w, r)
		if err != nil {
			s.log.Error().Err(err).Msg("visitor session")
			writeMessage(w, "session unavailable", http.StatusInternalServerError)
			return
		}
		ctx := context.WithValue(r.Context(), visitorKey{}, visitor{id: id, ctrl: s.registry.Get(id)})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func visitorFrom(r *http.Request) visitor {
	v, _ := r.Context().Value(visitorKey{}).(visitor)
	return v
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(payload)
}

func writeErr(w http.ResponseWriter, err error, status int) {
	writeMessage(w, err.Error(), status)
}

func writeMessage(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
