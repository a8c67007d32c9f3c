package server

import (
	"bytes"
	"mime"
	"net/http"
	"time"

	"github.com/gorilla/csrf"

	"github.com/hitushen/opscut/internal/realtime"
	"github.com/hitushen/opscut/internal/report"
)

const keepAliveInterval = 20 * time.Second

func (s *Server) apiState(w http.ResponseWriter, r *http.Request) {
	snap := visitorFrom(r).ctrl.Snapshot()
	writeJSON(w, map[string]interface{}{
		"snapshot":  snap,
		"title":     snap.View.Title(),
		"theme":     s.sessions.Theme(r),
		"csrfToken": csrf.Token(r),
	})
}

func (s *Server) exportMarkdown(w http.ResponseWriter, r *http.Request) {
	snap := visitorFrom(r).ctrl.Snapshot()
	if snap.Result == nil {
		writeMessage(w, "no scan result available", http.StatusNotFound)
		return
	}
	var buf bytes.Buffer
	if err := report.WriteMarkdown(&buf, *snap.Result, s.content.Catalog.Results.Resources); err != nil {
		writeErr(w, err, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": "opscut-" + snap.Result.Domain + ".md",
	}))
	_, _ = buf.WriteTo(w)
}

func (s *Server) streamEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "stream unsupported", http.StatusInternalServerError)
		return
	}
	v := visitorFrom(r)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch, cleanup := s.broker.Subscribe(v.id)
	defer cleanup()

	// 先推送一次当前快照，客户端据此校准页面。
	snap := v.ctrl.Snapshot()
	s.broker.Publish(v.id, realtime.Event{Type: realtime.EventViewChanged, View: snap.View.String(), Payload: snap})

	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()
	notify := r.Context().Done()

	for {
		select {
		case msg, open := <-ch:
			if !open {
				return
			}
			_, _ = w.Write([]byte("data: "))
			_, _ = w.Write(msg)
			_, _ = w.Write([]byte("\n\n"))
			flusher.Flush()
		case <-keepAlive.C:
			s.registry.Touch(v.id)
			_, _ = w.Write([]byte(": keep-alive\n\n"))
			flusher.Flush()
		case <-notify:
			return
		}
	}
}
