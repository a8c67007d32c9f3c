package server

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/hitushen/opscut/internal/config"
	"github.com/hitushen/opscut/internal/content"
	"github.com/hitushen/opscut/internal/logging"
	"github.com/hitushen/opscut/internal/models"
	"github.com/hitushen/opscut/internal/realtime"
	"github.com/hitushen/opscut/internal/scanner"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logging.ConfigureTests()

	cfg := &config.Config{
		Addr:            ":0",
		SessionKey:      []byte(strings.Repeat("s", 32)),
		CSRFKey:         []byte(strings.Repeat("c", 32)),
		ScanConcurrency: 2,
		VisitorTTL:      time.Minute,
		SweepInterval:   time.Minute,
	}
	srv, err := New(cfg, content.Default(), scanner.Instant())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(func() {
		ts.Close()
		srv.Close()
	})
	return ts
}

type stateResponse struct {
	Snapshot  models.Snapshot `json:"snapshot"`
	Title     string          `json:"title"`
	Theme     string          `json:"theme"`
	CSRFToken string          `json:"csrfToken"`
}

// visitorClient 模拟一个携带 Cookie 的浏览器访客。
type visitorClient struct {
	t    *testing.T
	base string
	http *http.Client
}

func newVisitor(t *testing.T, ts *httptest.Server) *visitorClient {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	return &visitorClient{t: t, base: ts.URL, http: &http.Client{Jar: jar, Timeout: 5 * time.Second}}
}

func (c *visitorClient) get(path string) (int, string) {
	c.t.Helper()
	resp, err := c.http.Get(c.base + path)
	if err != nil {
		c.t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func (c *visitorClient) state() stateResponse {
	c.t.Helper()
	status, body := c.get("/api/state")
	if status != http.StatusOK {
		c.t.Fatalf("GET /api/state = %d", status)
	}
	var st stateResponse
	if err := json.Unmarshal([]byte(body), &st); err != nil {
		c.t.Fatalf("decode state: %v", err)
	}
	return st
}

func (c *visitorClient) post(path string, form url.Values) int {
	c.t.Helper()
	if form == nil {
		form = url.Values{}
	}
	form.Set("csrf_token", c.state().CSRFToken)
	resp, err := c.http.PostForm(c.base+path, form)
	if err != nil {
		c.t.Fatalf("POST %s: %v", path, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode
}

func (c *visitorClient) waitView(view models.View) stateResponse {
	c.t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for {
		st := c.state()
		if st.Snapshot.View == view {
			return st
		}
		if time.Now().After(deadline) {
			c.t.Fatalf("view = %s, want %s", st.Snapshot.View, view)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestLandingRenders(t *testing.T) {
	t.Parallel()

	c := newVisitor(t, newTestServer(t))
	status, body := c.get("/")
	if status != http.StatusOK {
		t.Fatalf("GET / = %d", status)
	}
	for _, want := range []string{
		"Cut Cloud Costs by 70% Instantly",
		`action="/scan"`,
		`name="csrf_token"`,
		`data-view="landing"`,
		"SOC 2 Type II",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("landing page missing %q", want)
		}
	}
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	status, _ := newVisitor(t, newTestServer(t)).get("/healthz")
	if status != http.StatusOK {
		t.Fatalf("GET /healthz = %d", status)
	}
}

func TestStaticPages(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	tests := []struct {
		path string
		view models.View
		want []string
	}{
		{"/features", models.ViewFeatures, []string{"Real-time Infrastructure Discovery", "50-70%"}},
		{"/pricing", models.ViewPricing, []string{"Professional", "$299", "Most Popular"}},
		{"/pricing?billing=yearly", models.ViewPricing, []string{"$239", "Save $720 per year"}},
		{"/resources", models.ViewResources, []string{"TechCorp", "API Documentation"}},
		{"/enterprise", models.ViewEnterprise, []string{"Financial Services", "Enterprise Plus"}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			c := newVisitor(t, ts)
			status, body := c.get(tt.path)
			if status != http.StatusOK {
				t.Fatalf("GET %s = %d", tt.path, status)
			}
			for _, want := range tt.want {
				if !strings.Contains(body, want) {
					t.Errorf("%s missing %q", tt.path, want)
				}
			}
			if got := c.state().Snapshot.View; got != tt.view {
				t.Fatalf("view = %s, want %s", got, tt.view)
			}
		})
	}
}

func TestScanFlow(t *testing.T) {
	t.Parallel()

	c := newVisitor(t, newTestServer(t))
	if status := c.post("/scan", url.Values{"domain": {"  https://Example.com/app  "}}); status != http.StatusOK {
		t.Fatalf("POST /scan = %d", status)
	}

	st := c.waitView(models.ViewResults)
	if st.Snapshot.Domain != "example.com" || st.Snapshot.Result == nil {
		t.Fatalf("unexpected snapshot: %+v", st.Snapshot)
	}
	if st.Snapshot.Result.Savings != 10801 || len(st.Snapshot.Log) != 6 || st.Snapshot.Percent != 100 {
		t.Fatalf("unexpected result: %+v", st.Snapshot)
	}

	_, body := c.get("/")
	for _, want := range []string{"$15,430", "$4,629", "$10,801", "70% cost reduction", "Over-provisioned", "EC2 Instances"} {
		if !strings.Contains(body, want) {
			t.Errorf("results page missing %q", want)
		}
	}

	status, md := c.get("/results.md")
	if status != http.StatusOK || !strings.Contains(md, "`example.com`") {
		t.Fatalf("GET /results.md = %d:\n%s", status, md)
	}

	c.post("/upgrade", nil)
	c.waitView(models.ViewPremium)
	c.post("/demo", nil)
	st = c.waitView(models.ViewDashboard)
	if st.Snapshot.Result == nil || st.Snapshot.Result.Domain != "example.com" {
		t.Fatalf("dashboard lost the result: %+v", st.Snapshot)
	}

	_, body = c.get("/?tab=costs")
	if !strings.Contains(body, "Cost Breakdown") || !strings.Contains(body, "$4,629") {
		t.Errorf("costs tab not rendered")
	}
	_, body = c.get("/?tab=unknown")
	if !strings.Contains(body, "Performance") {
		t.Errorf("unknown tab should fall back to overview")
	}

	// 非信息页时直接访问信息页会回到当前视图。
	status, body = c.get("/features")
	if status != http.StatusOK || !strings.Contains(body, `data-view="dashboard"`) {
		t.Fatalf("GET /features from dashboard = %d", status)
	}

	c.post("/premium", nil)
	if st := c.waitView(models.ViewPremium); st.Snapshot.Result == nil {
		t.Fatal("premium lost the result")
	}

	c.post("/home", nil)
	st = c.waitView(models.ViewLanding)
	if st.Snapshot.Domain != "" || st.Snapshot.Result != nil {
		t.Fatalf("context not cleared: %+v", st.Snapshot)
	}
	if status, _ := c.get("/results.md"); status != http.StatusNotFound {
		t.Fatalf("GET /results.md after reset = %d", status)
	}
}

func TestExportFilenameIsQuoted(t *testing.T) {
	t.Parallel()

	c := newVisitor(t, newTestServer(t))
	c.post("/scan", url.Values{"domain": {`a"b c.com`}})
	st := c.waitView(models.ViewResults)
	if st.Snapshot.Domain != `a"b c.com` {
		t.Fatalf("domain = %q", st.Snapshot.Domain)
	}

	resp, err := c.http.Get(c.base + "/results.md")
	if err != nil {
		t.Fatalf("GET /results.md: %v", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	disposition, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition"))
	if err != nil {
		t.Fatalf("parse Content-Disposition %q: %v", resp.Header.Get("Content-Disposition"), err)
	}
	if disposition != "attachment" || params["filename"] != `opscut-a"b c.com.md` {
		t.Fatalf("disposition = %q, params = %v", disposition, params)
	}
}

func TestScanningPageShowsEstimate(t *testing.T) {
	t.Parallel()
	logging.ConfigureTests()

	cfg := &config.Config{
		Addr:            ":0",
		SessionKey:      []byte(strings.Repeat("s", 32)),
		CSRFKey:         []byte(strings.Repeat("c", 32)),
		ScanConcurrency: 1,
		VisitorTTL:      time.Minute,
		SweepInterval:   time.Minute,
	}
	srv, err := New(cfg, content.Default(), scanner.Instant())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(srv.Close)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	data := srv.pageData(req, models.Snapshot{View: models.ViewScanning, Domain: "example.com"})
	if data.ETA != 6300*time.Millisecond {
		t.Fatalf("ETA = %v, want 6.3s", data.ETA)
	}

	var buf strings.Builder
	if err := srv.templates.ExecuteTemplate(&buf, "view-scanning", data); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "Estimated time: <span id=\"scan-eta\">6.3s</span>") {
		t.Fatalf("estimate missing:\n%s", buf.String())
	}
}

func TestBlankScanIsIgnored(t *testing.T) {
	t.Parallel()

	c := newVisitor(t, newTestServer(t))
	for _, domain := range []string{"", "   "} {
		if status := c.post("/scan", url.Values{"domain": {domain}}); status != http.StatusOK {
			t.Fatalf("POST /scan = %d", status)
		}
		if st := c.state(); st.Snapshot.View != models.ViewLanding || st.Snapshot.Domain != "" {
			t.Fatalf("blank scan changed state: %+v", st.Snapshot)
		}
	}
}

func TestNavigateForm(t *testing.T) {
	t.Parallel()

	c := newVisitor(t, newTestServer(t))
	c.post("/navigate", url.Values{"view": {"enterprise"}})
	c.waitView(models.ViewEnterprise)

	c.post("/navigate", url.Values{"view": {"dashboard"}})
	c.post("/navigate", url.Values{"view": {"nowhere"}})
	if got := c.state().Snapshot.View; got != models.ViewEnterprise {
		t.Fatalf("invalid navigation changed view to %s", got)
	}
}

func TestFormsRequireCSRFToken(t *testing.T) {
	t.Parallel()

	c := newVisitor(t, newTestServer(t))
	c.get("/")
	resp, err := c.http.PostForm(c.base+"/scan", url.Values{"domain": {"example.com"}})
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("POST without token = %d, want 403", resp.StatusCode)
	}
	if got := c.state().Snapshot.View; got != models.ViewLanding {
		t.Fatalf("view = %s", got)
	}
}

func TestVisitorsAreIsolated(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	alice, bob := newVisitor(t, ts), newVisitor(t, ts)
	bob.get("/pricing")

	alice.post("/scan", url.Values{"domain": {"alice.io"}})
	alice.waitView(models.ViewResults)

	st := bob.state()
	if st.Snapshot.View != models.ViewPricing || st.Snapshot.Domain != "" {
		t.Fatalf("bob affected by alice: %+v", st.Snapshot)
	}
}

func TestThemeToggle(t *testing.T) {
	t.Parallel()

	c := newVisitor(t, newTestServer(t))
	if st := c.state(); st.Theme != "light" {
		t.Fatalf("default theme = %q", st.Theme)
	}
	c.post("/theme", url.Values{"next": {"/pricing"}})
	_, body := c.get("/")
	if !strings.Contains(body, `data-theme="dark"`) {
		t.Fatal("theme not applied")
	}
	c.post("/theme", url.Values{"theme": {"light"}})
	if st := c.state(); st.Theme != "light" {
		t.Fatalf("theme = %q", st.Theme)
	}
}

func TestReturnPath(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"/pricing":         "/pricing",
		"//evil.example":   "/",
		"/\\evil.example":  "/",
		"https://evil.com": "/",
		"":                 "/",
	}
	for next, want := range tests {
		r := httptest.NewRequest(http.MethodPost, "/theme", strings.NewReader(url.Values{"next": {next}}.Encode()))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		if got := returnPath(r); got != want {
			t.Errorf("returnPath(%q) = %q, want %q", next, got, want)
		}
	}
}

func TestEventsStream(t *testing.T) {
	t.Parallel()

	c := newVisitor(t, newTestServer(t))
	c.get("/features")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/api/events", nil)
	if err != nil {
		t.Fatal(err)
	}
	stream := &http.Client{Jar: c.http.Jar}
	resp, err := stream.Do(req)
	if err != nil {
		t.Fatalf("GET /api/events: %v", err)
	}
	defer resp.Body.Close()
	if ct := resp.Header.Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("Content-Type = %q", ct)
	}

	events := make(chan realtime.Event, 32)
	go func() {
		lines := bufio.NewScanner(resp.Body)
		for lines.Scan() {
			line := lines.Text()
			if !strings.HasPrefix(line, "data: ") {
				continue
			}
			var evt realtime.Event
			if json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &evt) == nil {
				events <- evt
			}
		}
		close(events)
	}()

	next := func() realtime.Event {
		t.Helper()
		select {
		case evt, ok := <-events:
			if !ok {
				t.Fatal("stream closed")
			}
			return evt
		case <-time.After(3 * time.Second):
			t.Fatal("no event received")
		}
		return realtime.Event{}
	}

	if evt := next(); evt.Type != realtime.EventViewChanged || evt.View != "features" {
		t.Fatalf("initial event = %+v", evt)
	}

	c.post("/navigate", url.Values{"view": {"landing"}})
	if evt := next(); evt.Type != realtime.EventViewChanged || evt.View != "landing" {
		t.Fatalf("navigation event = %+v", evt)
	}

	c.post("/scan", url.Values{"domain": {"example.com"}})
	seen := map[string]int{}
	for seen[realtime.EventScanComplete] == 0 {
		seen[next().Type]++
	}
	if seen[realtime.EventScanStep] != 6 || seen[realtime.EventScanProgress] != 6 {
		t.Fatalf("unexpected event counts: %v", seen)
	}
}
