package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/arliss/portfolio/internal/config"
	"github.com/arliss/portfolio/internal/content"
	"github.com/arliss/portfolio/internal/palette"
	"github.com/arliss/portfolio/internal/preloader"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.Default()
	cfg.Server.GinMode = "test"
	cfg.Preloader.CycleDuration = time.Millisecond
	cfg.Preloader.FinalDisplayDuration = time.Millisecond
	s, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestIndexPage(t *testing.T) {
	s := newTestServer(t)
	rec := get(t, s, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("content type = %q", ct)
	}

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if got := doc.Find("title").Text(); got != "ARLISS" {
		t.Errorf("title = %q", got)
	}
	if doc.Find("#preloader #preloader-bar").Length() != 1 {
		t.Error("preloader overlay missing")
	}
	if got := doc.Find(".letter").Length(); got != len("ARLISS") {
		t.Errorf("letters = %d, want 6", got)
	}

	var anchors []string
	doc.Find("#sidebar a").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		anchors = append(anchors, href)
	})
	if strings.Join(anchors, " ") != "#about #designs #projects #socials" {
		t.Errorf("nav anchors = %v", anchors)
	}

	if got := doc.Find("[data-pattern]").Length(); got != len(content.Patterns()) {
		t.Errorf("patterns = %d, want %d", got, len(content.Patterns()))
	}
	if got := doc.Find("dialog [data-panel=code][hidden]").Length(); got != len(content.Patterns()) {
		t.Errorf("code panels hidden by default = %d", got)
	}
	if got := strings.TrimSpace(doc.Find(".corner.tl").Text()); got != "Software Engineer" {
		t.Errorf("top-left corner = %q", got)
	}
}

func TestHealthCheck(t *testing.T) {
	rec := get(t, newTestServer(t), "/healthz")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("healthz = %d %s", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("CORS header missing")
	}
}

func TestRandomColors(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		query  string
		status int
		count  int
	}{
		{"", http.StatusOK, 1},
		{"?n=9", http.StatusOK, 9},
		{"?n=0", http.StatusBadRequest, 0},
		{"?n=10", http.StatusBadRequest, 0},
		{"?n=abc", http.StatusBadRequest, 0},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			rec := get(t, s, "/api/v1/colors/random"+tt.query)
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d", rec.Code, tt.status)
			}
			if tt.status != http.StatusOK {
				return
			}
			var colors []ColorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &colors); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if len(colors) != tt.count {
				t.Fatalf("got %d colors, want %d", len(colors), tt.count)
			}
			for _, c := range colors {
				if !c.Valid || palette.Contrast(palette.Color(c.Color)) != palette.Color(c.Contrast) {
					t.Errorf("bad color %+v", c)
				}
			}
		})
	}
}

func TestContrastEndpoint(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		color     string
		want      string
		valid     bool
		canonical string
	}{
		{"%23000000", "#FFFFFF", true, "#000000"},
		{"fff", "#000000", true, "#FFFFFF"},
		{"%2312", "#000000", false, "#12"},
	}
	for _, tt := range tests {
		t.Run(tt.color, func(t *testing.T) {
			rec := get(t, s, "/api/v1/contrast?color="+tt.color)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d", rec.Code)
			}
			var resp ColorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Contrast != tt.want || resp.Valid != tt.valid || resp.Color != tt.canonical {
				t.Errorf("got %+v", resp)
			}
		})
	}

	if rec := get(t, s, "/api/v1/contrast"); rec.Code != http.StatusBadRequest {
		t.Errorf("missing color status = %d", rec.Code)
	}
}

func TestPatterns(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/api/v1/patterns")
	var list []PatternSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list) != len(content.Patterns()) {
		t.Fatalf("patterns = %d", len(list))
	}

	rec = get(t, s, "/api/v1/patterns/"+list[0].ID)
	var p content.Pattern
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.ID != list[0].ID || p.Code == "" {
		t.Errorf("pattern = %+v", p)
	}

	if rec := get(t, s, "/api/v1/patterns/nope"); rec.Code != http.StatusNotFound {
		t.Errorf("unknown pattern status = %d", rec.Code)
	}
}

func TestPreloaderStream(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/v1/preloader/stream")
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/event-stream") {
		t.Errorf("content type = %q", ct)
	}

	body := rec.Body.String()
	if got := strings.Count(body, "event:color\n"); got != preloader.Steps {
		t.Errorf("color events = %d, want %d", got, preloader.Steps)
	}
	if got := strings.Count(body, "event:commit\n"); got != preloader.Steps+1 {
		t.Errorf("commit events = %d, want %d", got, preloader.Steps+1)
	}
	if got := strings.Count(body, "event:complete\n"); got != 1 {
		t.Errorf("complete events = %d, want 1", got)
	}
	idx := strings.Index(body, "event:complete\ndata:")
	if idx < 0 {
		t.Fatal("complete event missing")
	}
	var done CompleteEvent
	data := strings.TrimSpace(strings.TrimPrefix(body[idx:], "event:complete\ndata:"))
	if err := json.Unmarshal([]byte(data), &done); err != nil {
		t.Fatalf("decode complete event %q: %v", data, err)
	}
	if done.Target != string(palette.Target) {
		t.Errorf("target = %s", done.Target)
	}
	if len(done.Colors) != preloader.Steps || len(done.Vars) != preloader.Steps {
		t.Fatalf("complete event colors=%d vars=%d, want %d", len(done.Colors), len(done.Vars), preloader.Steps)
	}
	if done.Vars["--generated-color-0"] != done.Colors[0] {
		t.Errorf("first theme variable = %q, want %q", done.Vars["--generated-color-0"], done.Colors[0])
	}
	if strings.Index(body, "event:color\n") > strings.Index(body, "event:commit\n") {
		t.Error("first color should be announced before the first commit")
	}
}

func TestPreloaderStreamStopsOnDisconnect(t *testing.T) {
	s := newTestServer(t)
	s.config.Preloader.CycleDuration = time.Hour

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/preloader/stream", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		s.Handler().ServeHTTP(rec, req)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("stream did not end after the client went away")
	}
	body := rec.Body.String()
	if strings.Contains(body, "event:commit") || strings.Contains(body, "event:complete") {
		t.Errorf("unexpected events after disconnect: %q", body)
	}
	if strings.Count(body, "event:color\n") != 1 {
		t.Errorf("expected only the first announcement, got %q", body)
	}
}

func TestRunShutsDown(t *testing.T) {
	s := newTestServer(t)
	s.config.Server.Addr = "127.0.0.1:0"

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run: %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestPageTemplateRegistered(t *testing.T) {
	page, err := parsePage()
	if err != nil {
		t.Fatalf("parsePage: %v", err)
	}
	if page.Lookup(pageTemplate) == nil {
		t.Errorf("template %q not defined; have %q", pageTemplate, page.DefinedTemplates())
	}
}
