package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"modelgate/internal/config"
	"modelgate/internal/core"
	"modelgate/internal/storage"
	"modelgate/internal/util"
)

// upstreamStub counts outbound calls and serves a canned chat completion.
type upstreamStub struct {
	server *httptest.Server
	calls  atomic.Int64
}

func newUpstreamStub(handler http.HandlerFunc) *upstreamStub {
	stub := &upstreamStub{}
	stub.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stub.calls.Add(1)
		handler(w, r)
	}))
	return stub
}

func defaultUpstreamHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set(core.HeaderContentType, core.ContentTypeJSON)
	_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"Hi!"}}],"usage":{"total_tokens":5}}`))
}

func newTestServer(t *testing.T, endpoint string) *Server {
	t.Helper()

	statsPath := filepath.Join(t.TempDir(), "stats.json")
	st := storage.NewFileStorage(statsPath)

	cfg := config.ServerConfig{
		Port:     "0",
		GinMode:  "test",
		Token:    "test-token",
		Endpoint: endpoint,
		HTTPClientSettings: config.HTTPClientSettings{
			MaxIdleConns:        1,
			MaxIdleConnsPerHost: 1,
			MaxConnsPerHost:     1,
			IdleConnTimeout:     time.Second,
			TLSHandshakeTimeout: time.Second,
			RequestTimeout:      5 * time.Second,
		},
		Storage: st,
		Logger:  &core.NopLogger{},
	}

	server, err := NewServer(cfg)
	if err != nil {
		t.Fatalf("Failed to create test server: %v", err)
	}

	t.Cleanup(func() {
		_ = server.Close()
		_ = st.Close()
	})

	return server
}

func readAll(r *http.Request) []byte {
	body, _ := io.ReadAll(r.Body)
	return body
}

func doGet(t *testing.T, server *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	server.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := util.UnmarshalJSON(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Response is not valid JSON: %v (body: %s)", err, w.Body.String())
	}
	return body
}

func TestRoutes_DocsAndHealth(t *testing.T) {
	stub := newUpstreamStub(defaultUpstreamHandler)
	defer stub.server.Close()
	server := newTestServer(t, stub.server.URL)

	w := doGet(t, server, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("GET / should return 200, got %d", w.Code)
	}
	docs := decodeBody(t, w)
	if docs["endpoints"] == nil {
		t.Error("Docs response should list endpoints")
	}

	w = doGet(t, server, "/health")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /health should return 200, got %d", w.Code)
	}
	health := decodeBody(t, w)
	if health["status"] != "healthy" {
		t.Errorf("Expected status healthy, got %v", health["status"])
	}
	if health["timestamp"] == nil {
		t.Error("Health response should carry a timestamp")
	}
	if count, ok := health["models_available"].(float64); !ok || count <= 0 {
		t.Errorf("Expected positive models_available, got %v", health["models_available"])
	}
}

func TestRoutes_NoRoute(t *testing.T) {
	stub := newUpstreamStub(defaultUpstreamHandler)
	defer stub.server.Close()
	server := newTestServer(t, stub.server.URL)

	w := doGet(t, server, "/nope/nothing")
	if w.Code != http.StatusNotFound {
		t.Fatalf("Unknown route should return 404, got %d", w.Code)
	}
	body := decodeBody(t, w)
	routes, ok := body["valid_routes"].([]any)
	if !ok || len(routes) == 0 {
		t.Errorf("404 response should list valid routes, got %v", body)
	}
}

func TestRoutes_Stats(t *testing.T) {
	stub := newUpstreamStub(defaultUpstreamHandler)
	defer stub.server.Close()
	server := newTestServer(t, stub.server.URL)

	w := doGet(t, server, "/api/stats")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/stats should return 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	for _, key := range []string{"currentQPS", "stats24h", "stats7d", "stats30d"} {
		if _, ok := body[key]; !ok {
			t.Errorf("Stats response missing %q", key)
		}
	}
}

func TestRoutes_RequestIDHeader(t *testing.T) {
	stub := newUpstreamStub(defaultUpstreamHandler)
	defer stub.server.Close()
	server := newTestServer(t, stub.server.URL)

	w := doGet(t, server, "/health")
	if w.Header().Get(core.HeaderRequestID) == "" {
		t.Error("Expected X-Request-ID response header")
	}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(core.HeaderRequestID, "fixed-id")
	w = httptest.NewRecorder()
	server.router.ServeHTTP(w, req)
	if got := w.Header().Get(core.HeaderRequestID); got != "fixed-id" {
		t.Errorf("Expected incoming request ID to be echoed, got %q", got)
	}
}

func TestRoutes_CORSPreflight(t *testing.T) {
	stub := newUpstreamStub(defaultUpstreamHandler)
	defer stub.server.Close()
	server := newTestServer(t, stub.server.URL)

	req := httptest.NewRequest(http.MethodOptions, "/api/models", nil)
	w := httptest.NewRecorder()
	server.router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("OPTIONS preflight should return 204, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("Expected CORS headers on preflight response")
	}
}

func TestNewServer_RequiresDependencies(t *testing.T) {
	base := config.ServerConfig{
		Port:    "0",
		GinMode: "test",
		Token:   "test-token",
		Storage: storage.NewFileStorage(filepath.Join(t.TempDir(), "stats.json")),
		Logger:  &core.NopLogger{},
	}

	noLogger := base
	noLogger.Logger = nil
	if _, err := NewServer(noLogger); err == nil {
		t.Error("Expected error when logger is missing")
	}

	noStorage := base
	noStorage.Storage = nil
	if _, err := NewServer(noStorage); err == nil {
		t.Error("Expected error when storage is missing")
	}

	noToken := base
	noToken.Token = ""
	if _, err := NewServer(noToken); err == nil {
		t.Error("Expected error when token is missing")
	}
}
