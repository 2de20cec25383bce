package app

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/wordsim/internal/config"
	"github.com/heartmarshall/wordsim/internal/similarity"
	"github.com/heartmarshall/wordsim/internal/taxonomy/taxonomytest"
	"github.com/heartmarshall/wordsim/internal/transport/middleware"
)

func testServerConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:            "127.0.0.1",
			Port:            8080,
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    5 * time.Second,
			IdleTimeout:     5 * time.Second,
			ShutdownTimeout: 5 * time.Second,
			RateLimitPerMin: 3,
			MaxBodyBytes:    64,
			MaxSeriesLength: 10,
		},
		Analysis: config.AnalysisConfig{DefaultMeasure: "path", ReportFormat: "json"},
		CORS: config.CORSConfig{
			AllowedOrigins: "https://example.com",
			AllowedMethods: "GET,POST,OPTIONS",
			AllowedHeaders: "Content-Type",
			MaxAge:         60,
		},
	}
}

func testEngine(t *testing.T) *Engine {
	t.Helper()
	g := taxonomytest.Graph(t)
	return &Engine{Graph: g, Similarity: similarity.NewService(discardLogger(), g)}
}

func TestServer_HandlerMiddleware(t *testing.T) {
	t.Parallel()

	s := NewServer(testServerConfig(), discardLogger(), testEngine(t))
	defer s.limiter.Stop()

	req := httptest.NewRequest(http.MethodGet, "/v1/similarity?word_a=car&word_b=automobile", nil)
	req.Header.Set("Origin", "https://example.com")
	req.RemoteAddr = "10.0.0.1:1234"
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, "https://example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Body.String(), `"score":1`)
}

func TestServer_RateLimit(t *testing.T) {
	t.Parallel()

	s := NewServer(testServerConfig(), discardLogger(), testEngine(t))
	defer s.limiter.Stop()

	codes := make([]int, 0, 4)
	for i := 0; i < 4; i++ {
		req := httptest.NewRequest(http.MethodGet, "/live", nil)
		req.RemoteAddr = "10.0.0.2:1234"
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{200, 200, 200, http.StatusTooManyRequests}, codes)
}

func TestServer_BodyLimit(t *testing.T) {
	t.Parallel()

	s := NewServer(testServerConfig(), discardLogger(), testEngine(t))
	defer s.limiter.Stop()

	body := fmt.Sprintf(`{"x":[%s],"y":[%s]}`, strings.Repeat("1,", 40)+"2", strings.Repeat("1,", 40)+"2")
	req := httptest.NewRequest(http.MethodPost, "/v1/correlation", strings.NewReader(body))
	req.RemoteAddr = "10.0.0.3:1234"
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestServer_ServeAndShutdown(t *testing.T) {
	t.Parallel()

	s := NewServer(testServerConfig(), discardLogger(), testEngine(t))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/live")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServer_RunListenError(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	cfg := testServerConfig()
	cfg.Server.Port = ln.Addr().(*net.TCPAddr).Port
	s := NewServer(cfg, discardLogger(), testEngine(t))

	err = s.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen on")
}
