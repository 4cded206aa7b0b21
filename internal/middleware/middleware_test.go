package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestIDGeneratedAndPropagated(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get(RequestIDHeader)
	if generated == "" || w.Body.String() != generated {
		t.Fatalf("generated id %q, body %q", generated, w.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Fatalf("propagated id = %q, want abc-123", got)
	}
}

func TestRateLimiterRejectsBurstOverflow(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	fixed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return fixed }

	r := gin.New()
	r.POST("/submit", rl.Handler(), func(c *gin.Context) { c.Status(http.StatusCreated) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/submit", nil))
		codes = append(codes, w.Code)
	}
	want := []int{http.StatusCreated, http.StatusCreated, http.StatusTooManyRequests}
	for i := range want {
		if codes[i] != want[i] {
			t.Fatalf("codes = %v, want %v", codes, want)
		}
	}

	// one token refills after a second
	fixed = fixed.Add(time.Second)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/submit", nil))
	if w.Code != http.StatusCreated {
		t.Fatalf("after refill code = %d, want 201", w.Code)
	}
}

func TestRateLimiterSweepsIdleVisitorsPeriodically(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := start
	rl.now = func() time.Time { return clock }

	rl.allow("198.51.100.1")
	rl.allow("198.51.100.2")
	if len(rl.visitors) != 2 {
		t.Fatalf("visitors = %d, want 2", len(rl.visitors))
	}

	// both go idle past the TTL; the next request runs the due sweep
	clock = start.Add(rl.idleTTL + 30*time.Second)
	rl.allow("198.51.100.2")
	if _, ok := rl.visitors["198.51.100.1"]; ok {
		t.Fatal("idle visitor survived a due sweep")
	}
	swept := rl.lastSweep

	clock = clock.Add(rl.sweepEvery / 2)
	rl.allow("198.51.100.3")
	if !rl.lastSweep.Equal(swept) {
		t.Fatal("sweep ran again before sweepEvery elapsed")
	}
	if len(rl.visitors) != 2 {
		t.Fatalf("visitors = %d, want 2", len(rl.visitors))
	}
}

func TestRateLimiterDisabled(t *testing.T) {
	rl := NewRateLimiter(0, 0)
	r := gin.New()
	r.POST("/submit", rl.Handler(), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	for i := 0; i < 20; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/submit", nil))
		if w.Code != http.StatusNoContent {
			t.Fatalf("request %d code = %d", i, w.Code)
		}
	}
}
