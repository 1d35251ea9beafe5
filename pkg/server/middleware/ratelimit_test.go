package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(0.001, 2)
	h := rl.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := make([]int, 0)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/routes", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// other clients have their own bucket
	req := httptest.NewRequest(http.MethodGet, "/api/routes", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimiterEvictsIdleVisitors(t *testing.T) {
	rl := NewRateLimiter(10, 1)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.getVisitor("10.0.0.1")
	rl.getVisitor("10.0.0.2")
	assert.Len(t, rl.visitors, 2)

	// cleanup runs at most once per cleanupInterval
	now = now.Add(50 * time.Second)
	rl.getVisitor("10.0.0.2")
	assert.Equal(t, now.Add(-50*time.Second), rl.lastCleanup)

	now = now.Add(2*time.Minute + 40*time.Second)
	rl.getVisitor("10.0.0.3")
	assert.Equal(t, now, rl.lastCleanup)
	assert.Len(t, rl.visitors, 2)
	assert.NotContains(t, rl.visitors, "10.0.0.1")
	assert.Contains(t, rl.visitors, "10.0.0.2")
	assert.Contains(t, rl.visitors, "10.0.0.3")
}
