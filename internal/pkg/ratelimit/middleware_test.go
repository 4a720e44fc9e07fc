package ratelimit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_RateLimitExceeded(t *testing.T) {
	gin.SetMode(gin.TestMode)
	lim := New(0, time.Minute) // limit 0 -> always deny
	r := gin.New()
	r.Use(Middleware(lim))
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, 429, w.Code)
	var body map[string]any
	err := json.Unmarshal(w.Body.Bytes(), &body)
	require.NoError(t, err)
	require.Equal(t, false, body["success"])
	require.Equal(t, float64(429), body["statusCode"])
	require.Equal(t, "Rate limit exceeded. Try again later.", body["message"])
	require.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestMiddleware_AllowsWithinLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	lim := New(2, time.Minute)
	r := gin.New()
	r.Use(Middleware(lim))
	r.POST("/login", func(c *gin.Context) {
		c.Status(200)
	})

	codes := []int{}
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("POST", "/login", nil))
		codes = append(codes, w.Code)
		if i == 0 {
			require.Equal(t, "1", w.Header().Get("X-RateLimit-Remaining"))
		}
	}
	require.Equal(t, []int{200, 200, 429}, codes)
}

func TestAllowSlidesWindow(t *testing.T) {
	lim := New(1, time.Minute)
	now := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	lim.now = func() time.Time { return now }

	ok, _, _ := lim.Allow("k")
	require.True(t, ok)
	ok, _, _ = lim.Allow("k")
	require.False(t, ok)

	now = now.Add(61 * time.Second)
	ok, remaining, _ := lim.Allow("k")
	require.True(t, ok)
	require.Equal(t, 0, remaining)
}

func TestCleanupDropsExpiredKeys(t *testing.T) {
	lim := New(5, time.Minute)
	now := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	lim.now = func() time.Time { return now }

	for i := 0; i < 1000; i++ {
		lim.Allow(fmt.Sprintf("10.0.%d.%d|/api/auth/login", i/256, i%256))
	}
	require.Equal(t, 1000, lim.Len())

	now = now.Add(30 * time.Second)
	lim.Allow("fresh")
	lim.Cleanup()
	require.Equal(t, 1001, lim.Len())

	now = now.Add(time.Hour)
	lim.Cleanup()
	require.Zero(t, lim.Len())
}

func TestCleanupKeepsLiveRequests(t *testing.T) {
	lim := New(2, time.Minute)
	now := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	lim.now = func() time.Time { return now }

	lim.Allow("k")
	now = now.Add(45 * time.Second)
	lim.Allow("k")
	now = now.Add(30 * time.Second)
	lim.Cleanup()

	require.Equal(t, 1, lim.Len())
	ok, remaining, _ := lim.Allow("k")
	require.True(t, ok)
	require.Equal(t, 0, remaining)
}

func TestStartCleanupStopsWithContext(t *testing.T) {
	lim := New(1, time.Millisecond)
	lim.Allow("k")

	ctx, cancel := context.WithCancel(context.Background())
	lim.StartCleanup(ctx, 5*time.Millisecond)

	require.Eventually(t, func() bool { return lim.Len() == 0 }, time.Second, 5*time.Millisecond)
	cancel()
}
