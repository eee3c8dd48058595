package v1

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// fakeCounter - счетчик в памяти вместо Redis
// Окно не учитывается, чтобы тест не зависел от границы минуты.
type fakeCounter struct {
	mu    sync.Mutex
	count int64
	keys  []string
	err   error
}

func (f *fakeCounter) IncrWithExpire(_ context.Context, key string, _ time.Duration) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	f.keys = append(f.keys, key)
	f.count++
	return f.count, nil
}

func newRateLimitedRouter(counter RateCounter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	// Лимит 2 запроса в минуту плюс 1 сверх лимита
	router.GET("/ping", RateLimitMiddleware(counter, newTestConfig(), newTestLogger()), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestRateLimitMiddleware_RejectsAfterBurst(t *testing.T) {
	router := newRateLimitedRouter(&fakeCounter{})

	for i := 0; i < 3; i++ {
		w := makeRequest(router, http.MethodGet, "/ping", nil)
		assert.Equal(t, http.StatusOK, w.Code, "request %d", i+1)
		assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	}

	w := makeRequest(router, http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), codeRateLimited)
}

func TestRateLimitMiddleware_KeysByUser(t *testing.T) {
	counter := &fakeCounter{}
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/ping",
		func(c *gin.Context) { c.Set(userIDKey, "user-1") },
		RateLimitMiddleware(counter, newTestConfig(), newTestLogger()),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	w := makeRequest(router, http.MethodGet, "/ping", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, counter.keys, 1)
	assert.Contains(t, counter.keys[0], "ratelimit:user:user-1:")
}

func TestRateLimitMiddleware_FailsOpen(t *testing.T) {
	router := newRateLimitedRouter(&fakeCounter{err: errors.New("redis down")})

	for i := 0; i < 10; i++ {
		w := makeRequest(router, http.MethodGet, "/ping", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
	}
}
