package cache

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ZanzyTHEbar/cine-rec-o-meter/internal/monitoring"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheSetGet(t *testing.T) {
	c := NewCache(time.Minute, "catalog-a")

	key := c.generateKey(`{"genre":"Drama"}`)
	c.Set(key, []byte(`{"summary":"ok"}`))

	data, found := c.Get(key)
	require.True(t, found)
	assert.Equal(t, []byte(`{"summary":"ok"}`), data)
}

func TestCacheMiss(t *testing.T) {
	c := NewCache(time.Minute, "catalog-a")

	_, found := c.Get("missing")
	assert.False(t, found)
}

func TestCacheExpiration(t *testing.T) {
	c := NewCache(10*time.Millisecond, "catalog-a")

	c.Set("key", []byte("value"))
	time.Sleep(20 * time.Millisecond)

	_, found := c.Get("key")
	assert.False(t, found)
}

func TestCacheFingerprintScopesKeys(t *testing.T) {
	a := NewCache(time.Minute, "catalog-a")
	b := NewCache(time.Minute, "catalog-b")

	// The same request body yields different keys for different catalogs
	body := `{"genre":"Drama"}`
	assert.NotEqual(t, a.generateKey(body), b.generateKey(body))
}

func TestCacheClearAndSize(t *testing.T) {
	c := NewCache(time.Minute, "catalog-a")

	c.Set("k1", []byte("v1"))
	c.Set("k2", []byte("v2"))
	assert.Equal(t, 2, c.Size())

	c.Delete("k1")
	assert.Equal(t, 1, c.Size())

	c.Clear()
	assert.Equal(t, 0, c.Size())
}

func TestCacheStats(t *testing.T) {
	c := NewCache(30*time.Second, "catalog-a")
	c.Set("k1", []byte("v1"))

	stats := c.Stats()
	assert.Equal(t, 1, stats["total_items"])
	assert.Equal(t, 30.0, stats["ttl_seconds"])
}

func TestCacheMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c := NewCache(time.Minute, "catalog-a")
	metrics := monitoring.NewMetrics()

	handlerCalls := 0
	r := gin.New()
	r.Use(c.Middleware(metrics))
	r.POST("/recommendations", func(ctx *gin.Context) {
		handlerCalls++
		ctx.JSON(http.StatusOK, gin.H{"summary": "Precision: 0.500 | Accuracy: 0.500"})
	})

	post := func(body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/recommendations", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		return w
	}

	first := post(`{"genre":"Drama"}`)
	second := post(`{"genre":"Drama"}`)
	third := post(`{"genre":"Action"}`)

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, 2, handlerCalls, "identical bodies should hit the cache")
	assert.Equal(t, http.StatusOK, third.Code)

	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats["cache_hits"].(int64))
	assert.Equal(t, int64(2), stats["cache_misses"].(int64))
}

func TestCacheMiddlewareIgnoresOtherPaths(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c := NewCache(time.Minute, "catalog-a")
	metrics := monitoring.NewMetrics()

	r := gin.New()
	r.Use(c.Middleware(metrics))
	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, c.Size())
}
