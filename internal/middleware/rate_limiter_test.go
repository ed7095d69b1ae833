package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stayloop/stayloop/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func limiterRouter(t *testing.T, config RateLimiterConfig) (*gin.Engine, *redis.Client) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	testRedis := testutil.SetupTestRedis(t)
	t.Cleanup(func() { testRedis.Teardown(t) })

	client := redis.NewClient(&redis.Options{Addr: testRedis.Server.Addr()})
	t.Cleanup(func() { client.Close() })

	router := gin.New()
	router.Use(NewRateLimiter(client, config).Middleware())
	router.POST("/login", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router, client
}

func hit(router *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiterAllowsUnderLimit(t *testing.T) {
	router, _ := limiterRouter(t, RateLimiterConfig{
		MaxRequests: 3,
		Window:      time.Minute,
	})

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, hit(router).Code)
	}
}

func TestRateLimiterBlocksOverLimit(t *testing.T) {
	router, _ := limiterRouter(t, RateLimiterConfig{
		MaxRequests: 2,
		Window:      time.Minute,
	})

	require.Equal(t, http.StatusOK, hit(router).Code)
	require.Equal(t, http.StatusOK, hit(router).Code)

	w := hit(router)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

// A Redis outage must not turn the limiter into a lockout.
func TestRateLimiterFailsOpen(t *testing.T) {
	gin.SetMode(gin.TestMode)

	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	defer client.Close()

	router := gin.New()
	router.Use(NewRateLimiter(client, RateLimiterConfig{
		MaxRequests: 1,
		Window:      time.Minute,
	}).Middleware())
	router.POST("/login", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	assert.Equal(t, http.StatusOK, hit(router).Code)
	assert.Equal(t, http.StatusOK, hit(router).Code)
}
