package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func setupRateLimitRouter(client *redis.Client) (*gin.Engine, *bool) {
	gin.SetMode(gin.TestMode)
	handlerRan := false
	r := gin.New()
	r.GET("/catfacts", RateLimitMiddleware(client, 100, time.Minute), func(c *gin.Context) {
		handlerRan = true
		c.JSON(http.StatusOK, gin.H{"facts": []string{}})
	})
	return r, &handlerRan
}

func TestRateLimitMiddleware_RedisUnavailable(t *testing.T) {
	// Nothing listens on this address, so the anonymous ClientIP-keyed
	// counter increment fails and the request must be rejected, not let
	// through uncounted.
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	router, handlerRan := setupRateLimitRouter(client)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/catfacts", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.False(t, *handlerRan)
	assert.Contains(t, w.Body.String(), "Rate limit check failed")
}
