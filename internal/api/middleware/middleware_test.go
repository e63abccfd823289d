package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis_rate/v10"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/feral-file/ff-ledger-indexer/internal/api/middleware"
	"github.com/feral-file/ff-ledger-indexer/internal/mocks"
)

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(middleware.REQUEST_ID_KEY))
	})

	t.Run("propagates the incoming header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.REQUEST_ID_HEADER, "req-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "req-123", w.Header().Get(middleware.REQUEST_ID_HEADER))
		assert.Equal(t, "req-123", w.Body.String())
	})

	t.Run("generates one when absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		generated := w.Header().Get(middleware.REQUEST_ID_HEADER)
		assert.Len(t, generated, 36)
		assert.Equal(t, generated, w.Body.String())
	})
}

func TestRecovery(t *testing.T) {
	router := gin.New()
	router.Use(middleware.Recovery())
	router.GET("/", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"internal_error"`)
}

func TestRateLimit(t *testing.T) {
	cfg := middleware.RateLimitConfig{KeyPrefix: "ratelimit", RequestsPerMinute: 60}

	tests := []struct {
		name              string
		result            *redis_rate.Result
		err               error
		expectedStatus    int
		expectedRemaining string
		expectedRetry     string
	}{
		{
			name:              "allowed",
			result:            &redis_rate.Result{Allowed: 1, Remaining: 59},
			expectedStatus:    http.StatusOK,
			expectedRemaining: "59",
		},
		{
			name:              "denied",
			result:            &redis_rate.Result{Allowed: 0, Remaining: 0, RetryAfter: 2 * time.Second},
			expectedStatus:    http.StatusTooManyRequests,
			expectedRemaining: "0",
			expectedRetry:     "2",
		},
		{
			name:           "limiter failure lets the request through",
			err:            errors.New("redis down"),
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			limiter := mocks.NewMockRedisRateLimiter(ctrl)
			limiter.EXPECT().
				Allow(gomock.Any(), "ratelimit:192.0.2.1", redis_rate.PerMinute(60)).
				DoAndReturn(func(_ context.Context, _ string, _ redis_rate.Limit) (*redis_rate.Result, error) {
					return tt.result, tt.err
				})

			router := gin.New()
			router.Use(middleware.RateLimit(limiter, cfg))
			router.GET("/", func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedRemaining, w.Header().Get("X-RateLimit-Remaining"))
			assert.Equal(t, tt.expectedRetry, w.Header().Get("Retry-After"))
			if tt.expectedStatus == http.StatusTooManyRequests {
				assert.Contains(t, w.Body.String(), `"code":"rate_limited"`)
			}
		})
	}
}
