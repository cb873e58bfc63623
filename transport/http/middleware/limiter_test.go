package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"healthtick/config"
	"healthtick/infras/otel/mocks"
	cacheMocks "healthtick/shared/cache/mocks"
	"healthtick/shared/constant"
	"healthtick/transport/http/middleware"
)

func newRateLimitConfig(maxRequests int) *config.Config {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = maxRequests
	cfg.App.RateLimiter.WindowSeconds = 60

	return cfg
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimitCountsWithinWindow(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	// A single atomic increment per request, never a read-modify-write pair.
	gomock.InOrder(
		mockCache.EXPECT().Increment(gomock.Any(), gomock.Any(), 60).Return(int64(1), nil),
		mockCache.EXPECT().Increment(gomock.Any(), gomock.Any(), 60).Return(int64(2), nil),
		mockCache.EXPECT().Increment(gomock.Any(), gomock.Any(), 60).Return(int64(3), nil),
	)

	m := middleware.NewAppMiddleware(mocks.NewOtel(), newRateLimitConfig(2), mockCache)
	handler := m.RateLimit()(okHandler())

	wantStatuses := []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}

	for _, want := range wantStatuses {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)

		handler.ServeHTTP(rec, req)

		assert.Equal(t, want, rec.Code)
	}
}

func TestRateLimitHeaders(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().
		Increment(gomock.Any(), gomock.Any(), 60).
		Return(int64(1), nil)

	m := middleware.NewAppMiddleware(mocks.NewOtel(), newRateLimitConfig(5), mockCache)
	handler := m.RateLimit()(okHandler())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "5", rec.Header().Get(constant.RequestHeaderRateLimit))
	assert.Equal(t, "4", rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
	assert.Equal(t, "60", rec.Header().Get(constant.RequestHeaderRateLimitWindow))
}

func TestRateLimitFailsOpenOnCacheError(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().
		Increment(gomock.Any(), gomock.Any(), 60).
		Return(int64(0), errors.New("connection refused"))

	m := middleware.NewAppMiddleware(mocks.NewOtel(), newRateLimitConfig(1), mockCache)
	handler := m.RateLimit()(okHandler())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimitDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)

	// No cache expectations: a disabled limiter must never touch redis.
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = false

	m := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, mockCache)
	handler := m.RateLimit()(okHandler())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
