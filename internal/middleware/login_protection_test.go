package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoginProtectionLimitsPosts(t *testing.T) {
	lp := NewLoginProtection(0.001, 2) // effectively no refill during the test
	handler := lp.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	post := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		req.RemoteAddr = ip
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, post("10.0.0.1:1234"))
	assert.Equal(t, http.StatusOK, post("10.0.0.1:1234"))
	assert.Equal(t, http.StatusTooManyRequests, post("10.0.0.1:1234"))

	// A different client is unaffected.
	assert.Equal(t, http.StatusOK, post("10.0.0.2:1234"))

	// GET requests are never limited.
	req := httptest.NewRequest(http.MethodGet, "/auth/login", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		realIP     string
		forwarded  string
		remoteAddr string
		want       string
	}{
		{"x-real-ip wins", "1.2.3.4", "5.6.7.8", "9.9.9.9:80", "1.2.3.4"},
		{"x-forwarded-for next", "", "5.6.7.8", "9.9.9.9:80", "5.6.7.8"},
		{"remote addr fallback", "", "", "9.9.9.9:80", "9.9.9.9:80"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.realIP != "" {
				req.Header.Set("X-Real-IP", tt.realIP)
			}
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			assert.Equal(t, tt.want, getClientIP(req))
		})
	}
}

func TestLimiterCacheClearIfExceeds(t *testing.T) {
	lc := newLimiterCache[string](1, 1)
	for _, key := range []string{"a", "b", "c"} {
		lc.get(key)
	}

	assert.False(t, lc.clearIfExceeds(5))
	assert.True(t, lc.clearIfExceeds(2))
	assert.Empty(t, lc.limiters)

	// The same limiter instance is returned for repeated keys.
	l1 := lc.get("a")
	l2 := lc.get("a")
	assert.Same(t, l1, l2)
}
