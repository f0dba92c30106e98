package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"shareit/pkg/log"
	"shareit/pkg/scope"
)

func newTestRouter(mw Middleware, handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.GET("/whoami", mw.Auth(), func(c *gin.Context) {
		sc, ok := scope.GetScopeFromContext(c.Request.Context())
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": sc.UserID})
	})
	return r
}

func TestAuth(t *testing.T) {
	jwt := scope.New("secret", time.Hour)
	mw := New(log.NewNop(), jwt, Config{})
	r := newTestRouter(mw)

	token, err := jwt.Issue(5)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	tests := []struct {
		name   string
		header map[string]string
		want   int
	}{
		{"header", map[string]string{UserIDHeader: "3"}, http.StatusOK},
		{"bearer", map[string]string{"Authorization": "Bearer " + token}, http.StatusOK},
		{"missing", nil, http.StatusBadRequest},
		{"not a number", map[string]string{UserIDHeader: "abc"}, http.StatusBadRequest},
		{"negative", map[string]string{UserIDHeader: "-1"}, http.StatusBadRequest},
		{"bad token", map[string]string{"Authorization": "Bearer junk"}, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Errorf("expected %d, got %d: %s", tt.want, w.Code, w.Body.String())
			}
		})
	}
}

func TestAuthWithoutTokenManager(t *testing.T) {
	mw := New(log.NewNop(), nil, Config{})
	r := newTestRouter(mw)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer whatever")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 when bearer tokens are disabled, got %d", w.Code)
	}
}

func TestRateLimit(t *testing.T) {
	mw := New(log.NewNop(), nil, Config{RateLimitPerMin: 1})
	r := newTestRouter(mw, mw.RateLimit())

	send := func() int {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set(UserIDHeader, "1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	if code := send(); code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", code)
	}
	if code := send(); code != http.StatusTooManyRequests {
		t.Fatalf("second request: expected 429, got %d", code)
	}
}

func TestRequestID(t *testing.T) {
	mw := New(log.NewNop(), nil, Config{})
	r := newTestRouter(mw, mw.RequestID())

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(UserIDHeader, "1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Header().Get(RequestIDHeader) == "" {
		t.Errorf("expected generated request id header")
	}

	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(UserIDHeader, "1")
	req.Header.Set(RequestIDHeader, "abc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get(RequestIDHeader); got != "abc" {
		t.Errorf("expected propagated request id, got %q", got)
	}
}
