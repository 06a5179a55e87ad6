package router

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/minishop/internal/constants"
	"github.com/minishop/internal/metrics"
	"github.com/minishop/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func TestResolveAllowedOrigin(t *testing.T) {
	got := resolveAllowedOrigin("https://example.com", []string{"*"}, false)
	if got != "*" {
		t.Fatalf("wildcard without credentials should return *, got %s", got)
	}

	got = resolveAllowedOrigin("https://example.com", []string{"*"}, true)
	if got != "https://example.com" {
		t.Fatalf("wildcard with credentials should echo origin, got %s", got)
	}

	got = resolveAllowedOrigin("https://a.example.com", []string{"https://a.example.com", "https://b.example.com"}, false)
	if got != "https://a.example.com" {
		t.Fatalf("allow-list should return matched origin, got %s", got)
	}

	got = resolveAllowedOrigin("https://x.example.com", []string{"https://a.example.com"}, false)
	if got != "" {
		t.Fatalf("unmatched origin should be empty, got %s", got)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": getRequestID(c)})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(requestIDHeader, "req-123")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	if w.Header().Get(requestIDHeader) != "req-123" {
		t.Fatalf("response request id want req-123 got %s", w.Header().Get(requestIDHeader))
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp["request_id"] != "req-123" {
		t.Fatalf("context request id want req-123 got %s", resp["request_id"])
	}

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w2, req2)
	generated := w2.Header().Get(requestIDHeader)
	if generated == "" {
		t.Fatalf("generated request id should not be empty")
	}
	if resp := strings.TrimSpace(generated); resp == "" {
		t.Fatalf("generated request id should not be blank")
	}
}

type stubTokenParser struct {
	claims *service.UserJWTClaims
	err    error
	got    string
}

func (p *stubTokenParser) ParseUserJWT(tokenString string) (*service.UserJWTClaims, error) {
	p.got = tokenString
	return p.claims, p.err
}

func TestUserJWTAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(UserJWTAuthMiddleware(&stubTokenParser{}))
	r.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	for _, header := range []string{"", "Token abc", "Bearer "} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: status want 401 got %d", header, w.Code)
		}
		var resp struct {
			StatusCode int    `json:"status_code"`
			Error      string `json:"error"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal response failed: %v", err)
		}
		if resp.StatusCode != 401 || resp.Error != "unauthorized" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	}
}

func TestUserJWTAuthMiddlewareRejectsInvalidToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	parser := &stubTokenParser{err: errors.New("token expired")}
	r := gin.New()
	r.Use(UserJWTAuthMiddleware(parser))
	r.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status want 401 got %d", w.Code)
	}
	if parser.got != "expired-token" {
		t.Fatalf("parser should receive raw token, got %q", parser.got)
	}
}

func TestUserJWTAuthMiddlewareSetsIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	expiresAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	parser := &stubTokenParser{claims: &service.UserJWTClaims{
		UserID: 7,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}}
	r := gin.New()
	r.Use(UserJWTAuthMiddleware(parser))
	r.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":  c.GetUint(constants.ContextKeyUserID),
			"username": c.GetString(constants.ContextKeyUsername),
			"expires":  c.GetTime(constants.ContextKeyExpiresAt).Unix(),
		})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	var resp struct {
		UserID   uint   `json:"user_id"`
		Username string `json:"username"`
		Expires  int64  `json:"expires"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp.UserID != 7 || resp.Username != "alice" || resp.Expires != expiresAt.Unix() {
		t.Fatalf("unexpected identity: %+v", resp)
	}
}

func TestTimeoutMiddlewareSetsDeadline(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(TimeoutMiddleware(time.Second))
	r.GET("/ping", func(c *gin.Context) {
		_, ok := c.Request.Context().Deadline()
		c.JSON(http.StatusOK, gin.H{"has_deadline": ok})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if !strings.Contains(w.Body.String(), `"has_deadline":true`) {
		t.Fatalf("request context should carry deadline, got %s", w.Body.String())
	}
}

func TestMetricsMiddlewareRecordsRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)

	registry := metrics.New("router_test")
	r := gin.New()
	r.Use(MetricsMiddleware(registry))
	r.GET("/items/:id", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/42", nil))

	families, err := registry.Gatherer().Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}
	found := false
	for _, family := range families {
		if family.GetName() != "router_test_http_requests_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "route" && label.GetValue() == "/items/:id" {
					found = true
				}
			}
		}
	}
	if !found {
		t.Fatalf("expected request counter labelled with route template")
	}
}
