package middleware

import (
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/zoombxu/surplus/internal/metrics"
	pkgAuth "github.com/zoombxu/surplus/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type parserStub struct {
	claims pkgAuth.Claims
	err    error
}

func (p parserStub) ParseToken(string) (pkgAuth.Claims, error) {
	return p.claims, p.err
}

func runRequest(handler gin.HandlerFunc, middlewares []gin.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	router := gin.New()
	router.Use(middlewares...)
	router.Handle(req.Method, req.URL.Path, handler)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func okHandler(c *gin.Context) {
	c.Status(http.StatusOK)
}

func TestAuthRequiredRejectsMissingToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	w := runRequest(okHandler, []gin.HandlerFunc{AuthRequired(parserStub{})}, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthRequiredAcceptsBearerHeader(t *testing.T) {
	claims := pkgAuth.Claims{Subject: "09171234567", Role: pkgAuth.RoleCustomer}
	handler := func(c *gin.Context) {
		val, ok := c.Get(ClaimsContextKey)
		if !ok {
			t.Error("claims not set in context")
		}
		if got, _ := val.(pkgAuth.Claims); got.Subject != "09171234567" {
			t.Errorf("unexpected claims %+v", got)
		}
		c.Status(http.StatusOK)
	}

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer token")
	w := runRequest(handler, []gin.HandlerFunc{AuthRequired(parserStub{claims: claims})}, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestAuthRequiredAcceptsCookieAndQuery(t *testing.T) {
	claims := pkgAuth.Claims{Subject: "09171234567", Role: pkgAuth.RoleCustomer}

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.AddCookie(&http.Cookie{Name: authCookieName, Value: "token"})
	if w := runRequest(okHandler, []gin.HandlerFunc{AuthRequired(parserStub{claims: claims})}, req); w.Code != http.StatusOK {
		t.Fatalf("cookie auth: expected 200, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/x?token=abc", nil)
	if w := runRequest(okHandler, []gin.HandlerFunc{AuthRequired(parserStub{claims: claims})}, req); w.Code != http.StatusOK {
		t.Fatalf("query auth: expected 200, got %d", w.Code)
	}
}

func TestAuthRequiredRejectsBadToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer bad")
	w := runRequest(okHandler, []gin.HandlerFunc{AuthRequired(parserStub{err: errors.New("bad token")})}, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAdminOnly(t *testing.T) {
	customer := parserStub{claims: pkgAuth.Claims{Subject: "09171234567", Role: pkgAuth.RoleCustomer}}
	admin := parserStub{claims: pkgAuth.Claims{Subject: "admin", Role: pkgAuth.RoleAdmin}}

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer token")
	if w := runRequest(okHandler, []gin.HandlerFunc{AuthRequired(customer), AdminOnly()}, req); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for customer, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer token")
	if w := runRequest(okHandler, []gin.HandlerFunc{AuthRequired(admin), AdminOnly()}, req); w.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	if w := runRequest(okHandler, []gin.HandlerFunc{AdminOnly()}, req); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without claims, got %d", w.Code)
	}
}

func TestDecompressRequest(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(`{"ok":true}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	zw.Close()

	handler := func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			t.Errorf("read body: %v", err)
		}
		if string(body) != `{"ok":true}` {
			t.Errorf("unexpected body %q", body)
		}
		c.Status(http.StatusOK)
	}

	req := httptest.NewRequest(http.MethodPost, "/x", &buf)
	req.Header.Set("Content-Encoding", "gzip")
	if w := runRequest(handler, []gin.HandlerFunc{DecompressRequest()}, req); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestDecompressRequestRejectsBadPayload(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/x", bytes.NewReader([]byte("not gzip")))
	req.Header.Set("Content-Encoding", "gzip")
	if w := runRequest(okHandler, []gin.HandlerFunc{DecompressRequest()}, req); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestRateLimit(t *testing.T) {
	mw := RateLimit(rate.Limit(1), 2)

	router := gin.New()
	router.Use(mw)
	router.GET("/x", okHandler)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Fatalf("burst requests should pass, got %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after burst, got %v", codes)
	}

	// A different client gets its own bucket.
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected fresh client to pass, got %d", w.Code)
	}
}

func TestRequestMetrics(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	router := gin.New()
	router.Use(RequestMetrics(m))
	router.GET("/api/products", okHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	got := testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/api/products", "200"))
	if got != 1 {
		t.Fatalf("expected one counted request, got %v", got)
	}
}

func TestSetAuthCookie(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	SetAuthCookie(c, "token123")

	if got := w.Header().Get("Authorization"); got != "Bearer token123" {
		t.Fatalf("unexpected header %q", got)
	}
	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != authCookieName || cookies[0].Value != "token123" {
		t.Fatalf("unexpected cookies %+v", cookies)
	}
}
