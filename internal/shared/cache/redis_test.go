package cache

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func TestMiddlewareDisabledPassesThrough(t *testing.T) {
	e := echo.New()
	e.Use(Middleware(Config{Enabled: false, TTL: time.Minute}, nil))
	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "pong" {
		t.Fatalf("unexpected response %d %q", rec.Code, rec.Body.String())
	}
}

func TestCacheKeyVariesByQuery(t *testing.T) {
	base := httptest.NewRequest(http.MethodGet, "/clubs?date=2024-11-06", nil)
	other := httptest.NewRequest(http.MethodGet, "/clubs?date=2024-11-07", nil)
	same := httptest.NewRequest(http.MethodGet, "/clubs?date=2024-11-06", nil)

	if cacheKey("korty", base) == cacheKey("korty", other) {
		t.Fatal("different queries must produce different keys")
	}
	if cacheKey("korty", base) != cacheKey("korty", same) {
		t.Fatal("identical requests must produce the same key")
	}
	if cacheKey("a", base) == cacheKey("b", base) {
		t.Fatal("prefix must namespace keys")
	}
}

func TestCaptureWriterRecordsStatusAndBody(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &captureWriter{ResponseWriter: rec, status: http.StatusOK}

	w.WriteHeader(http.StatusTeapot)
	if _, err := w.Write([]byte("short and stout")); err != nil {
		t.Fatalf("write: %v", err)
	}

	if w.status != http.StatusTeapot {
		t.Fatalf("expected captured status 418, got %d", w.status)
	}
	if w.buf.String() != "short and stout" {
		t.Fatalf("unexpected captured body %q", w.buf.String())
	}
	if rec.Code != http.StatusTeapot || rec.Body.String() != "short and stout" {
		t.Fatal("response must still reach the client")
	}
}
