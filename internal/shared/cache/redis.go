package cache

import (
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// Config controls the Redis response cache.
type Config struct {
	Enabled bool
	Prefix  string
	TTL     time.Duration
}

type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"contentType"`
	Body        []byte `json:"body"`
}

// captureWriter forwards the response to the client while keeping a copy of
// the status and body for the cache.
type captureWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (w *captureWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

// Middleware caches successful GET responses in Redis. A nil client or
// disabled config degrades to a no-op, and any Redis failure falls through
// to the handler.
func Middleware(cfg Config, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = time.Minute
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.Method != http.MethodGet {
				return next(c)
			}
			key := cacheKey(cfg.Prefix, req)

			if raw, err := rdb.Get(req.Context(), key).Bytes(); err == nil {
				var cached cachedResponse
				if err := json.Unmarshal(raw, &cached); err == nil {
					c.Response().Header().Set(echo.HeaderContentType, cached.ContentType)
					c.Response().WriteHeader(cached.Status)
					_, err = c.Response().Write(cached.Body)
					return err
				}
			}

			w := &captureWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK}
			c.Response().Writer = w
			if err := next(c); err != nil {
				return err
			}
			if w.status != http.StatusOK {
				return nil
			}

			raw, err := json.Marshal(cachedResponse{
				Status:      w.status,
				ContentType: c.Response().Header().Get(echo.HeaderContentType),
				Body:        w.buf.Bytes(),
			})
			if err != nil {
				return nil
			}
			if err := rdb.Set(req.Context(), key, raw, ttl).Err(); err != nil {
				slog.Debug("response cache store failed", slog.String("key", key), slog.Any("error", err))
			}
			return nil
		}
	}
}

func cacheKey(prefix string, r *http.Request) string {
	if prefix == "" {
		prefix = "cache"
	}
	sum := sha1.Sum([]byte(r.Method + ":" + r.URL.Path + "?" + r.URL.RawQuery))
	return fmt.Sprintf("%s:%x", prefix, sum)
}
