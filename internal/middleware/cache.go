package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/NOBU6477/tomotrip-platform/internal/config"
)

// captureWriter tees the response into a buffer while still writing to the
// client, so a successful response can be stored afterwards.  The buffer
// stops growing at limit bytes; oversized responses are simply not cached.
type captureWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
	size   int64
	limit  int64
}

func (cw *captureWriter) WriteHeader(code int) {
	cw.status = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	if cw.limit <= 0 || cw.size < cw.limit {
		remain := cw.limit - cw.size
		switch {
		case cw.limit <= 0:
			cw.buf.Write(b)
		case int64(len(b)) <= remain:
			cw.buf.Write(b)
		case remain > 0:
			cw.buf.Write(b[:remain])
		}
	}
	cw.size += int64(len(b))
	return cw.ResponseWriter.Write(b)
}

// cachedResponse is the stored representation of one response.  Body is
// base64-encoded by encoding/json automatically.
type cachedResponse struct {
	Status int         `json:"status"`
	Header http.Header `json:"header"`
	Body   []byte      `json:"body"`
}

// cacheKey builds a stable key from the configured strategy.  The variable
// part is hashed so long query strings stay within key-size limits.
func cacheKey(cfg config.CacheConfig, c echo.Context) string {
	r := c.Request()
	var tail string
	switch strings.ToLower(cfg.KeyStrategy) {
	case "route":
		tail = c.Path()
	case "method_route":
		tail = r.Method + ":" + c.Path()
	case "method_route_query":
		tail = r.Method + ":" + c.Path() + "?" + r.URL.RawQuery
	default: // "route_query"
		tail = c.Path() + "?" + r.URL.RawQuery
	}
	sum := sha1.Sum([]byte(tail))
	return fmt.Sprintf("%s:%x", cfg.Prefix, sum[:])
}

// NewRedisCache caches whole responses (status, headers and body) for the
// configured methods, so repeated catalog and listing requests skip the
// storage layer entirely.  Only 200 responses are stored.  Without Redis
// the middleware is a no-op.
func NewRedisCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return passthrough
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	maxBody := int64(cfg.MaxBodyBytes)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !cfg.Methods[strings.ToUpper(c.Request().Method)] {
				return next(c)
			}

			ctx := c.Request().Context()
			key := cacheKey(cfg, c)

			if raw, err := rdb.Get(ctx, key).Bytes(); err == nil {
				var stored cachedResponse
				if json.Unmarshal(raw, &stored) == nil {
					for k, vals := range stored.Header {
						if strings.EqualFold(k, "Content-Length") {
							continue
						}
						for _, v := range vals {
							c.Response().Header().Add(k, v)
						}
					}
					c.Response().Header().Set("X-Cache", "HIT")
					c.Response().WriteHeader(stored.Status)
					if len(stored.Body) > 0 {
						_, _ = c.Response().Write(stored.Body)
					}
					return nil
				}
			}

			cw := &captureWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK, limit: maxBody}
			c.Response().Writer = cw
			c.Response().Header().Set("X-Cache", "MISS")

			if err := next(c); err != nil {
				return err
			}

			if cw.status == http.StatusOK && (maxBody <= 0 || cw.size <= maxBody) {
				hdr := make(http.Header, len(c.Response().Header()))
				for k, vals := range c.Response().Header() {
					hdr[k] = append([]string(nil), vals...)
				}
				payload, err := json.Marshal(cachedResponse{Status: cw.status, Header: hdr, Body: cw.buf.Bytes()})
				if err == nil {
					// Request context may already be done once the
					// response is sent; store with a fresh one.
					_ = rdb.SetEx(context.Background(), key, payload, ttl).Err()
				}
			}
			return nil
		}
	}
}
