package middleware

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/qwikker/business-import/internal/adapter/http/response"
	"github.com/qwikker/business-import/internal/infrastructure/logger"
)

// clientLimiter is a token bucket plus the last time its client was seen (unix nanos).
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64
}

// IPRateLimiter manages per-IP token buckets. Buckets idle for longer than
// the configured TTL are dropped by Cleanup.
type IPRateLimiter struct {
	limiters sync.Map
	rate     rate.Limit
	burst    int
	log      *logger.Logger
	now      func() time.Time
}

// NewIPRateLimiter creates a new IP-based rate limiter allowing rps requests
// per second with the given burst.
func NewIPRateLimiter(rps float64, burst int, log *logger.Logger) *IPRateLimiter {
	if log == nil {
		log = logger.Nop()
	}
	return &IPRateLimiter{
		rate:  rate.Limit(rps),
		burst: burst,
		log:   log,
		now:   time.Now,
	}
}

func (i *IPRateLimiter) limiter(ip string) *rate.Limiter {
	v, ok := i.limiters.Load(ip)
	if !ok {
		v, _ = i.limiters.LoadOrStore(ip, &clientLimiter{limiter: rate.NewLimiter(i.rate, i.burst)})
	}
	cl := v.(*clientLimiter)
	cl.lastSeen.Store(i.now().UnixNano())
	return cl.limiter
}

// Allow reports whether a request from ip may proceed now.
func (i *IPRateLimiter) Allow(ip string) bool {
	return i.limiter(ip).Allow()
}

// Len returns the number of tracked clients.
func (i *IPRateLimiter) Len() int {
	n := 0
	i.limiters.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// Cleanup drops buckets whose client has not been seen for ttl and returns
// how many were removed.
func (i *IPRateLimiter) Cleanup(ttl time.Duration) int {
	cutoff := i.now().Add(-ttl).UnixNano()
	removed := 0
	i.limiters.Range(func(key, v any) bool {
		if v.(*clientLimiter).lastSeen.Load() < cutoff {
			i.limiters.Delete(key)
			removed++
		}
		return true
	})
	return removed
}

// RunCleanup calls Cleanup every interval until ctx is done.
func (i *IPRateLimiter) RunCleanup(ctx context.Context, interval, ttl time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := i.Cleanup(ttl); n > 0 {
				i.log.Debug().Int("evicted", n).Int("tracked", i.Len()).Msg("Rate limiter buckets evicted")
			}
		}
	}
}

// Middleware returns echo middleware that rejects over-limit clients with 429.
// The client is identified by c.RealIP(), so the echo instance's IPExtractor
// decides whether proxy headers are trusted.
func (i *IPRateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			if !i.Allow(ip) {
				logger.FromContext(c.Request().Context(), i.log).Warn().
					Str("client_ip", ip).
					Str("path", c.Request().URL.Path).
					Msg("Rate limit exceeded")
				return response.TooManyRequests(c)
			}
			return next(c)
		}
	}
}

// IPExtractor returns the echo IP extractor for the deployment: the direct
// peer address unless the service runs behind a trusted proxy, in which
// case the X-Forwarded-For chain is honored.
func IPExtractor(trustProxy bool) echo.IPExtractor {
	if trustProxy {
		return echo.ExtractIPFromXFFHeader()
	}
	return echo.ExtractIPDirect()
}
