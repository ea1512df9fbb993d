package middleware

import (
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"strings"
	"sync"
	"time"

	"github.com/GlebRadaev/deadpigeons/pkg/utils"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	// maxLimiters bounds the per-client table.
	maxLimiters = 10000
	// idleTTL is how long a client may stay silent before its bucket is dropped.
	idleTTL = 10 * time.Minute
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter applies a token bucket per client IP. The client is the socket
// peer unless that peer is a trusted proxy, in which case X-Forwarded-For or
// X-Real-IP names it.
type RateLimiter struct {
	limiters map[string]*clientLimiter
	trusted  []netip.Prefix
	mu       sync.Mutex
	rate     rate.Limit
	burst    int
	now      func() time.Time
}

func NewRateLimiter(requestsPerSecond float64, burst int) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		limiters: make(map[string]*clientLimiter),
		rate:     rate.Limit(requestsPerSecond),
		burst:    burst,
		now:      time.Now,
	}
}

// TrustProxies sets the CIDR ranges whose forwarding headers are honoured.
// Bare addresses are accepted as single-host ranges.
func (rl *RateLimiter) TrustProxies(cidrs []string) error {
	prefixes := make([]netip.Prefix, 0, len(cidrs))
	for _, raw := range cidrs {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if !strings.Contains(raw, "/") {
			addr, err := netip.ParseAddr(raw)
			if err != nil {
				return fmt.Errorf("invalid trusted proxy %q: %w", raw, err)
			}
			prefixes = append(prefixes, netip.PrefixFrom(addr.Unmap(), addr.Unmap().BitLen()))
			continue
		}
		prefix, err := netip.ParsePrefix(raw)
		if err != nil {
			return fmt.Errorf("invalid trusted proxy %q: %w", raw, err)
		}
		prefixes = append(prefixes, prefix.Masked())
	}
	rl.mu.Lock()
	rl.trusted = prefixes
	rl.mu.Unlock()
	return nil
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	entry, exists := rl.limiters[key]
	if !exists {
		if len(rl.limiters) >= maxLimiters {
			rl.evict(now)
		}
		entry = &clientLimiter{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.limiters[key] = entry
	}
	entry.lastSeen = now
	return entry.limiter
}

// evict drops idle clients and, if the table is still full, the least
// recently seen one. Callers hold rl.mu.
func (rl *RateLimiter) evict(now time.Time) {
	var (
		oldestKey  string
		oldestSeen time.Time
	)
	for key, entry := range rl.limiters {
		if now.Sub(entry.lastSeen) > idleTTL {
			delete(rl.limiters, key)
			continue
		}
		if oldestKey == "" || entry.lastSeen.Before(oldestSeen) {
			oldestKey, oldestSeen = key, entry.lastSeen
		}
	}
	if len(rl.limiters) >= maxLimiters && oldestKey != "" {
		delete(rl.limiters, oldestKey)
	}
}

func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := rl.clientIP(r)
		if !rl.getLimiter(key).Allow() {
			zap.L().Warn("rate limit exceeded", zap.String("ip", key), zap.String("path", r.URL.Path))
			utils.RespondWithError(w, http.StatusTooManyRequests, "Too many requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) clientIP(r *http.Request) string {
	peer := remoteHost(r.RemoteAddr)
	addr, err := netip.ParseAddr(peer)
	if err != nil || !rl.isTrusted(addr.Unmap()) {
		return peer
	}
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		// The rightmost untrusted hop is the first one not added by our proxies.
		hops := strings.Split(forwarded, ",")
		for i := len(hops) - 1; i >= 0; i-- {
			hop := strings.TrimSpace(hops[i])
			hopAddr, err := netip.ParseAddr(hop)
			if err != nil {
				break
			}
			if !rl.isTrusted(hopAddr.Unmap()) {
				return hopAddr.Unmap().String()
			}
		}
	}
	if realIP := strings.TrimSpace(r.Header.Get("X-Real-IP")); realIP != "" {
		if realAddr, err := netip.ParseAddr(realIP); err == nil {
			return realAddr.Unmap().String()
		}
	}
	return peer
}

func (rl *RateLimiter) isTrusted(addr netip.Addr) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for _, prefix := range rl.trusted {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}

func remoteHost(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return host
}
