package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/GoldenEgg_Go/internal/handler"
	"github.com/osse101/GoldenEgg_Go/internal/logger"
)

// AuthMiddleware guards the admin routes with the shared API key
func AuthMiddleware(apiKey string, trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			providedKey := r.Header.Get(HeaderAPIKey)

			if subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				ip := extractIP(r, trustedProxies)
				detector.RecordFailedAuth(ip)

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"remote_addr", r.RemoteAddr,
					"path", r.URL.Path,
					"has_key", providedKey != "",
					"ip", ip)

				handler.RespondError(w, http.StatusUnauthorized, ErrMsgUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// ipWindow is a fixed-window counter for one client
type ipWindow struct {
	count int
	start time.Time
}

// SuspiciousActivityDetector counts requests and failed admin logins per IP.
// Idle IPs age out of the LRUs after one window.
type SuspiciousActivityDetector struct {
	mu         sync.Mutex
	failedAuth *expirable.LRU[string, ipWindow]
	requests   *expirable.LRU[string, ipWindow]
	limit      int
	window     time.Duration
	now        func() time.Time
}

func NewSuspiciousActivityDetector() *SuspiciousActivityDetector {
	return newDetector(RequestRateLimit, RateWindow, time.Now)
}

func newDetector(limit int, window time.Duration, now func() time.Time) *SuspiciousActivityDetector {
	return &SuspiciousActivityDetector{
		failedAuth: expirable.NewLRU[string, ipWindow](TrackedIPCapacity, nil, window),
		requests:   expirable.NewLRU[string, ipWindow](TrackedIPCapacity, nil, window),
		limit:      limit,
		window:     window,
		now:        now,
	}
}

// RecordFailedAuth records a failed authentication attempt
func (s *SuspiciousActivityDetector) RecordFailedAuth(ip string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := s.incrementLocked(s.failedAuth, ip)
	if count >= FailedAuthAlertThreshold {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", count)
	}
}

// RecordRequest counts a request and returns false once the IP is over the limit
func (s *SuspiciousActivityDetector) RecordRequest(ip string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := s.incrementLocked(s.requests, ip)
	if count > s.limit {
		if count%100 == 0 {
			slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", count)
		}
		return false
	}
	return true
}

// FailedAuthCount returns the failed attempts for ip in the current window
func (s *SuspiciousActivityDetector) FailedAuthCount(ip string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.countLocked(s.failedAuth, ip)
}

// RequestCount returns the requests for ip in the current window
func (s *SuspiciousActivityDetector) RequestCount(ip string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.countLocked(s.requests, ip)
}

// Caller must hold the mutex
func (s *SuspiciousActivityDetector) incrementLocked(cache *expirable.LRU[string, ipWindow], ip string) int {
	now := s.now()
	w, ok := cache.Get(ip)
	if !ok || now.Sub(w.start) > s.window {
		w = ipWindow{start: now}
	}
	w.count++
	cache.Add(ip, w)
	return w.count
}

func (s *SuspiciousActivityDetector) countLocked(cache *expirable.LRU[string, ipWindow], ip string) int {
	w, ok := cache.Get(ip)
	if !ok || s.now().Sub(w.start) > s.window {
		return 0
	}
	return w.count
}

// RateLimitMiddleware rejects clients that exceed the request budget
func RateLimitMiddleware(trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !detector.RecordRequest(extractIP(r, trustedProxies)) {
				handler.RespondError(w, http.StatusTooManyRequests, ErrMsgTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractIP gets the client IP address from request.
// It only trusts X-Forwarded-For if the request comes from a trusted proxy.
func extractIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	if slices.Contains(trustedProxies, remoteIP) {
		if forwarded := r.Header.Get(HeaderForwardedFor); forwarded != "" {
			// Rightmost entry is the hop our proxy saw
			ips := strings.Split(forwarded, ",")
			return strings.TrimSpace(ips[len(ips)-1])
		}
	}

	return remoteIP
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(HeaderContentType, HeaderValueNoSniff)
			w.Header().Set(HeaderFrameOptions, HeaderValueSameOrigin)
			w.Header().Set(HeaderXSSProtection, HeaderValueXSSBlock)
			w.Header().Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)

			next.ServeHTTP(w, r)
		})
	}
}

// CORSMiddleware allows the configured origins. A "*" entry allows any
// origin. Preflight requests are answered here.
func CORSMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	allowAny := slices.Contains(allowedOrigins, CORSWildcard)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get(HeaderOrigin)

			switch {
			case allowAny:
				w.Header().Set(HeaderAllowOrigin, CORSWildcard)
			case origin != "" && slices.Contains(allowedOrigins, origin):
				w.Header().Set(HeaderAllowOrigin, origin)
				w.Header().Add(HeaderVary, HeaderOrigin)
			}

			if r.Method == http.MethodOptions && origin != "" {
				w.Header().Set(HeaderAllowMethods, CORSAllowedMethods)
				w.Header().Set(HeaderAllowHeaders, CORSAllowedHeaders)
				w.Header().Set(HeaderMaxAge, CORSMaxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
