package server

import (
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"strings"
	"sync"
	"time"

	"github.com/osse101/Foodgram_Go/internal/logger"
	"github.com/osse101/Foodgram_Go/internal/metrics"
)

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// SuspiciousActivityDetector counts requests and rejected tokens per client
// over a fixed window. It is a coarse backstop behind httprate: clients that
// blow through the window budget are refused until the window resets.
type SuspiciousActivityDetector struct {
	mu               sync.Mutex
	failedAuthByIP   map[string]int
	requestCountByIP map[string]int
	lastResetTime    time.Time

	requestLimit int
	window       time.Duration
	now          func() time.Time
}

// NewSuspiciousActivityDetector creates a detector with the default budget
func NewSuspiciousActivityDetector() *SuspiciousActivityDetector {
	return newDetector(DetectorRequestLimit, DetectorWindow, time.Now)
}

func newDetector(limit int, window time.Duration, now func() time.Time) *SuspiciousActivityDetector {
	return &SuspiciousActivityDetector{
		failedAuthByIP:   make(map[string]int),
		requestCountByIP: make(map[string]int),
		lastResetTime:    now(),
		requestLimit:     limit,
		window:           window,
		now:              now,
	}
}

// FailedAuthRecorder returns a callback for the auth middleware that feeds
// rejected tokens into the detector
func FailedAuthRecorder(detector *SuspiciousActivityDetector, trustedProxies []string) func(*http.Request) {
	proxies := parseTrustedProxies(trustedProxies)
	return func(r *http.Request) {
		ip := clientIP(r, proxies)
		count := detector.RecordFailedAuth(ip)
		logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
			"path", r.URL.Path,
			"ip", ip,
			"failures_in_window", count)
	}
}

// RecordFailedAuth records a rejected token and returns the failures seen
// from ip in the current window
func (s *SuspiciousActivityDetector) RecordFailedAuth(ip string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resetCountsIfNeeded()
	s.failedAuthByIP[ip]++
	count := s.failedAuthByIP[ip]
	metrics.SecurityEvents.WithLabelValues(metrics.EventFailedAuth).Inc()

	if count >= FailedAuthAlertThreshold {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", count)
	}
	return count
}

// RecordRequest counts a request from ip and reports whether it is still
// within the window budget
func (s *SuspiciousActivityDetector) RecordRequest(ip string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resetCountsIfNeeded()
	s.requestCountByIP[ip]++
	count := s.requestCountByIP[ip]
	if count <= s.requestLimit {
		return true
	}

	metrics.SecurityEvents.WithLabelValues(metrics.EventRequestBlocked).Inc()
	// Log every 100th refusal to avoid log spam
	if count%100 == 0 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", count)
	}
	return false
}

// resetCountsIfNeeded clears the counters once the window has passed.
// Caller must hold the mutex.
func (s *SuspiciousActivityDetector) resetCountsIfNeeded() {
	if s.now().Sub(s.lastResetTime) > s.window {
		s.requestCountByIP = make(map[string]int)
		s.failedAuthByIP = make(map[string]int)
		s.lastResetTime = s.now()
	}
}

// SecurityLoggingMiddleware refuses clients that exceed the detector's request budget
func SecurityLoggingMiddleware(trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	proxies := parseTrustedProxies(trustedProxies)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !detector.RecordRequest(clientIP(r, proxies)) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// parseTrustedProxies accepts single addresses and CIDR ranges; invalid
// entries are logged and ignored
func parseTrustedProxies(entries []string) []netip.Prefix {
	var prefixes []netip.Prefix
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if strings.Contains(entry, "/") {
			if p, err := netip.ParsePrefix(entry); err == nil {
				prefixes = append(prefixes, p.Masked())
				continue
			}
		} else if addr, err := netip.ParseAddr(entry); err == nil {
			prefixes = append(prefixes, netip.PrefixFrom(addr.Unmap(), addr.Unmap().BitLen()))
			continue
		}
		slog.Warn(LogMsgInvalidTrustedProxy, "entry", entry)
	}
	return prefixes
}

// clientIP gets the client address of r. X-Forwarded-For is only honored
// when the direct peer is a trusted proxy.
func clientIP(r *http.Request, trusted []netip.Prefix) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}
	if !isTrusted(remoteIP, trusted) {
		return remoteIP
	}

	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" {
		return remoteIP
	}
	// The rightmost entry was appended by our trusted proxy and names the
	// peer that connected to it
	hops := strings.Split(forwarded, ",")
	hop := strings.TrimSpace(hops[len(hops)-1])
	if _, err := netip.ParseAddr(hop); err != nil {
		return remoteIP
	}
	return hop
}

func isTrusted(ip string, trusted []netip.Prefix) bool {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, p := range trusted {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set(HeaderContentType, HeaderValueNoSniff)
			h.Set(HeaderFrameOptions, HeaderValueSameOrigin)
			h.Set(HeaderXSSProtection, HeaderValueXSSBlock)
			h.Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)

			next.ServeHTTP(w, r)
		})
	}
}
