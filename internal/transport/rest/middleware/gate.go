package middleware

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"log"
	"net"
	"net/http"
	"quizbank/internal/cache"
	"quizbank/internal/model"
	"strconv"
	"strings"
)

// APIKeyHeader carries the caller's API key
const APIKeyHeader = "x-api-key"

// Preflight answers every OPTIONS request before routing or auth
func Preflight(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			writeJSON(w, http.StatusOK, map[string]string{"message": "CORS preflight success"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// APIKeyGate rejects requests whose x-api-key does not match the configured key
type APIKeyGate struct {
	expected string
}

// NewAPIKeyGate creates a gate for key. An empty key rejects every request.
func NewAPIKeyGate(key string) *APIKeyGate {
	if key == "" {
		log.Println("Warning: API_GATEWAY_KEY not set, protected endpoints will answer 403")
	}
	return &APIKeyGate{expected: key}
}

// Require wraps next with the API key check
func (g *APIKeyGate) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got := r.Header.Get(APIKeyHeader)
		if got == "" || g.expected == "" ||
			subtle.ConstantTimeCompare([]byte(got), []byte(g.expected)) != 1 {
			writeJSON(w, http.StatusForbidden, model.ErrorResponse{
				Error: "Unauthorized",
				Debug: map[string]bool{
					"hasRequestKey":  got != "",
					"hasExpectedKey": g.expected != "",
				},
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// QuotaLimiter enforces a per-caller request budget per quota window
type QuotaLimiter struct {
	quota cache.QuotaCache
	limit int64
}

// NewQuotaLimiter creates a limiter allowing limit requests per window
func NewQuotaLimiter(quota cache.QuotaCache, limit int) *QuotaLimiter {
	return &QuotaLimiter{quota: quota, limit: int64(limit)}
}

// Limit wraps next with the quota check. Cache faults let the request through.
func (l *QuotaLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		count, err := l.quota.Hit(r.Context(), callerID(r))
		if err != nil {
			log.Printf("[HTTP] quota check failed: %v", err)
			next.ServeHTTP(w, r)
			return
		}
		if count > l.limit {
			w.Header().Set("Retry-After", retryAfter(l.quota))
			writeJSON(w, http.StatusTooManyRequests, model.ErrorResponse{Error: "Too many requests"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// callerID identifies the caller by a digest of its API key, or by client IP
func callerID(r *http.Request) string {
	if key := r.Header.Get(APIKeyHeader); key != "" {
		sum := sha256.Sum256([]byte(key))
		return "key:" + hex.EncodeToString(sum[:8])
	}
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return "ip:" + strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}

func retryAfter(quota cache.QuotaCache) string {
	secs := int(quota.Window().Seconds())
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
