package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// RateLimiter limita requests por IP numa janela deslizante de um minuto.
// O IP vem de r.RemoteAddr, já corrigido pelo middleware.RealIP do chi.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string][]time.Time
	limit    int
	window   time.Duration
	now      func() time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	if limit <= 0 {
		limit = 10
	}
	if window <= 0 {
		window = time.Minute
	}
	return &RateLimiter{
		visitors: make(map[string][]time.Time),
		limit:    limit,
		window:   window,
		now:      time.Now,
	}
}

// Allow registra a tentativa e diz se ela cabe na janela. Quando não cabe,
// devolve também quanto falta para liberar.
func (rl *RateLimiter) Allow(ip string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	hits := prune(rl.visitors[ip], now.Add(-rl.window))

	if len(hits) >= rl.limit {
		rl.visitors[ip] = hits
		return false, hits[0].Add(rl.window).Sub(now)
	}

	rl.visitors[ip] = append(hits, now)
	return true, 0
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ok, retryAfter := rl.Allow(clientIP(r))
		if !ok {
			secs := int(retryAfter.Seconds()) + 1
			w.Header().Set("Retry-After", strconv.Itoa(secs))
			writeFailure(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Cleanup remove IPs sem acesso recente até o done fechar.
func (rl *RateLimiter) Cleanup(done <-chan struct{}) {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			rl.mu.Lock()
			cutoff := rl.now().Add(-rl.window)
			for ip, hits := range rl.visitors {
				if hits = prune(hits, cutoff); len(hits) == 0 {
					delete(rl.visitors, ip)
				} else {
					rl.visitors[ip] = hits
				}
			}
			rl.mu.Unlock()
		}
	}
}

func prune(hits []time.Time, cutoff time.Time) []time.Time {
	valid := hits[:0]
	for _, ts := range hits {
		if ts.After(cutoff) {
			valid = append(valid, ts)
		}
	}
	return valid
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
