package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/GabrielEscala/Proyecto-Salas/internal/api/handlers"
)

const msgRateLimited = "demasiadas solicitudes, intenta de nuevo en un momento"

// visitorTTL время жизни записи об IP без новых запросов
const visitorTTL = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter ограничитель частоты запросов на IP-адрес
type RateLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	perMinute int
}

// NewRateLimiter создаёт ограничитель на perMinute запросов в минуту с одного IP.
// perMinute <= 0 отключает ограничение.
func NewRateLimiter(perMinute int) *RateLimiter {
	rl := &RateLimiter{
		visitors:  make(map[string]*visitor),
		perMinute: perMinute,
	}
	if perMinute > 0 {
		go rl.cleanupLoop()
	}
	return rl
}

func (rl *RateLimiter) limiterFor(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.visitors[ip]
	if !ok {
		v = &visitor{
			limiter: rate.NewLimiter(rate.Limit(float64(rl.perMinute)/60.0), rl.perMinute),
		}
		rl.visitors[ip] = v
	}
	v.lastSeen = time.Now()
	return v.limiter
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		for ip, v := range rl.visitors {
			if time.Since(v.lastSeen) > visitorTTL {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// Limit оборачивает обработчик проверкой лимита частоты
func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	if rl.perMinute <= 0 {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if !rl.limiterFor(ip).Allow() {
			handlers.RespondError(w, http.StatusTooManyRequests, handlers.CodeRateLimited, msgRateLimited)
			return
		}

		next.ServeHTTP(w, r)
	})
}
