package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/pedrodiniz00/sistema-obras/internal/apierror"
)

// janela counts requests of one client IP inside a fixed window.
type janela struct {
	count     int
	windowEnd time.Time
}

// limiter is a per-IP fixed-window counter. Each middleware instance owns
// its own map so login and API limits do not interfere.
type limiter struct {
	mu       sync.Mutex
	limit    int
	window   time.Duration
	clientes map[string]*janela
	now      func() time.Time
}

func newLimiter(limit int, window time.Duration) *limiter {
	return &limiter{limit: limit, window: window, clientes: make(map[string]*janela), now: time.Now}
}

// permitir registers one request and reports whether it is within the limit,
// plus when the current window ends.
func (l *limiter) permitir(ip string) (bool, time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	j, ok := l.clientes[ip]
	if !ok || now.After(j.windowEnd) {
		j = &janela{windowEnd: now.Add(l.window)}
		l.clientes[ip] = j
	}
	j.count++
	return j.count <= l.limit, j.windowEnd
}

// purgar drops expired windows and returns how many were removed.
func (l *limiter) purgar() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	removidos := 0
	for ip, j := range l.clientes {
		if now.After(j.windowEnd) {
			delete(l.clientes, ip)
			removidos++
		}
	}
	return removidos
}

const purgeInterval = 5 * time.Minute

// iniciarPurga removes expired entries every intervalo so IPs that never
// return do not accumulate. The returned channel closes once ctx is done and
// the goroutine has exited.
func (l *limiter) iniciarPurga(ctx context.Context, nome string, intervalo time.Duration) <-chan struct{} {
	parado := make(chan struct{})
	go func() {
		defer close(parado)
		ticker := time.NewTicker(intervalo)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := l.purgar(); n > 0 {
					log.Debug().Str("limiter", nome).Int("purged", n).Msg("rate limiter purged")
				}
			}
		}
	}()
	return parado
}

// LoginRateLimiter limits login attempts to 10 per minute per IP.
func LoginRateLimiter(ctx context.Context) gin.HandlerFunc {
	l := newLimiter(10, time.Minute)
	l.iniciarPurga(ctx, "login", purgeInterval)
	return func(c *gin.Context) {
		if ok, _ := l.permitir(c.ClientIP()); !ok {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("Muitas tentativas de login. Tente novamente em 1 minuto."))
			return
		}
		c.Next()
	}
}

// RateLimiter returns a general-purpose per-IP limiter. Its purge goroutine
// lives as long as ctx.
func RateLimiter(ctx context.Context, limit int, window time.Duration) gin.HandlerFunc {
	l := newLimiter(limit, window)
	l.iniciarPurga(ctx, "api", purgeInterval)
	return func(c *gin.Context) {
		ok, fim := l.permitir(c.ClientIP())
		if !ok {
			c.Header("Retry-After", fim.UTC().Format(http.TimeFormat))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("Muitas requisições. Tente novamente em instantes."))
			return
		}
		c.Next()
	}
}
