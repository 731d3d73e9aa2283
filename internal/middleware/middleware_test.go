package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() { gin.SetMode(gin.TestMode) }

func assinar(t *testing.T, secret string, claims JWTClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestJWTAuth(t *testing.T) {
	r := gin.New()
	r.GET("/p", JWTAuth("segredo"), func(c *gin.Context) {
		c.String(http.StatusOK, SessaoID(c))
	})

	validade := jwt.NewNumericDate(time.Now().Add(time.Hour))
	casos := []struct {
		nome   string
		header string
		status int
		body   string
	}{
		{"sem header", "", http.StatusUnauthorized, ""},
		{"access valido", "Bearer " + assinar(t, "segredo", JWTClaims{SessaoID: "s1", Tipo: "access", RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: validade}}), http.StatusOK, "s1"},
		{"refresh recusado", "Bearer " + assinar(t, "segredo", JWTClaims{SessaoID: "s1", Tipo: "refresh", RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: validade}}), http.StatusUnauthorized, ""},
		{"segredo errado", "Bearer " + assinar(t, "outro", JWTClaims{SessaoID: "s1", Tipo: "access", RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: validade}}), http.StatusUnauthorized, ""},
		{"expirado", "Bearer " + assinar(t, "segredo", JWTClaims{SessaoID: "s1", Tipo: "access", RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute))}}), http.StatusUnauthorized, ""},
	}
	for _, tc := range casos {
		t.Run(tc.nome, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/p", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.status, w.Code)
			if tc.status == http.StatusOK {
				assert.Equal(t, tc.body, w.Body.String())
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RequestIDKey)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	gerado := w.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, gerado)
	assert.Equal(t, gerado, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Body.String())
}

func TestLimiter_Janela(t *testing.T) {
	l := newLimiter(2, time.Minute)
	agora := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return agora }

	ok, _ := l.permitir("1.1.1.1")
	assert.True(t, ok)
	ok, _ = l.permitir("1.1.1.1")
	assert.True(t, ok)
	ok, _ = l.permitir("1.1.1.1")
	assert.False(t, ok)

	ok, _ = l.permitir("2.2.2.2")
	assert.True(t, ok, "other IPs have their own window")

	agora = agora.Add(61 * time.Second)
	assert.Equal(t, 2, l.purgar())
	ok, _ = l.permitir("1.1.1.1")
	assert.True(t, ok)
}

func TestLimiter_PurgaParaComContexto(t *testing.T) {
	l := newLimiter(1, time.Millisecond)
	l.permitir("1.1.1.1")
	l.permitir("2.2.2.2")

	ctx, cancel := context.WithCancel(testContext(t))
	parado := l.iniciarPurga(ctx, "teste", 5*time.Millisecond)

	assert.Eventually(t, func() bool {
		l.mu.Lock()
		defer l.mu.Unlock()
		return len(l.clientes) == 0
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-parado:
	case <-time.After(time.Second):
		t.Fatal("purge goroutine still running after cancel")
	}
}

func TestRateLimiter_Responde429(t *testing.T) {
	r := gin.New()
	r.Use(RateLimiter(testContext(t), 1, time.Minute))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestErrorHandlerERecovery(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), Recovery(), ErrorHandler())
	r.GET("/erro", func(c *gin.Context) { _ = c.Error(errors.New("pq: connection refused")) })
	r.GET("/panico", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/erro", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"detail":"Erro interno do servidor"}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panico", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "boom")
}

// testContext retorna um contexto cancelado ao fim do teste
// (equivalente a t.Context, indisponível antes do Go 1.24).
func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}
