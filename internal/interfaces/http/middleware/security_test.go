package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func secureHeaders(cfg SecurityConfig) http.Header {
	r := gin.New()
	r.Use(SecureWithConfig(cfg))
	r.GET("/api/customers", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/customers", nil))
	return w.Header()
}

func TestSecure_Defaults(t *testing.T) {
	h := secureHeaders(DefaultSecurityConfig())

	assert.Equal(t, "DENY", h.Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", h.Get("X-Content-Type-Options"))
	assert.Equal(t, "no-referrer", h.Get("Referrer-Policy"))
	assert.Equal(t, "default-src 'none'; frame-ancestors 'none'", h.Get("Content-Security-Policy"))
	assert.Contains(t, h.Get("Permissions-Policy"), "camera=()")
	assert.Empty(t, h.Get("Strict-Transport-Security"))
}

func TestSecureWithConfig(t *testing.T) {
	t.Run("hsts with subdomains", func(t *testing.T) {
		cfg := DefaultSecurityConfig()
		cfg.HSTSEnabled = true
		assert.Equal(t, "max-age=31536000; includeSubDomains", secureHeaders(cfg).Get("Strict-Transport-Security"))
	})

	t.Run("hsts without subdomains", func(t *testing.T) {
		h := secureHeaders(SecurityConfig{HSTSEnabled: true, HSTSMaxAge: 600})
		assert.Equal(t, "max-age=600", h.Get("Strict-Transport-Security"))
	})

	t.Run("empty policies omitted", func(t *testing.T) {
		h := secureHeaders(SecurityConfig{})
		assert.Empty(t, h.Get("Content-Security-Policy"))
		assert.Empty(t, h.Get("Permissions-Policy"))
		assert.Equal(t, "DENY", h.Get("X-Frame-Options"))
	})
}
