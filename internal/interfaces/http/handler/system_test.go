package handler

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingFunc func() error

func (f pingFunc) Ping() error { return f() }

func TestSystemHandler_GetSystemInfo(t *testing.T) {
	h := NewSystemHandler("ceiling-erp", "1.4.0", nil)
	assert.False(t, h.startTime.IsZero())

	c, w := newTestContext(http.MethodGet, "/api/system/info")
	h.GetSystemInfo(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)

	data := resp.Data.(map[string]any)
	assert.Equal(t, "ceiling-erp", data["name"])
	assert.Equal(t, "1.4.0", data["version"])
	assert.NotEmpty(t, data["go_version"])
	assert.NotEmpty(t, data["uptime"])
}

func TestSystemHandler_Ping(t *testing.T) {
	h := NewSystemHandler("ceiling-erp", "dev", nil)

	c, w := newTestContext(http.MethodGet, "/api/system/ping")
	h.Ping(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeResponse(t, w).Data.(map[string]any)
	assert.Equal(t, "pong", data["message"])

	_, err := time.Parse(time.RFC3339, data["timestamp"].(string))
	assert.NoError(t, err)
}

func TestSystemHandler_Health(t *testing.T) {
	t.Run("all checks up", func(t *testing.T) {
		h := NewSystemHandler("ceiling-erp", "dev", map[string]Pinger{
			"database": pingFunc(func() error { return nil }),
		})

		c, w := newTestContext(http.MethodGet, "/health")
		h.Health(c)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w)
		assert.True(t, resp.Success)
		data := resp.Data.(map[string]any)
		assert.Equal(t, "healthy", data["status"])
		assert.Equal(t, "up", data["checks"].(map[string]any)["database"])
	})

	t.Run("failing check", func(t *testing.T) {
		h := NewSystemHandler("ceiling-erp", "dev", map[string]Pinger{
			"database": pingFunc(func() error { return errors.New("connection refused") }),
			"cache":    pingFunc(func() error { return nil }),
		})

		c, w := newTestContext(http.MethodGet, "/health")
		h.Health(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		resp := decodeResponse(t, w)
		assert.False(t, resp.Success)
		data := resp.Data.(map[string]any)
		require.Equal(t, "unhealthy", data["status"])
		checks := data["checks"].(map[string]any)
		assert.Equal(t, "down", checks["database"])
		assert.Equal(t, "up", checks["cache"])
	})
}
