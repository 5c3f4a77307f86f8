package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AtRiskMedia/adaptive-profile/internal/application/container"
	"github.com/AtRiskMedia/adaptive-profile/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return New("0", container.NewContainer(container.Settings{SupportedLocales: []string{"en"}}, container.Dependencies{}))
}

func TestNew_AppliesConfiguredTimeouts(t *testing.T) {
	s := newTestServer(t)

	assert.Equal(t, ":0", s.Addr())
	assert.Equal(t, config.ServerReadTimeout, s.httpServer.ReadTimeout)
	assert.Equal(t, config.ServerWriteTimeout, s.httpServer.WriteTimeout)
	assert.Equal(t, config.ServerIdleTimeout, s.httpServer.IdleTimeout)
}

func TestNew_ServesHealth(t *testing.T) {
	s := newTestServer(t)

	w := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestStart_ReturnsNilAfterStop(t *testing.T) {
	s := newTestServer(t)

	require.NoError(t, s.Stop(context.Background()))
	assert.NoError(t, s.Start())
}
