package logger

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"meiduo_user_server/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesToConfiguredFile(t *testing.T) {
	dir := t.TempDir()
	lg, err := New(&config.LogConfig{LogPath: dir, FileName: "user.log", Level: "info", MaxSize: 1}, "release")
	require.NoError(t, err)

	lg.Info("registered")
	_ = lg.Sync()

	data, err := os.ReadFile(filepath.Join(dir, "user.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"registered"`)
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(&config.LogConfig{LogPath: t.TempDir(), Level: "loud"}, "release")
	assert.Error(t, err)
}

func TestNewRejectsNilConfig(t *testing.T) {
	_, err := New(nil, "dev")
	assert.Error(t, err)
}

func TestGinRecoveryReturnsServerBusy(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(GinRecovery(false))
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"code":1005`)
}

func TestIsBrokenPipeError(t *testing.T) {
	assert.True(t, isBrokenPipeError(errors.New("write: broken pipe")))
	assert.True(t, isBrokenPipeError(errors.New("read: Connection reset by peer")))
	assert.False(t, isBrokenPipeError(errors.New("timeout")))
	assert.False(t, isBrokenPipeError(nil))
}
