package https_server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"meiduo_user_server/internal/config"
	"meiduo_user_server/internal/dao/mysql/repository"
	"meiduo_user_server/internal/handler"
	"meiduo_user_server/internal/service"
	"meiduo_user_server/internal/service/user"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noCodes struct{}

func (noCodes) CodeForMobile(context.Context, string) (string, bool, error) { return "", false, nil }

func newEngine(t *testing.T) *gin.Engine {
	t.Helper()
	v, err := user.NewRegistrationValidator(noCodes{}, false)
	require.NoError(t, err)
	svc := service.NewServices(repository.NewMemoryRepositories(), v, nil)

	conf := config.Default()
	conf.MainConfig.Mode = gin.TestMode
	return Init(handler.NewHandlers(svc), conf)
}

func TestRoutesRegistered(t *testing.T) {
	engine := newEngine(t)

	routes := map[string]bool{}
	for _, r := range engine.Routes() {
		routes[r.Method+" "+r.Path] = true
	}
	for _, want := range []string{
		"POST /users",
		"POST /register",
		"GET /usernames/:username/count",
		"GET /mobiles/:mobile/count",
	} {
		assert.True(t, routes[want], want)
	}
}

func TestEngineMiddleware(t *testing.T) {
	engine := newEngine(t)

	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Contains(t, w.Body.String(), `"code":1001`)
}

func TestGinMode(t *testing.T) {
	assert.Equal(t, gin.DebugMode, ginMode("dev"))
	assert.Equal(t, gin.DebugMode, ginMode("debug"))
	assert.Equal(t, gin.TestMode, ginMode("test"))
	assert.Equal(t, gin.ReleaseMode, ginMode("release"))
	assert.Equal(t, gin.ReleaseMode, ginMode(""))
}
