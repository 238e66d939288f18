package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"menu-server/internal/config"
	"menu-server/internal/modules"
	"menu-server/internal/modules/dish/repo"
	"menu-server/internal/storage"
	"menu-server/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	imageStore, err := storage.NewLocalImageStore(t.TempDir())
	require.NoError(t, err)
	appModules := modules.New(cfg, repo.NewDishRepository(testutils.SetupDB(t)), imageStore)

	rt := NewRouter(appModules, cfg)
	t.Cleanup(rt.Close)

	r := gin.New()
	rt.Init(r)
	return r
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{PublicBaseURL: "http://127.0.0.1:5000"},
		Upload: config.UploadConfig{URLPrefix: "/uploads/", MaxSizeMB: 1, CacheControl: "public, max-age=86400"},
		CORS:   config.CORSConfig{AllowOrigins: []string{"*"}},
	}
}

func TestInit_RegistersCoreRoutes(t *testing.T) {
	r := setupRouter(t, testConfig())

	wants := []string{
		"GET /ping",
		"GET /platos",
		"POST /platos",
		"PUT /platos/:id",
		"DELETE /platos/:id",
		"GET /uploads/:filename",
	}

	have := make(map[string]bool)
	for _, route := range r.Routes() {
		have[route.Method+" "+route.Path] = true
	}
	for _, w := range wants {
		assert.True(t, have[w], "missing route: %s", w)
	}
}

func TestPing(t *testing.T) {
	r := setupRouter(t, testConfig())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestUploadRoute_SetsCacheControl(t *testing.T) {
	r := setupRouter(t, testConfig())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/uploads/missing.png", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "public, max-age=86400", w.Header().Get("Cache-Control"))
}

func TestCreate_RejectsOversizedBody(t *testing.T) {
	r := setupRouter(t, testConfig())

	req := httptest.NewRequest(http.MethodPost, "/platos", strings.NewReader("nombre=Pizza&precio=9.5"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.ContentLength = 2 * 1024 * 1024
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestWriteRoutes_RateLimited(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit = config.RateLimitConfig{Enabled: true, RPS: 0.001, Burst: 1}
	r := setupRouter(t, cfg)

	post := func() int {
		req := httptest.NewRequest(http.MethodPost, "/platos", strings.NewReader("nombre=Pizza&precio=9.5"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.RemoteAddr = "1.2.3.4:1111"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	require.Equal(t, http.StatusOK, post())
	assert.Equal(t, http.StatusTooManyRequests, post())

	// Reads are not limited.
	req := httptest.NewRequest(http.MethodGet, "/platos", nil)
	req.RemoteAddr = "1.2.3.4:1111"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
