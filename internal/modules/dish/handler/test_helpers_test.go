package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"menu-server/internal/config"
	"menu-server/internal/modules/dish/repo"
	dishservice "menu-server/internal/modules/dish/service"
	"menu-server/internal/storage"
	"menu-server/internal/testutils"

	"github.com/gin-gonic/gin"
)

// setupTestRouter mounts the dish handlers on a bare engine backed by an
// in-memory database and a temporary upload directory.
func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb := testutils.SetupDB(t)
	imageStore, err := storage.NewLocalImageStore(t.TempDir())
	if err != nil {
		t.Fatalf("image store: %v", err)
	}
	cfg := &config.Config{
		Server: config.ServerConfig{PublicBaseURL: "http://127.0.0.1:5000"},
		Upload: config.UploadConfig{Path: imageStore.Root(), URLPrefix: "/uploads/"},
	}
	h := New(dishservice.New(cfg, repo.NewDishRepository(gdb), imageStore))

	r := gin.New()
	r.GET("/platos", h.ListDishes)
	r.POST("/platos", h.CreateDish)
	r.PUT("/platos/:id", h.UpdateDish)
	r.DELETE("/platos/:id", h.DeleteDish)
	r.GET("/uploads/:filename", h.ServeUpload)
	return r
}

func doMultipart(t *testing.T, r http.Handler, method, path string, fields map[string]string, files ...testutils.FormFile) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := testutils.MultipartBody(t, fields, files...)
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func do(r http.Handler, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}
