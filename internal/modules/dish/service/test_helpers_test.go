package service

import (
	"mime"
	"mime/multipart"
	"testing"

	"menu-server/internal/config"
	"menu-server/internal/modules/dish/repo"
	"menu-server/internal/storage"
	"menu-server/internal/testutils"
)

func testConfig(uploadDir string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{PublicBaseURL: "http://127.0.0.1:5000"},
		Upload: config.UploadConfig{Path: uploadDir, URLPrefix: "/uploads/"},
	}
}

// setupService wires a Service over an in-memory database and a temporary
// upload directory.
func setupService(t *testing.T) (*Service, *storage.LocalImageStore) {
	t.Helper()
	gdb := testutils.SetupDB(t)
	imageStore, err := storage.NewLocalImageStore(t.TempDir())
	if err != nil {
		t.Fatalf("image store: %v", err)
	}
	return New(testConfig(imageStore.Root()), repo.NewDishRepository(gdb), imageStore), imageStore
}

// fileHeader turns content into the *multipart.FileHeader a parsed form would hold.
func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	body, contentType := testutils.MultipartBody(t, nil, testutils.FormFile{Field: "imagen", Filename: filename, Content: content})

	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		t.Fatalf("parse content type: %v", err)
	}
	form, err := multipart.NewReader(body, params["boundary"]).ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["imagen"][0]
}

func ptr[T any](v T) *T { return &v }
