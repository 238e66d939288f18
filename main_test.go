package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"menu-server/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "menu-server-main-*")
	if err != nil {
		panic(err)
	}

	envs := []testutils.SavedEnv{
		testutils.SetEnv("MENU_SERVER_MODE", "test"),
		testutils.SetEnv("MENU_LOG_LEVEL", "error"),
		testutils.SetEnv("MENU_DATABASE_TYPE", "sqlite"),
		testutils.SetEnv("MENU_DATABASE_FILENAME", filepath.Join(tmpDir, "menu.db")),
		testutils.SetEnv("MENU_UPLOAD_PATH", filepath.Join(tmpDir, "uploads")),
	}

	code := m.Run()

	testutils.RestoreEnv(envs)
	_ = os.RemoveAll(tmpDir)
	os.Exit(code)
}

func TestRoutesCommand_WritesRoutesJSON(t *testing.T) {
	out := filepath.Join(t.TempDir(), "routes.json")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"routes", "--config", t.TempDir(), "--out", out})
	require.NoError(t, cmd.Execute())

	b, err := os.ReadFile(out)
	require.NoError(t, err)

	var routes []routeInfo
	require.NoError(t, json.Unmarshal(b, &routes))

	have := make(map[string]bool)
	for _, r := range routes {
		have[r.Method+" "+r.Path] = true
	}
	assert.True(t, have["POST /platos"])
	assert.True(t, have["DELETE /platos/:id"])
	assert.True(t, have["GET /uploads/:filename"])
}

func TestMigrateCommand_CreatesDatabase(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"migrate", "--config", t.TempDir()})
	require.NoError(t, cmd.Execute())

	assert.FileExists(t, os.Getenv("MENU_DATABASE_FILENAME"))
}

func TestMigrateCommand_InvalidConfig(t *testing.T) {
	t.Setenv("MENU_DATABASE_TYPE", "oracle")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"migrate", "--config", t.TempDir()})
	assert.Error(t, cmd.Execute())
}

func TestExportRoutes_EmptyEngine(t *testing.T) {
	gin.SetMode(gin.TestMode)
	out := filepath.Join(t.TempDir(), "routes.json")

	require.NoError(t, exportRoutes(gin.New(), out))

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(b))
}
