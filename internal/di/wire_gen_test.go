package di

import (
	"path/filepath"
	"testing"

	"menu-server/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeApplication_SQLite(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		Server:   config.ServerConfig{Mode: "test", PublicBaseURL: "http://127.0.0.1:5000"},
		Database: config.DatabaseConfig{Type: "sqlite", Filename: filepath.Join(dir, "db", "menu.db")},
		Upload:   config.UploadConfig{Path: filepath.Join(dir, "uploads"), URLPrefix: "/uploads/", MaxSizeMB: 10},
	}

	app, cleanup, err := InitializeApplication(cfg)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	assert.Same(t, cfg, app.Config)
	assert.NotNil(t, app.Router)
	assert.NotNil(t, app.Modules.Dish.Service)
	assert.DirExists(t, cfg.Upload.Path)
}

func TestInitializeApplication_BadDatabase(t *testing.T) {
	cfg := &config.Config{
		Database: config.DatabaseConfig{Type: "oracle"},
		Upload:   config.UploadConfig{Path: t.TempDir()},
	}

	_, _, err := InitializeApplication(cfg)
	assert.Error(t, err)
}
