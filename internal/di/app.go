package di

import (
	"menu-server/internal/config"
	"menu-server/internal/db"
	"menu-server/internal/modules"
	"menu-server/internal/router"
	"menu-server/internal/storage"

	"gorm.io/gorm"
)

type Application struct {
	Config  *config.Config
	Router  *router.Router
	Modules *modules.AppModules
}

func NewApplication(cfg *config.Config, r *router.Router, m *modules.AppModules) *Application {
	return &Application{
		Config:  cfg,
		Router:  r,
		Modules: m,
	}
}

func provideDB(cfg *config.Config) (*gorm.DB, func(), error) {
	gdb, err := db.Open(cfg.Database, cfg.Server.Mode)
	if err != nil {
		return nil, nil, err
	}
	return gdb, func() { _ = db.Close(gdb) }, nil
}

func provideImageStore(cfg *config.Config) (storage.ImageStore, error) {
	return storage.NewLocalImageStore(cfg.Upload.Path)
}
