package dish

import (
	"menu-server/internal/config"
	"menu-server/internal/modules/dish/handler"
	"menu-server/internal/modules/dish/repo"
	"menu-server/internal/modules/dish/service"
	"menu-server/internal/storage"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(cfg *config.Config, dishStore repo.DishStore, imageStore storage.ImageStore) *Module {
	moduleService := service.New(cfg, dishStore, imageStore)
	moduleHandler := handler.New(moduleService)

	return &Module{
		Service: moduleService,
		Handler: moduleHandler,
	}
}
