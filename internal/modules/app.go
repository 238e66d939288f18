package modules

import (
	"menu-server/internal/config"
	"menu-server/internal/modules/dish"
	dishrepo "menu-server/internal/modules/dish/repo"
	"menu-server/internal/storage"
)

type AppModules struct {
	Dish *dish.Module
}

func New(cfg *config.Config, dishStore dishrepo.DishStore, imageStore storage.ImageStore) *AppModules {
	return &AppModules{
		Dish: dish.New(cfg, dishStore, imageStore),
	}
}
