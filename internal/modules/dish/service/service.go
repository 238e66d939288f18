package service

import (
	"menu-server/internal/config"
	"menu-server/internal/modules/dish/repo"
	"menu-server/internal/storage"
)

type Service struct {
	cfg        *config.Config
	dishStore  repo.DishStore
	imageStore storage.ImageStore
}

func New(cfg *config.Config, dishStore repo.DishStore, imageStore storage.ImageStore) *Service {
	return &Service{
		cfg:        cfg,
		dishStore:  dishStore,
		imageStore: imageStore,
	}
}
