//go:build wireinject
// +build wireinject

package di

import (
	"menu-server/internal/config"
	"menu-server/internal/modules"
	"menu-server/internal/modules/dish/repo"
	"menu-server/internal/router"

	"github.com/google/wire"
)

func InitializeApplication(cfg *config.Config) (*Application, func(), error) {
	wire.Build(
		provideDB,
		provideImageStore,
		repo.NewDishRepository,
		modules.New,
		router.NewRouter,
		NewApplication,
	)
	return nil, nil, nil
}
