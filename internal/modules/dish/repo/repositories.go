package repo

import (
	"context"

	"menu-server/internal/model"

	"gorm.io/gorm"
)

// DishChanges lists the columns an update touches. Nil fields are left alone.
type DishChanges struct {
	Name        *string
	Price       *float64
	Category    *string
	Description *string
	ImageURL    *string
	Available   *bool
}

// Empty reports whether the update would change nothing.
func (c DishChanges) Empty() bool {
	return len(c.columns()) == 0
}

func (c DishChanges) columns() map[string]any {
	cols := make(map[string]any)
	if c.Name != nil {
		cols["nombre"] = *c.Name
	}
	if c.Price != nil {
		cols["precio"] = *c.Price
	}
	if c.Category != nil {
		cols["categoria"] = *c.Category
	}
	if c.Description != nil {
		cols["descripcion"] = *c.Description
	}
	if c.ImageURL != nil {
		cols["imagen"] = *c.ImageURL
	}
	if c.Available != nil {
		cols["disponible"] = *c.Available
	}
	return cols
}

type DishStore interface {
	List(ctx context.Context) ([]model.Dish, error)
	FindByID(ctx context.Context, id uint) (*model.Dish, error)
	Create(ctx context.Context, dish *model.Dish) error
	Update(ctx context.Context, id uint, changes DishChanges) (*model.Dish, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

func NewDishRepository(db *gorm.DB) DishStore {
	return &DishRepository{db: db}
}
