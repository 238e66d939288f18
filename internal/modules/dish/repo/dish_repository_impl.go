package repo

import (
	"context"

	"menu-server/internal/model"

	"gorm.io/gorm"
)

type DishRepository struct {
	db *gorm.DB
}

func (r *DishRepository) List(ctx context.Context) ([]model.Dish, error) {
	dishes := make([]model.Dish, 0)
	if err := r.db.WithContext(ctx).Order("id asc").Find(&dishes).Error; err != nil {
		return nil, err
	}
	return dishes, nil
}

func (r *DishRepository) FindByID(ctx context.Context, id uint) (*model.Dish, error) {
	var dish model.Dish
	if err := r.db.WithContext(ctx).First(&dish, id).Error; err != nil {
		return nil, err
	}
	return &dish, nil
}

// Create inserts dish and assigns its id. gorm substitutes the column default
// for a zero-valued disponible, so a false value is written back in the same
// transaction.
func (r *DishRepository) Create(ctx context.Context, dish *model.Dish) error {
	available := dish.Available
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(dish).Error; err != nil {
			return err
		}
		dish.Available = available
		if available {
			return nil
		}
		return tx.Model(&model.Dish{}).Where("id = ?", dish.ID).UpdateColumn("disponible", false).Error
	})
}

// Update applies changes to the dish with the given id and returns the stored
// row. It returns gorm.ErrRecordNotFound when the dish does not exist.
func (r *DishRepository) Update(ctx context.Context, id uint, changes DishChanges) (*model.Dish, error) {
	var dish model.Dish
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&dish, id).Error; err != nil {
			return err
		}
		if changes.Empty() {
			return nil
		}
		if err := tx.Model(&model.Dish{}).Where("id = ?", id).Updates(changes.columns()).Error; err != nil {
			return err
		}
		return tx.First(&dish, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *DishRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&model.Dish{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
