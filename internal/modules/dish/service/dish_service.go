package service

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"math"
	"mime/multipart"
	"os"
	"strconv"
	"strings"

	"menu-server/internal/consts"
	"menu-server/internal/model"
	"menu-server/internal/modules/dish/dto"
	"menu-server/internal/modules/dish/repo"
	platformservice "menu-server/internal/platform/service"
	"menu-server/internal/storage"
	"menu-server/internal/utils"

	"gorm.io/gorm"
)

// ListDishes returns every dish, never nil.
func (s *Service) ListDishes(ctx context.Context) ([]model.Dish, error) {
	dishes, err := s.dishStore.List(ctx)
	if err != nil {
		return nil, err
	}
	if dishes == nil {
		dishes = []model.Dish{}
	}
	return dishes, nil
}

// CreateDish validates the form, stores the optional image and inserts the dish.
func (s *Service) CreateDish(ctx context.Context, req dto.CreateDishRequest) (*model.Dish, error) {
	if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		return nil, platformservice.NewValidationError("nombre es obligatorio")
	}
	if req.Price == nil {
		return nil, platformservice.NewValidationError("precio es obligatorio")
	}
	price, err := parsePrice(*req.Price)
	if err != nil {
		return nil, err
	}

	dish := &model.Dish{
		Name:        *req.Name,
		Price:       price,
		Category:    valueOr(req.Category, consts.DefaultDishCategory),
		Description: valueOr(req.Description, ""),
		Available:   utils.ParseBoolFlag(req.Available),
	}

	if req.Image != nil {
		url, err := s.saveImage(req.Image)
		if err != nil {
			return nil, err
		}
		dish.ImageURL = url
	}

	if err := s.dishStore.Create(ctx, dish); err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "dish created", "dish_id", dish.ID, "has_image", dish.ImageURL != "")
	return dish, nil
}

// UpdateDish overwrites the fields present in req. An empty nombre or precio
// counts as absent; an empty disponible leaves availability unchanged.
func (s *Service) UpdateDish(ctx context.Context, id uint, req dto.UpdateDishRequest) (*model.Dish, error) {
	if _, err := s.dishStore.FindByID(ctx, id); err != nil {
		return nil, translateStoreError(err)
	}

	var changes repo.DishChanges
	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		changes.Name = req.Name
	}
	if req.Price != nil && strings.TrimSpace(*req.Price) != "" {
		price, err := parsePrice(*req.Price)
		if err != nil {
			return nil, err
		}
		changes.Price = &price
	}
	changes.Category = req.Category
	changes.Description = req.Description
	if req.Available != nil && *req.Available != "" {
		available := utils.ParseBoolFlag(*req.Available)
		changes.Available = &available
	}

	if req.Image != nil {
		url, err := s.saveImage(req.Image)
		if err != nil {
			return nil, err
		}
		changes.ImageURL = &url
	}

	dish, err := s.dishStore.Update(ctx, id, changes)
	if err != nil {
		return nil, translateStoreError(err)
	}
	slog.InfoContext(ctx, "dish updated", "dish_id", id)
	return dish, nil
}

// DeleteDish removes the dish row. Its image file stays in the store.
func (s *Service) DeleteDish(ctx context.Context, id uint) error {
	deleted, err := s.dishStore.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return platformservice.NewNotFoundError(consts.MessageNotFound)
	}
	slog.InfoContext(ctx, "dish deleted", "dish_id", id)
	return nil
}

// OpenImage returns a stored upload for serving. The caller closes the file.
func (s *Service) OpenImage(filename string) (*os.File, fs.FileInfo, error) {
	f, info, err := s.imageStore.Open(filename)
	if err != nil {
		if errors.Is(err, storage.ErrImageNotFound) {
			return nil, nil, platformservice.NewNotFoundError(consts.MessageNotFound)
		}
		return nil, nil, err
	}
	return f, info, nil
}

// saveImage stores the upload under its sanitized name and returns its public URL.
func (s *Service) saveImage(file *multipart.FileHeader) (string, error) {
	filename := utils.UploadFilename(file.Filename)

	src, err := file.Open()
	if err != nil {
		return "", platformservice.NewInternalError("no se pudo leer la imagen", err)
	}
	defer func() { _ = src.Close() }()

	if err := s.imageStore.Save(filename, src); err != nil {
		if errors.Is(err, storage.ErrInvalidName) {
			return "", platformservice.NewValidationError("nombre de imagen inválido")
		}
		return "", platformservice.NewInternalError("no se pudo guardar la imagen", err)
	}
	return s.cfg.ImageURL(filename), nil
}

func parsePrice(raw string) (float64, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, platformservice.NewValidationError("precio debe ser un número")
	}
	return price, nil
}

func translateStoreError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return platformservice.NewNotFoundError(consts.MessageNotFound)
	}
	return err
}

func valueOr(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}
