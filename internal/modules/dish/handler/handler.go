package handler

import dishservice "menu-server/internal/modules/dish/service"

type Handler struct {
	dishService *dishservice.Service
}

func New(dishService *dishservice.Service) *Handler {
	return &Handler{dishService: dishService}
}
