package dto

import "mime/multipart"

// CreateDishRequest holds the raw form input of a create. A nil field was
// absent from the form.
type CreateDishRequest struct {
	Name        *string
	Price       *string
	Category    *string
	Description *string
	Available   string
	Image       *multipart.FileHeader
}

// UpdateDishRequest holds the raw form input of an update. A nil field was
// absent from the form and keeps its stored value.
type UpdateDishRequest struct {
	Name        *string
	Price       *string
	Category    *string
	Description *string
	Available   *string
	Image       *multipart.FileHeader
}

type MessageResponse struct {
	Message string `json:"mensaje"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
