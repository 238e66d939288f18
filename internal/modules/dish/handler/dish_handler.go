package handler

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"menu-server/internal/consts"
	"menu-server/internal/modules/common/httpx"
	"menu-server/internal/modules/dish/dto"

	"github.com/gin-gonic/gin"
)

// maxFormMemory is how much of a multipart body is held in memory before
// file parts spill to temporary files.
const maxFormMemory = 32 << 20

// ListDishes GET /platos
func (h *Handler) ListDishes(c *gin.Context) {
	dishes, err := h.dishService.ListDishes(c.Request.Context())
	if err != nil {
		httpx.WriteServiceError(c, err, "no se pudieron obtener los platos")
		return
	}
	c.JSON(http.StatusOK, dishes)
}

// CreateDish POST /platos
func (h *Handler) CreateDish(c *gin.Context) {
	if !parseForm(c) {
		return
	}

	req := dto.CreateDishRequest{
		Name:        formValue(c, consts.DishFieldName),
		Price:       formValue(c, consts.DishFieldPrice),
		Category:    formValue(c, consts.DishFieldCategory),
		Description: formValue(c, consts.DishFieldDescription),
		Available:   c.PostForm(string(consts.DishFieldAvailable)),
		Image:       formImage(c),
	}

	dish, err := h.dishService.CreateDish(c.Request.Context(), req)
	if err != nil {
		httpx.WriteServiceError(c, err, "no se pudo crear el plato")
		return
	}
	c.JSON(http.StatusOK, dish)
}

// UpdateDish PUT /platos/:id
func (h *Handler) UpdateDish(c *gin.Context) {
	id, ok := dishID(c)
	if !ok {
		return
	}
	if !parseForm(c) {
		return
	}

	req := dto.UpdateDishRequest{
		Name:        formValue(c, consts.DishFieldName),
		Price:       formValue(c, consts.DishFieldPrice),
		Category:    formValue(c, consts.DishFieldCategory),
		Description: formValue(c, consts.DishFieldDescription),
		Available:   formValue(c, consts.DishFieldAvailable),
		Image:       formImage(c),
	}

	dish, err := h.dishService.UpdateDish(c.Request.Context(), id, req)
	if err != nil {
		httpx.WriteServiceError(c, err, "no se pudo actualizar el plato")
		return
	}
	c.JSON(http.StatusOK, dish)
}

// DeleteDish DELETE /platos/:id
func (h *Handler) DeleteDish(c *gin.Context) {
	id, ok := dishID(c)
	if !ok {
		return
	}

	if err := h.dishService.DeleteDish(c.Request.Context(), id); err != nil {
		httpx.WriteServiceError(c, err, "no se pudo eliminar el plato")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: consts.MessageDeleted})
}

// dishID parses the :id path parameter. Anything that is not an unsigned
// integer cannot name a dish and gets the same 404 as a missing one.
func dishID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: consts.MessageNotFound})
		return 0, false
	}
	return uint(id), true
}

// parseForm reads a multipart or urlencoded body. It writes the error
// response itself and reports false when the body is unusable.
func parseForm(c *gin.Context) bool {
	err := c.Request.ParseMultipartForm(maxFormMemory)
	if err == nil || errors.Is(err, http.ErrNotMultipart) {
		return true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		c.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{Error: "el cuerpo de la petición es demasiado grande"})
		return false
	}
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "formulario inválido"})
	return false
}

func formValue(c *gin.Context, field consts.DishField) *string {
	if v, ok := c.GetPostForm(string(field)); ok {
		return &v
	}
	return nil
}

// formImage returns the image part, or nil when none was sent or it has no filename.
func formImage(c *gin.Context) *multipart.FileHeader {
	file, err := c.FormFile(string(consts.DishFieldImage))
	if err != nil || file.Filename == "" {
		return nil
	}
	return file
}
