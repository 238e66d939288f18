package handler

import (
	"net/http"

	"menu-server/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

// ServeUpload GET /uploads/:filename
func (h *Handler) ServeUpload(c *gin.Context) {
	f, info, err := h.dishService.OpenImage(c.Param("filename"))
	if err != nil {
		httpx.WriteServiceError(c, err, "no se pudo leer la imagen")
		return
	}
	defer func() { _ = f.Close() }()

	http.ServeContent(c.Writer, c.Request, info.Name(), info.ModTime(), f)
}
