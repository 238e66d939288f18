package router

import (
	"menu-server/internal/config"
	"menu-server/internal/middleware"
	dishhandler "menu-server/internal/modules/dish/handler"

	"github.com/gin-gonic/gin"
)

func registerUploadRoutes(r *gin.Engine, cfg config.UploadConfig, h *dishhandler.Handler) {
	uploads := r.Group(cfg.URLPrefix, middleware.StaticCache(cfg.CacheControl))
	uploads.GET("/:filename", h.ServeUpload)
	uploads.HEAD("/:filename", h.ServeUpload)
}
