package router

import (
	dishhandler "menu-server/internal/modules/dish/handler"

	"github.com/gin-gonic/gin"
)

func registerDishRoutes(r *gin.Engine, h *dishhandler.Handler, writeLimit []gin.HandlerFunc) {
	platos := r.Group("/platos")
	platos.GET("", h.ListDishes)

	write := platos.Group("", writeLimit...)
	write.POST("", h.CreateDish)
	write.PUT("/:id", h.UpdateDish)
	write.DELETE("/:id", h.DeleteDish)
}
