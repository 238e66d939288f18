package router

import (
	"log/slog"

	"menu-server/internal/config"
	"menu-server/internal/middleware"
	"menu-server/internal/modules"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type Router struct {
	modules *modules.AppModules
	cfg     *config.Config
	limiter *middleware.IPRateLimiter
}

func NewRouter(appModules *modules.AppModules, cfg *config.Config) *Router {
	return &Router{
		modules: appModules,
		cfg:     cfg,
	}
}

func (rt *Router) Init(r *gin.Engine) {
	r.Use(middleware.RequestLogger(slog.Default()))
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(rt.cfg.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Write routes share one limiter so every client gets a single bucket.
	writeLimit := []gin.HandlerFunc{middleware.UploadBodyLimit(rt.cfg.Upload.MaxSizeMB)}
	if rt.cfg.RateLimit.Enabled {
		rt.limiter = middleware.NewIPRateLimiter(rate.Limit(rt.cfg.RateLimit.RPS), rt.cfg.RateLimit.Burst)
		writeLimit = append([]gin.HandlerFunc{middleware.RateLimit(rt.limiter)}, writeLimit...)
	}

	registerDishRoutes(r, rt.modules.Dish.Handler, writeLimit)
	registerUploadRoutes(r, rt.cfg.Upload, rt.modules.Dish.Handler)
}

// Close stops background work started by Init.
func (rt *Router) Close() {
	if rt.limiter != nil {
		rt.limiter.Stop()
	}
}
