package router

import (
	"github.com/gin-gonic/gin"

	"github.com/aliiaycicek/My-Portfolio/internal/config"
	"github.com/aliiaycicek/My-Portfolio/internal/http/handlers"
	"github.com/aliiaycicek/My-Portfolio/internal/http/middleware"
)

// CollectionHandler - CRUD хэндлер одной коллекции.
type CollectionHandler interface {
	Kind() string
	Register(group *gin.RouterGroup, idMiddleware, writeMiddleware []gin.HandlerFunc)
}

// Collection связывает путь под /api с хэндлером.
type Collection struct {
	Path    string
	Handler CollectionHandler
}

// Handlers собирает все хэндлеры приложения. SeedHandler и WSHandler могут быть nil.
type Handlers struct {
	Health      *handlers.HealthHandler
	Seed        *handlers.SeedHandler
	WS          *handlers.WSHandler
	Collections []Collection
}

func SetupRouter(cfg *config.Config, h Handlers) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/health", h.Health.Health)

	api := r.Group("/api")

	if h.Seed != nil && cfg.Env == "development" {
		api.POST("/seed", h.Seed.Seed)
	}

	if h.WS != nil {
		api.GET("/ws", h.WS.Handle)
	}

	// один лимитер на все коллекции, чтобы лимит считался на IP, а не на коллекцию
	writeLimit := []gin.HandlerFunc{middleware.RateLimitMiddleware(cfg.RateLimitLimit, cfg.RateLimitPeriod)}
	idCheck := []gin.HandlerFunc{middleware.IDValidator("id")}

	for _, col := range h.Collections {
		col.Handler.Register(api.Group("/"+col.Path), idCheck, writeLimit)
	}

	return r
}
