package handlers

import (
	"net/http"

	"resource_api/internal/logger"
	"resource_api/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Config carries HTTP-layer settings.
type Config struct {
	Realm        string // Basic auth realm announced in WWW-Authenticate
	DefaultLimit int    // page size when ?limit is absent
}

const defaultRealm = "resource-api"

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	cfg      Config
}

// NewHandler constructs a new HTTP handler with dependencies. A nil log discards output.
func NewHandler(services *service.Service, log *logger.Logger, cfg Config) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	if cfg.Realm == "" {
		cfg.Realm = defaultRealm
	}
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = service.DefaultListLimit
	}
	return &Handler{services: services, log: log, cfg: cfg}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(h.requestIDMiddleware, h.accessLogMiddleware, gin.CustomRecovery(h.recoveryHandler))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Protected CRUD endpoints
	h.registerResourceRoutes(router)

	router.NoRoute(h.notFound)

	return router
}

func (h *Handler) registerResourceRoutes(r *gin.Engine) {
	resources := r.Group("/resources", h.basicAuthMiddleware)
	{
		resources.GET("", h.listResources)
		resources.POST("", h.createResource)
		resources.GET("/:id", h.getResource)
		resources.PUT("/:id", h.updateResource)
		resources.DELETE("/:id", h.deleteResource)
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

func (h *Handler) notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, errorBody(codeNotFound, msgRouteNotFound))
}
