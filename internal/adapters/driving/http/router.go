package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with every route registered.
func NewRouter(ports *Ports, cfg Config) *gin.Engine {
	h := &handlers{ports: ports, cfg: cfg}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger())
	r.Use(corsAllowAll())

	// Public
	r.GET("/", h.root)
	r.GET("/health", h.health)

	// Protected
	api := r.Group("/api/v1")
	api.Use(requireAPIKey(cfg.APIKeys))
	{
		api.POST("/chat", h.chat)
		api.GET("/session/:id", h.getSession)
		api.DELETE("/session/:id", h.deleteSession)
	}

	admin := api.Group("/admin")
	{
		admin.GET("/stats", h.adminStats)
		admin.POST("/cleanup", h.cleanup)
		admin.GET("/knowledge-base", h.knowledgeBase)
	}

	return r
}
