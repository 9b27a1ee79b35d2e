package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/yungbote/arbor-backend/internal/http/handlers"
	httpMW "github.com/yungbote/arbor-backend/internal/http/middleware"
	"github.com/yungbote/arbor-backend/internal/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	HealthHandler    *httpH.HealthHandler
	TrunkHandler     *httpH.TrunkHandler
	BranchHandler    *httpH.BranchHandler
	ReferenceHandler *httpH.ReferenceHandler
	TopicHandler     *httpH.TopicHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.AttachRequestContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS())

	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		if cfg.TrunkHandler != nil {
			api.POST("/trunks", cfg.TrunkHandler.Create)
			api.GET("/trunks", cfg.TrunkHandler.List)
			api.DELETE("/trunks/:name", cfg.TrunkHandler.Delete)
		}

		if cfg.BranchHandler != nil {
			api.POST("/branches", cfg.BranchHandler.Create)
			api.GET("/branches", cfg.BranchHandler.List)
			api.DELETE("/branches", cfg.BranchHandler.Delete)
			api.POST("/branches/connect", cfg.BranchHandler.Connect)
			api.POST("/branches/detach", cfg.BranchHandler.Detach)
		}

		if cfg.ReferenceHandler != nil {
			api.POST("/references", cfg.ReferenceHandler.Create)
			api.GET("/references", cfg.ReferenceHandler.List)
			api.DELETE("/references", cfg.ReferenceHandler.Delete)
			api.POST("/references/cross", cfg.ReferenceHandler.Cross)
			api.POST("/references/detach", cfg.ReferenceHandler.Detach)
		}

		if cfg.TopicHandler != nil {
			api.GET("/topics/:label/:name/descendants", cfg.TopicHandler.Descendants)
			api.GET("/topics/:label/:name/ancestors", cfg.TopicHandler.Ancestors)
		}
	}

	return r
}
