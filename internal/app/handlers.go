package app

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/arbor-backend/internal/http"
	httpH "github.com/yungbote/arbor-backend/internal/http/handlers"
	"github.com/yungbote/arbor-backend/internal/logger"
	"github.com/yungbote/arbor-backend/internal/services"
)

type Handlers struct {
	Health    *httpH.HealthHandler
	Trunk     *httpH.TrunkHandler
	Branch    *httpH.BranchHandler
	Reference *httpH.ReferenceHandler
	Topic     *httpH.TopicHandler
}

func wireHandlers(topics services.TopicService) Handlers {
	return Handlers{
		Health:    httpH.NewHealthHandler(),
		Trunk:     httpH.NewTrunkHandler(topics),
		Branch:    httpH.NewBranchHandler(topics),
		Reference: httpH.NewReferenceHandler(topics),
		Topic:     httpH.NewTopicHandler(topics),
	}
}

func wireRouter(log *logger.Logger, handlers Handlers) *gin.Engine {
	return http.NewRouter(http.RouterConfig{
		Log:              log,
		HealthHandler:    handlers.Health,
		TrunkHandler:     handlers.Trunk,
		BranchHandler:    handlers.Branch,
		ReferenceHandler: handlers.Reference,
		TopicHandler:     handlers.Topic,
	})
}
