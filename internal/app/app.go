package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/arbor-backend/internal/data/graph"
	"github.com/yungbote/arbor-backend/internal/http"
	"github.com/yungbote/arbor-backend/internal/logger"
	"github.com/yungbote/arbor-backend/internal/platform/neo4jdb"
	"github.com/yungbote/arbor-backend/internal/services"
)

type App struct {
	Log    *logger.Logger
	Graph  *neo4jdb.Client
	Store  *graph.Store
	Topics services.TopicService
	Router *gin.Engine
	Server *http.Server
	Cfg    Config
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg := LoadConfig(log)

	client, err := neo4jdb.NewFromEnv(log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init neo4j: %w", err)
	}

	store := graph.NewStore(client, log, graph.Config{PreventCycles: cfg.PreventCycles})

	schemaCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store.EnsureSchema(schemaCtx)
	cancel()

	topics := services.NewTopicService(store, log)

	handlerset := wireHandlers(topics)
	router := wireRouter(log, handlerset)
	server := http.NewServer(":"+cfg.Port, router)

	return &App{
		Log:    log,
		Graph:  client,
		Store:  store,
		Topics: topics,
		Router: router,
		Server: server,
		Cfg:    cfg,
	}, nil
}

// Close releases the driver handle and flushes logs. Safe to call once at
// shutdown.
func (a *App) Close(ctx context.Context) {
	if a == nil {
		return
	}
	if a.Graph != nil {
		if err := a.Graph.Close(ctx); err != nil {
			a.Log.Warn("Closing neo4j driver failed", "error", err)
		}
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
