package app

import (
	"github.com/yungbote/arbor-backend/internal/logger"
	"github.com/yungbote/arbor-backend/internal/utils"
)

type Config struct {
	Port          string
	PreventCycles bool
}

func LoadConfig(log *logger.Logger) Config {
	port := utils.GetEnv("PORT", "8080", log)
	preventCycles := utils.GetEnvAsBool("GRAPH_PREVENT_CYCLES", false, log)
	return Config{
		Port:          port,
		PreventCycles: preventCycles,
	}
}
