package main

import (
	"log"

	"jobpilot-backend/internal/shared/config"
	"jobpilot-backend/internal/shared/server"
	"jobpilot-backend/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()
	telemetry.Init(cfg.LogLevel)

	r := server.NewRouter(cfg)

	addr := server.Addr(cfg.Port)
	telemetry.Info("server.starting", map[string]any{"addr": addr})

	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
