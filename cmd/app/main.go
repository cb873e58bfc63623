package main

import (
	"healthtick/config"
	"healthtick/di"
	"healthtick/shared/logger"
)

// @title HealthTick Scheduling API
// @version 1.0
// @description Appointment scheduling and conflict resolution service for coaching calls.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
