package main

import (
	"os"

	"technitium_sync/internal/api"
	"technitium_sync/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
		os.Exit(1)
	}

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}
	logrus.Println("✓ Configuration loaded")

	// 2. Initialize Gin router
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	// Setup API v1 routes
	api.SetupRouter(r, cfg.FacadeToken)

	logrus.Printf("✓ Server starting on %s", cfg.HTTPAddr)

	// Start server
	if err := r.Run(cfg.HTTPAddr); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
