package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"scenario-model/internal/api/handlers"
	"scenario-model/internal/api/middleware"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.Logger(log))
	router.Use(middleware.CORS())
	router.Use(middleware.ErrorHandler())

	pnlHandler := handlers.NewPnLHandler()
	breakevenHandler := handlers.NewBreakevenHandler()
	sensitivityHandler := handlers.NewSensitivityHandler()
	scenarioHandler := handlers.NewScenarioHandler()
	presetHandler := handlers.NewPresetHandler(log)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/pnl", pnlHandler.ComputePnL)
		api.POST("/breakeven", breakevenHandler.ComputeBreakeven)
		api.POST("/sensitivity", sensitivityHandler.ComputeSensitivity)

		api.GET("/scenarios", scenarioHandler.ListScenarios)
		api.GET("/presets", presetHandler.ListPresets)
	}

	addr := fmt.Sprintf(":%s", port)
	log.WithField("addr", addr).Info("starting API server")
	if err := router.Run(addr); err != nil {
		log.WithError(err).Fatal("failed to start server")
	}
}
