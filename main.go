package main

import (
	"time"

	"notices-app/config"
	"notices-app/database"
	routes "notices-app/internal/app/http"
	"notices-app/internal/platform/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	logger.Init()
	defer logger.Sync()

	config.LoadEnv()
	database.InitDB()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Static(config.PUBLIC_UPLOAD_BASE, config.UPLOAD_DIR)

	routes.RegisterRoutes(r)

	logger.L().Info("listening", zap.String("port", config.PORT))
	if err := r.Run(":" + config.PORT); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}
