package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/doca-panel/internal/cache"
	"github.com/BruksfildServices01/doca-panel/internal/config"
	dbpkg "github.com/BruksfildServices01/doca-panel/internal/db"
	"github.com/BruksfildServices01/doca-panel/internal/logger"
	"github.com/BruksfildServices01/doca-panel/internal/middleware"
	"github.com/BruksfildServices01/doca-panel/internal/routes"
)

func main() {

	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db := dbpkg.NewDB(cfg)

	// Redis é só cache de dashboard — sem ele o painel segue vivo.
	var statsCache cache.Cache
	redisClient := cache.NewRedisClient(cfg)
	pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	if err := cache.Ping(pingCtx, redisClient); err != nil {
		log.Warn("redis indisponível, dashboard sem cache", zap.Error(err))
	} else {
		statsCache = cache.NewRedisCache(redisClient)
	}
	cancel()

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "online", "system": "DOCA"})
	})

	routes.RegisterRoutes(r, db, cfg, statsCache, log)

	log.Info("Server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
