package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/navalhaapps/barbershop-api/internal/cache"
	"github.com/navalhaapps/barbershop-api/internal/config"
	dbpkg "github.com/navalhaapps/barbershop-api/internal/db"
	"github.com/navalhaapps/barbershop-api/internal/logger"
	"github.com/navalhaapps/barbershop-api/internal/middleware"
	"github.com/navalhaapps/barbershop-api/internal/routes"
	"github.com/navalhaapps/barbershop-api/internal/storage"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogPretty)

	db := dbpkg.NewDB(cfg)

	var denylist *cache.TokenDenylist
	if cfg.RedisURL != "" {
		rdb, err := cache.NewClient(cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect redis")
		}
		denylist = cache.NewTokenDenylist(rdb)
	}

	var st *storage.S3Storage
	if cfg.AvatarsEnabled() {
		st = storage.NewS3Storage(cfg)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, log, denylist, st)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
