package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/youruser/bannerforge/internal/api"
	"github.com/youruser/bannerforge/internal/config"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	log := config.NewLogger(cfg.AppEnv)

	if cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	api.RegisterRoutes(r, api.NewHandlers(cfg, log))

	log.Info().Str("port", cfg.Port).Msg("starting banner server")
	if cfg.AIImageAPIURL == "" {
		log.Warn().Msg("AI_IMAGE_API_URL not set, backgrounds will use the gradient fallback")
	}
	if err := r.Run(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server exited")
	}
}
