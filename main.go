package main

import (
	"onboarding-app/config"
	"onboarding-app/database"
	authapi "onboarding-app/internal/api/auth"
	routes "onboarding-app/internal/app/http"
	"onboarding-app/internal/app/logging"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	config.LoadEnv()
	logging.Init(config.APP_ENV, config.LOG_LEVEL)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	database.InitDB()
	if err := authapi.EnsureBootstrapAdmin(database.DB); err != nil {
		log.Fatal().Err(err).Msg("bootstrap admin")
	}

	r := routes.NewRouter()

	log.Info().Str("port", config.PORT).Str("env", config.APP_ENV).Msg("listening")
	if err := r.Run(":" + config.PORT); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
