package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"library-catalog/pkg/logger"
)

func main() {
	// .env is a development convenience; production uses real environment
	// variables.
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using system environment")
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Init(env)

	Serve()
}
