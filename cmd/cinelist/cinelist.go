package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Agurato/cinelist/internal/business"
	"github.com/Agurato/cinelist/internal/infrastructure"
	"github.com/Agurato/cinelist/internal/service/server"
)

// Environment variables names
const (
	EnvDBURL         = "DB_URL"
	EnvDBPort        = "DB_PORT"
	EnvDBName        = "DB_NAME"
	EnvDBUser        = "DB_USER"
	EnvDBPassword    = "DB_PASSWORD"
	EnvAnotherAPIURL = "ANOTHER_API_URL" // Leaving this unset disables creation notifications
	EnvServerPort    = "SERVER_PORT"
	EnvLogLevel      = "LOG_LEVEL"
)

func main() {
	godotenv.Load()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	if level, err := zerolog.ParseLevel(os.Getenv(EnvLogLevel)); err == nil && level != zerolog.NoLevel {
		zerolog.SetGlobalLevel(level)
	}

	db := infrastructure.NewMongoDB(
		os.Getenv(EnvDBUser),
		os.Getenv(EnvDBPassword),
		os.Getenv(EnvDBURL),
		os.Getenv(EnvDBPort),
		os.Getenv(EnvDBName))
	defer db.Close()

	notifier := infrastructure.NewWebhookNotifier(os.Getenv(EnvAnotherAPIURL))

	mm := business.NewMovieManagerWrapper(db, notifier)
	movieHandler := server.NewMovieHandler(mm)

	port := os.Getenv(EnvServerPort)
	if port == "" {
		port = "8080"
	}

	router := server.NewServer(movieHandler)
	if err := router.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("Could not run server")
	}
}
