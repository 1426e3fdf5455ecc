package main

import (
	"os"

	"github.com/emre/unifolio/internal/pkg/logger"
	"github.com/emre/unifolio/internal/server"
)

// @title unifolio API
// @version 1.0
// @description University directory: profiles, sessions and programme lookups

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
