package main

import (
	"os"

	"github.com/rs/zerolog"

	"hopper/config"
	"hopper/network"
	"hopper/room"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := config.LoadEnv(); err != nil {
		log.Debug().Err(err).Msg("no .env file")
	}
	settings, err := config.Load(".")
	if err != nil {
		log.Fatal().Err(err).Msg("bad configuration")
	}

	m := room.NewManager(settings, log)
	if err := network.Serve(config.Addr(), m, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
