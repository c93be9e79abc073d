package main

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/letterpuzzle/internal/config"
	"github.com/robalobadob/letterpuzzle/internal/httpserver"
	"github.com/robalobadob/letterpuzzle/internal/store"
	"github.com/robalobadob/letterpuzzle/internal/words"
)

func main() {
	cfg := config.Load()
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	dict, err := words.Open(cfg.WordsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}

	srv, err := httpserver.New(httpserver.Options{
		Store:        store.NewMemoryStore(),
		Dict:         dict,
		Puzzle:       cfg.Puzzle,
		Secret:       cfg.JWTSecret,
		DailySalt:    cfg.DailySalt,
		ClientOrigin: cfg.ClientOrigin,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("invalid puzzle config")
	}
	log.Info().Str("port", cfg.Port).Int("words", dict.Len()).Msg("starting go-server")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
