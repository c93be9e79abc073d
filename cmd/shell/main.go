// Command shell plays the letter puzzle in a terminal.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/letterpuzzle/internal/config"
	"github.com/robalobadob/letterpuzzle/internal/words"
)

func main() {
	cfg := config.Load()

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(output).Level(lvl).With().Timestamp().Logger()

	dict, err := words.Open(cfg.WordsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "puzzle> ",
		HistoryFile:     "/tmp/letterpuzzle_history",
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("readline")
	}
	defer rl.Close()

	sh, err := newShell(dict, cfg.Puzzle, rl.Stdout())
	if err != nil {
		log.Fatal().Err(err).Msg("invalid puzzle config")
	}
	sh.exec("new")

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if line == "" {
				break
			}
			continue
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatal().Err(err).Msg("readline")
		}
		if quit := sh.exec(line); quit {
			break
		}
	}
}
