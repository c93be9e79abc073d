// internal/config/config.go
//
// Runtime configuration, read from the environment (and a .env file in development).
//
// Environment variables:
//   PORT=5175                     HTTP listen port
//   LOG_LEVEL=info                zerolog level
//   CLIENT_ORIGIN=http://localhost:5173
//   WORDS_FILE=./wordlist.txt     empty selects the embedded list
//   PUZZLE_LETTERS=7  PUZZLE_MIN_WORD=3
//   PUZZLE_MIN_FORMABLE=3  PUZZLE_MAX_FORMABLE=5  (exclusive bounds)
//   PUZZLE_MAX_ATTEMPTS=10  PUZZLE_ALLOW_REPEATS=true
//   JWT_SECRET, DAILY_SALT

package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/letterpuzzle/internal/puzzle"
	"github.com/robalobadob/letterpuzzle/internal/words"
)

// Config is the full set of settings for the server and the shell.
type Config struct {
	Port         string
	LogLevel     string
	ClientOrigin string
	WordsFile    string
	JWTSecret    string
	DailySalt    string
	Puzzle       puzzle.Config
}

// Load reads .env files (if present) and then the environment.
func Load(files ...string) Config {
	_ = godotenv.Load(files...)
	return FromEnv()
}

// FromEnv builds a Config from the current environment, applying defaults.
func FromEnv() Config {
	def := puzzle.DefaultConfig()
	return Config{
		Port:         getEnv("PORT", "5175"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		ClientOrigin: getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		WordsFile:    lookupEnv("WORDS_FILE", words.DefaultPath),
		JWTSecret:    getEnv("JWT_SECRET", "dev_secret_change_me"),
		DailySalt:    getEnv("DAILY_SALT", "local_dev_salt"),
		Puzzle: puzzle.Config{
			Letters:       envInt("PUZZLE_LETTERS", def.Letters),
			MinWordLength: envInt("PUZZLE_MIN_WORD", def.MinWordLength),
			MinFormable:   envInt("PUZZLE_MIN_FORMABLE", def.MinFormable),
			MaxFormable:   envInt("PUZZLE_MAX_FORMABLE", def.MaxFormable),
			MaxAttempts:   envInt("PUZZLE_MAX_ATTEMPTS", def.MaxAttempts),
			AllowRepeats:  envBool("PUZZLE_ALLOW_REPEATS", def.AllowRepeats),
		},
	}
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// lookupEnv is like getEnv but keeps an explicitly empty value.
func lookupEnv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Str("key", k).Str("value", v).Msg("not an integer; using default")
		return def
	}
	return n
}

func envBool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Warn().Str("key", k).Str("value", v).Msg("not a boolean; using default")
		return def
	}
	return b
}
