package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"

	"github.com/robalobadob/letterpuzzle/internal/puzzle"
)

func TestFromEnvDefaults(t *testing.T) {
	is := is.New(t)
	for _, k := range []string{"PORT", "WORDS_FILE", "PUZZLE_LETTERS", "PUZZLE_ALLOW_REPEATS"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	c := FromEnv()
	is.Equal(c.Port, "5175")
	is.Equal(c.WordsFile, "./wordlist.txt")
	is.Equal(c.Puzzle, puzzle.DefaultConfig())
}

func TestFromEnvOverrides(t *testing.T) {
	is := is.New(t)
	t.Setenv("PORT", "9000")
	t.Setenv("WORDS_FILE", "")
	t.Setenv("PUZZLE_LETTERS", "9")
	t.Setenv("PUZZLE_MAX_FORMABLE", "40")
	t.Setenv("PUZZLE_ALLOW_REPEATS", "false")
	t.Setenv("PUZZLE_MAX_ATTEMPTS", "lots")

	c := FromEnv()
	is.Equal(c.Port, "9000")
	is.Equal(c.WordsFile, "") // explicit empty selects the embedded list
	is.Equal(c.Puzzle.Letters, 9)
	is.Equal(c.Puzzle.MaxFormable, 40)
	is.Equal(c.Puzzle.AllowRepeats, false)
	is.Equal(c.Puzzle.MaxAttempts, 10) // invalid value falls back
}

func TestLoadReadsDotEnv(t *testing.T) {
	is := is.New(t)
	t.Setenv("DAILY_SALT", "")
	os.Unsetenv("DAILY_SALT")
	path := filepath.Join(t.TempDir(), ".env")
	is.NoErr(os.WriteFile(path, []byte("DAILY_SALT=from_file\n"), 0o644))

	c := Load(path)
	is.Equal(c.DailySalt, "from_file")
}
