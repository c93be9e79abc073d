// Package assets ships the built-in word list used when no WORDS_FILE is configured.
package assets

import (
	"embed"
	"io"
)

//go:embed wordlist.txt
var FS embed.FS

// WordlistName is the embedded file holding one word per line.
const WordlistName = "wordlist.txt"

// OpenWordlist opens the embedded word list. Callers must close it.
func OpenWordlist() (io.ReadCloser, error) {
	return FS.Open(WordlistName)
}
