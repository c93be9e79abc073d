// internal/words/embedded.go
//
// Lazily loaded copy of the built-in word list (assets/wordlist.txt).
// Loaded once via sync.Once and shared; Dictionary is read-only so sharing is safe.

package words

import (
	"fmt"
	"sync"

	"github.com/robalobadob/letterpuzzle/assets"
)

var (
	embeddedOnce sync.Once
	embeddedDict *Dictionary
	embeddedErr  error
)

// loadEmbedded reads the embedded list into embeddedDict.
func loadEmbedded() {
	f, err := assets.OpenWordlist()
	if err != nil {
		embeddedErr = fmt.Errorf("words: embedded: %w", err)
		return
	}
	defer f.Close()
	embeddedDict, embeddedErr = Load(f)
}

// Embedded returns the built-in dictionary.
func Embedded() (*Dictionary, error) {
	embeddedOnce.Do(loadEmbedded)
	return embeddedDict, embeddedErr
}
