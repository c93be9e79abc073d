// internal/words/words.go
//
// Dictionary loading for the puzzle core.
//
// Responsibilities:
//   - Read a word list (one word per line, UTF-8) into an immutable Dictionary.
//   - Resolve the configured source: a file path (WORDS_FILE, default ./wordlist.txt)
//     or the embedded list from the assets package when the path is empty.
//
// Entries are kept exactly as read: only line terminators are stripped (see
// scanLines for the accepted set). No lowercasing or trimming happens here, so
// mixed-case entries never match the lowercase puzzle letters.

package words

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
)

// DefaultPath is where the word list is looked up when nothing is configured.
const DefaultPath = "./wordlist.txt"

// Dictionary is an ordered, read-only list of words.
type Dictionary struct {
	words []string
	set   map[string]struct{}
}

// New builds a Dictionary from an in-memory list. The slice is copied.
func New(list []string) *Dictionary {
	ws := append([]string(nil), list...)
	return &Dictionary{words: ws, set: toSet(ws)}
}

// maxLine bounds a single entry; longer lines fail with bufio.ErrTooLong.
const maxLine = 16 << 20

// Load reads every line from r, in order.
// Returns an error if reading fails or a line is not valid UTF-8.
func Load(r io.Reader) (*Dictionary, error) {
	var out []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	sc.Split(scanLines)
	line := 0
	for sc.Scan() {
		line++
		w := sc.Text()
		if !utf8.ValidString(w) {
			return nil, fmt.Errorf("line %d: invalid utf-8", line)
		}
		out = append(out, w)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return &Dictionary{words: out, set: toSet(out)}, nil
}

// LoadFile opens path and loads it as a Dictionary.
// Failures are logged and returned; callers treat them as fatal.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("open word list")
		return nil, fmt.Errorf("words: %w", err)
	}
	defer f.Close()

	d, err := Load(f)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("read word list")
		return nil, fmt.Errorf("words: read %s: %w", path, err)
	}
	log.Debug().Str("path", path).Int("words", d.Len()).Msg("word list loaded")
	return d, nil
}

// Open resolves a configured source: an empty path selects the embedded list.
func Open(path string) (*Dictionary, error) {
	if path == "" {
		return Embedded()
	}
	return LoadFile(path)
}

// Words returns a copy of the entries in load order.
func (d *Dictionary) Words() []string {
	return append([]string(nil), d.words...)
}

// Len reports the number of entries, duplicates included.
func (d *Dictionary) Len() int { return len(d.words) }

// Contains reports whether w is an entry (exact match).
func (d *Dictionary) Contains(w string) bool {
	_, ok := d.set[w]
	return ok
}

// scanLines is a bufio.SplitFunc that breaks on every line boundary a text
// file may use: \n, \r\n, bare \r, \v, \f, \x1c-\x1e, U+0085, U+2028
// and U+2029. A final unterminated line is returned; a trailing terminator
// does not produce an empty last entry.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	for i := 0; i < len(data); {
		if !atEOF && !utf8.FullRune(data[i:]) {
			return 0, nil, nil
		}
		r, size := utf8.DecodeRune(data[i:])
		switch r {
		case '\r':
			if i+1 < len(data) {
				if data[i+1] == '\n' {
					return i + 2, data[:i], nil
				}
				return i + 1, data[:i], nil
			}
			if !atEOF {
				return 0, nil, nil // may be the first half of \r\n
			}
			return i + 1, data[:i], nil
		case '\n', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
			return i + size, data[:i], nil
		}
		i += size
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}
