package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/robalobadob/letterpuzzle/internal/puzzle"
)

const usage = `commands:
new     - start a new puzzle
letters - show the puzzle letters
found   - list the words you have found
score   - show your score
giveup  - reveal the remaining words
help    - show this message
quit    - exit
anything else is submitted as a word
`

// shell holds one player's state between input lines.
type shell struct {
	gen  *puzzle.Generator
	sess *puzzle.Session
	out  io.Writer
}

func newShell(dict puzzle.Dictionary, cfg puzzle.Config, out io.Writer) (*shell, error) {
	sh := &shell{out: out}
	gen, err := puzzle.NewGenerator(dict, cfg, puzzle.WithReadyHook(func(s *puzzle.Session) {
		fmt.Fprintf(out, "Puzzle ready: %s (%d words to find)\n", spaced(s.Letters()), len(s.Remaining()))
	}))
	if err != nil {
		return nil, err
	}
	sh.gen = gen
	return sh, nil
}

// exec runs one input line and reports whether the shell should exit.
func (sh *shell) exec(line string) bool {
	cmd := strings.TrimSpace(line)
	switch cmd {
	case "":
		return false
	case "quit", "exit":
		return true
	case "help":
		io.WriteString(sh.out, usage)
		return false
	case "new":
		sh.sess = sh.gen.Generate()
		return false
	}

	if sh.sess == nil {
		io.WriteString(sh.out, "no puzzle; type new\n")
		return false
	}
	switch cmd {
	case "letters":
		fmt.Fprintln(sh.out, spaced(sh.sess.Letters()))
	case "found":
		fmt.Fprintln(sh.out, strings.Join(sh.sess.Found(), " "))
	case "score":
		fmt.Fprintf(sh.out, "score: %d\n", sh.sess.Score())
	case "giveup":
		fmt.Fprintf(sh.out, "remaining: %s\n", strings.Join(sh.sess.Remaining(), " "))
	default:
		switch sh.sess.Submit(cmd) {
		case puzzle.OutcomeAccepted:
			fmt.Fprintf(sh.out, "yes! score: %d\n", sh.sess.Score())
		case puzzle.OutcomeRepeated:
			fmt.Fprintf(sh.out, "already found %q\n", cmd)
		default:
			fmt.Fprintf(sh.out, "%q is not in the puzzle\n", cmd)
		}
	}
	return false
}

// spaced renders letters as "a b c".
func spaced(s string) string {
	return strings.Join(strings.Split(s, ""), " ")
}
