package words

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/matryer/is"
)

func TestLoadKeepsOrderAndCase(t *testing.T) {
	is := is.New(t)
	d, err := Load(strings.NewReader("cat\r\nCar\n\nart\nart\n"))
	is.NoErr(err)
	is.Equal(d.Words(), []string{"cat", "Car", "", "art", "art"})
	is.Equal(d.Len(), 5)
	is.True(d.Contains("Car"))
	is.True(!d.Contains("car")) // no case folding
}

func TestLoadLineBoundaries(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"lf", "cat\ncar\n", []string{"cat", "car"}},
		{"crlf", "cat\r\ncar\r\n", []string{"cat", "car"}},
		{"bare cr", "cat\rcar\rart", []string{"cat", "car", "art"}},
		{"trailing cr", "cat\r", []string{"cat"}},
		{"cr cr", "cat\r\rcar", []string{"cat", "", "car"}},
		{"vt ff", "cat\vcar\fart", []string{"cat", "car", "art"}},
		{"separators", "a\x1cb\x1dc\x1ed", []string{"a", "b", "c", "d"}},
		{"unicode", "cat\u0085car\u2028art\u2029tar", []string{"cat", "car", "art", "tar"}},
		{"no terminator", "cat", []string{"cat"}},
		{"blank lines", "\n\ncat\n", []string{"", "", "cat"}},
		{"multibyte kept", "café\nnaïve", []string{"café", "naïve"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			is := is.New(t)
			d, err := Load(strings.NewReader(tc.in))
			is.NoErr(err)
			is.Equal(d.Words(), tc.want)
		})
	}
}

func TestLoadSplitsAcrossReads(t *testing.T) {
	is := is.New(t)
	// One byte per Read: \r\n and multibyte separators straddle reads.
	d, err := Load(iotest.OneByteReader(strings.NewReader("cat\r\ncar\u2028art\rtar")))
	is.NoErr(err)
	is.Equal(d.Words(), []string{"cat", "car", "art", "tar"})
}

func TestLoadLongLine(t *testing.T) {
	is := is.New(t)
	long := strings.Repeat("a", 100*1024)
	d, err := Load(strings.NewReader("cat\n" + long + "\ncar\n"))
	is.NoErr(err)
	is.Equal(d.Len(), 3)
	is.Equal(d.Words()[1], long)
}

func TestLoadRejectsInvalidUTF8(t *testing.T) {
	is := is.New(t)
	_, err := Load(strings.NewReader("ok\n\xff\xfe\n"))
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "line 2"))
}

func TestLoadFile(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "wordlist.txt")
	is.NoErr(os.WriteFile(path, []byte("tar\nrat\n"), 0o644))

	d, err := LoadFile(path)
	is.NoErr(err)
	is.Equal(d.Words(), []string{"tar", "rat"})
}

func TestLoadFileMissing(t *testing.T) {
	is := is.New(t)
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.txt"))
	is.True(err != nil)
	is.True(errors.Is(err, fs.ErrNotExist))
}

func TestOpenEmptyPathUsesEmbedded(t *testing.T) {
	is := is.New(t)
	d, err := Open("")
	is.NoErr(err)
	is.True(d.Len() > 1000)
	is.True(d.Contains("cat"))

	again, err := Embedded()
	is.NoErr(err)
	is.True(again == d) // loaded once
}

func TestWordsReturnsCopy(t *testing.T) {
	is := is.New(t)
	d := New([]string{"one", "two"})
	ws := d.Words()
	ws[0] = "changed"
	is.Equal(d.Words()[0], "one")
}
