// Package inputs finds the text a solver runs on.
//
// Lookup order for a day:
//
//  1. an explicit path, where "-" means standard input;
//  2. dayNN.txt in the configured directory;
//  3. dayNN.txt embedded from inputs/data at build time.
//
// Returned text has carriage returns removed.
package inputs

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoInput is returned when no source holds an input for the day.
var ErrNoInput = errors.New("inputs: no input found")

//go:embed data
var embedded embed.FS

// Stdin is the explicit path that selects standard input.
const Stdin = "-"

// Locator resolves inputs. The zero value only consults explicit paths and
// nothing else; use New for the full lookup order.
type Locator struct {
	// Dir is searched for dayNN.txt. Empty disables the directory lookup.
	Dir string
	// Embedded is searched last. Nil disables it.
	Embedded fs.FS
	// In backs the "-" path.
	In io.Reader
}

// New returns a Locator over dir, the embedded inputs and os.Stdin.
func New(dir string) *Locator {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err)
	}

	return &Locator{Dir: dir, Embedded: sub, In: os.Stdin}
}

// FileName returns the conventional file name for day, e.g. "day07.txt".
func FileName(day int) string {
	return fmt.Sprintf("day%02d.txt", day)
}

// Load returns the input for day and a description of where it came from.
// A non-empty path bypasses every other source.
func (l *Locator) Load(day int, path string) (text, origin string, err error) {
	switch {
	case path == Stdin:
		if l.In == nil {
			return "", "", fmt.Errorf("%w: standard input unavailable", ErrNoInput)
		}
		data, err := io.ReadAll(l.In)
		if err != nil {
			return "", "", fmt.Errorf("inputs: reading stdin: %w", err)
		}
		return Normalize(string(data)), "stdin", nil
	case path != "":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", "", fmt.Errorf("inputs: %w", err)
		}
		return Normalize(string(data)), path, nil
	}

	name := FileName(day)
	if l.Dir != "" {
		p := filepath.Join(l.Dir, name)
		data, err := os.ReadFile(p)
		switch {
		case err == nil:
			return Normalize(string(data)), p, nil
		case !errors.Is(err, fs.ErrNotExist):
			return "", "", fmt.Errorf("inputs: %w", err)
		}
	}
	if l.Embedded != nil {
		data, err := fs.ReadFile(l.Embedded, name)
		if err == nil {
			return Normalize(string(data)), "embedded:" + name, nil
		}
	}

	return "", "", fmt.Errorf("%w: day %d (%s)", ErrNoInput, day, name)
}

// Normalize drops carriage returns so CRLF files parse like LF ones.
func Normalize(s string) string {
	return strings.ReplaceAll(s, "\r", "")
}
