package inputs_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/inputs"
)

func TestFileName(t *testing.T) {
	assert.Equal(t, "day07.txt", inputs.FileName(7))
	assert.Equal(t, "day20.txt", inputs.FileName(20))
}

func TestLoad_Order(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "day01.txt"), []byte("from dir\r\n"), 0o644))
	explicit := filepath.Join(dir, "mine.txt")
	require.NoError(t, os.WriteFile(explicit, []byte("explicit"), 0o644))

	l := &inputs.Locator{
		Dir: dir,
		Embedded: fstest.MapFS{
			"day01.txt": {Data: []byte("embedded one")},
			"day02.txt": {Data: []byte("embedded two")},
		},
		In: strings.NewReader("piped\r\n"),
	}

	text, origin, err := l.Load(1, explicit)
	require.NoError(t, err)
	assert.Equal(t, "explicit", text)
	assert.Equal(t, explicit, origin)

	text, _, err = l.Load(1, inputs.Stdin)
	require.NoError(t, err)
	assert.Equal(t, "piped\n", text)

	text, origin, err = l.Load(1, "")
	require.NoError(t, err)
	assert.Equal(t, "from dir\n", text)
	assert.Equal(t, filepath.Join(dir, "day01.txt"), origin)

	text, origin, err = l.Load(2, "")
	require.NoError(t, err)
	assert.Equal(t, "embedded two", text)
	assert.Equal(t, "embedded:day02.txt", origin)

	_, _, err = l.Load(3, "")
	assert.ErrorIs(t, err, inputs.ErrNoInput)
}

func TestLoad_MissingExplicit(t *testing.T) {
	l := inputs.New("")
	_, _, err := l.Load(1, filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_ZeroLocator(t *testing.T) {
	var l inputs.Locator
	_, _, err := l.Load(1, "")
	assert.ErrorIs(t, err, inputs.ErrNoInput)
	_, _, err = l.Load(1, inputs.Stdin)
	assert.ErrorIs(t, err, inputs.ErrNoInput)
}
