package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rom = []byte{0x00, 0xC3, 0x50, 0x01, 0xCE, 0xED}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("plain", func(t *testing.T) {
		path := filepath.Join(dir, "test.gb")
		require.NoError(t, os.WriteFile(path, rom, 0644))

		data, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, rom, data)
	})
	t.Run("gzip", func(t *testing.T) {
		var buf bytes.Buffer
		w := gzip.NewWriter(&buf)
		_, err := w.Write(rom)
		require.NoError(t, err)
		require.NoError(t, w.Close())

		path := filepath.Join(dir, "test.gb.gz")
		require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))

		data, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, rom, data)
	})
	t.Run("zip", func(t *testing.T) {
		var buf bytes.Buffer
		w := zip.NewWriter(&buf)
		f, err := w.Create("test.gb")
		require.NoError(t, err)
		_, err = f.Write(rom)
		require.NoError(t, err)
		require.NoError(t, w.Close())

		path := filepath.Join(dir, "test.zip")
		require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))

		data, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, rom, data)
	})
	t.Run("empty zip", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, zip.NewWriter(&buf).Close())

		path := filepath.Join(dir, "empty.zip")
		require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))

		_, err := LoadFile(path)
		assert.ErrorIs(t, err, ErrEmptyArchive)
	})
	t.Run("corrupt 7z", func(t *testing.T) {
		path := filepath.Join(dir, "test.7z")
		require.NoError(t, os.WriteFile(path, rom, 0644))

		_, err := LoadFile(path)
		assert.Error(t, err)
	})
	t.Run("missing", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(dir, "missing.gb"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestBytes(t *testing.T) {
	assert.Equal(t, uint16(0xAAFF), BytesToUint16(0xAA, 0xFF))
	upper, lower := Uint16ToBytes(0xBBCC)
	assert.Equal(t, uint8(0xBB), upper)
	assert.Equal(t, uint8(0xCC), lower)
}
