package utils

import (
	"archive/zip"
	"bytes"
	"errors"
	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"
	"io"
	"os"
	"path/filepath"
	"testing"
)

var image = []byte{0x3E, 0x05, 0xC6, 0x03}

func compress(t *testing.T, ext string) []byte {
	t.Helper()
	var buf bytes.Buffer
	var w io.WriteCloser
	var err error
	switch ext {
	case ".gz":
		w = gzip.NewWriter(&buf)
	case ".xz":
		w, err = xz.NewWriter(&buf)
	case ".zst":
		w, err = zstd.NewWriter(&buf)
	case ".lz4":
		w = lz4.NewWriter(&buf)
	case ".br":
		w = brotli.NewWriter(&buf)
	case ".zip":
		z := zip.NewWriter(&buf)
		f, err := z.Create("simple_add.gb")
		if err != nil {
			t.Fatal(err)
		}
		if _, err := f.Write(image); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
		return buf.Bytes()
	default:
		return image
	}
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write(image); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	for _, ext := range []string{".gb", ".bin", "", ".gz", ".xz", ".zst", ".lz4", ".br", ".zip"} {
		t.Run("ext"+ext, func(t *testing.T) {
			path := filepath.Join(dir, "image"+ext)
			if err := os.WriteFile(path, compress(t, ext), 0644); err != nil {
				t.Fatal(err)
			}
			got, err := LoadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(got, image) {
				t.Errorf("expected % X, got % X", image, got)
			}
		})
	}

	t.Run("missing", func(t *testing.T) {
		if _, err := LoadFile(filepath.Join(dir, "missing.gb")); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected os.ErrNotExist, got %v", err)
		}
	})
	t.Run("corrupt", func(t *testing.T) {
		path := filepath.Join(dir, "corrupt.gz")
		if err := os.WriteFile(path, image, 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadFile(path); err == nil {
			t.Error("expected an error")
		}
	})
	t.Run("empty zip", func(t *testing.T) {
		var buf bytes.Buffer
		if err := zip.NewWriter(&buf).Close(); err != nil {
			t.Fatal(err)
		}
		if _, err := Decompress(".zip", buf.Bytes()); !errors.Is(err, ErrEmptyArchive) {
			t.Errorf("expected ErrEmptyArchive, got %v", err)
		}
	})
}

func TestBytes(t *testing.T) {
	if v := BytesToUint16(0x12, 0x34); v != 0x1234 {
		t.Errorf("expected 0x1234, got 0x%04X", v)
	}
	if upper, lower := Uint16ToBytes(0xFAF0); upper != 0xFA || lower != 0xF0 {
		t.Errorf("expected 0xFA 0xF0, got 0x%02X 0x%02X", upper, lower)
	}
}
