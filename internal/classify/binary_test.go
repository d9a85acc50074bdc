package classify

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestIsBinaryTextFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "readme.txt", []byte("hello, world\nthis is plain text\n"))
	if IsBinary(path) {
		t.Error("expected text file to be classified as text")
	}
}

func TestIsBinaryExtensionGuess(t *testing.T) {
	dir := t.TempDir()
	png := append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0x01}, 32)...)
	path := writeFile(t, dir, "icon.png", png)
	if !IsBinary(path) {
		t.Error("expected .png to be classified as binary via extension guess")
	}
}

func TestIsBinaryNulByte(t *testing.T) {
	dir := t.TempDir()
	data := append([]byte("some header"), 0x00, 0x01, 0x02)
	path := writeFile(t, dir, "data.bin", data)
	if !IsBinary(path) {
		t.Error("expected NUL byte to trigger binary classification")
	}
}

func TestIsBinaryLowPrintableRatio(t *testing.T) {
	dir := t.TempDir()
	data := bytes.Repeat([]byte{0x01, 0x02, 0x03, 0x04}, 64)
	path := writeFile(t, dir, "garbage.dat", data)
	if !IsBinary(path) {
		t.Error("expected low printable ratio to trigger binary classification")
	}
}

func TestIsBinaryEmptyFileIsText(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "empty.go", nil)
	if IsBinary(path) {
		t.Error("expected empty file to be classified as text")
	}
}

func TestIsBinaryUnreadableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.go")
	if !IsBinary(path) {
		t.Error("expected unreadable path to be classified as binary")
	}
}
