// Package classify implements the binary/text cascade that decides whether a
// discovered file is eligible for content emission.
package classify

import (
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"
)

// SniffBytes is the amount read from the start of a file for the NUL-byte
// and printable-ratio stages.
const SniffBytes = 8192

// PrintableRatioThreshold is the minimum fraction of printable-ASCII/
// whitespace bytes in the sniffed chunk for a file to be treated as text.
const PrintableRatioThreshold = 0.85

// IsBinary runs a three-stage cascade against path: an extension/MIME
// guess, then a NUL-byte scan of the first SniffBytes, then a printable-
// ASCII ratio check, stopping at the first decisive stage. A file that
// cannot be opened, or whose sniffed bytes cannot be read, is treated as
// binary, since a read failure can't be classified as safe to emit.
func IsBinary(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return true
	}
	defer f.Close()

	if kind, ok := classifyByExtension(path); ok {
		return !kind
	}

	buf := make([]byte, SniffBytes)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return true
	}
	buf = buf[:n]

	if n == 0 {
		return false
	}

	for _, b := range buf {
		if b == 0 {
			return true
		}
	}

	return printableRatio(buf) < PrintableRatioThreshold
}

// classifyByExtension consults the filename's MIME guess. ok is false when
// the extension is unknown or absent, meaning the caller must fall through
// to the content-sniffing stages. When ok is true, text reports whether the
// guessed type is textual.
func classifyByExtension(path string) (text bool, ok bool) {
	ext := filepath.Ext(path)
	if ext == "" {
		return false, false
	}
	guess := mime.TypeByExtension(ext)
	if guess == "" {
		return false, false
	}
	return strings.HasPrefix(guess, "text/"), true
}

// printableRatio computes the fraction of buf that is printable ASCII
// (0x20-0x7E) or one of tab/LF/CR.
func printableRatio(buf []byte) float64 {
	printable := 0
	for _, b := range buf {
		if (b >= 0x20 && b <= 0x7E) || b == '\t' || b == '\n' || b == '\r' {
			printable++
		}
	}
	return float64(printable) / float64(len(buf))
}
