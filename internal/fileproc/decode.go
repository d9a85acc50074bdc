// Package fileproc implements the decode-and-emit stage of the context dump:
// given a file that has already passed rule classification and binary
// detection, it reads the bytes, decodes them to UTF-8 text, and formats
// either a content block or a bare listing line.
package fileproc

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Decode runs the UTF-8 -> CP-1252 -> Latin-1 cascade against raw,
// returning the first encoding that decodes without replacement. Latin-1
// always succeeds (it maps every byte value to a rune), so it has to run
// last or CP-1252 would never get a chance: CP-1252 reinterprets the
// 0x80-0x9F range that Latin-1 would otherwise map to C1 control
// characters, so trying it first recovers more of the original text.
func Decode(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}

	if s, ok := decodeCP1252(raw); ok {
		return s
	}

	s, _ := decodeLatin1(raw)
	return s
}

func decodeLatin1(raw []byte) (string, bool) {
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return "", false
	}
	return string(out), true
}

func decodeCP1252(raw []byte) (string, bool) {
	out, err := charmap.Windows1252.NewDecoder().Bytes(raw)
	if err != nil {
		return "", false
	}
	if !utf8.Valid(out) {
		return "", false
	}
	return string(out), true
}

// FormatBlock renders one content-mode block: an opening fence naming
// relPath, the decoded content, and a closing fence.
func FormatBlock(relPath, content string) string {
	return fmt.Sprintf("```path=%s\n%s\n```", relPath, content)
}
