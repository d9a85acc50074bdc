package ruleset

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// LoadError is returned only when an explicitly named rule file cannot be
// opened or decoded as UTF-8. Missing .gitignore/.contextfiles discovered
// during a walk are never errors; callers simply get zero patterns for them
// (see LoadLinesFromFile).
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("reading rule file %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// LoadLines strips comment lines (beginning with "#") and blank/whitespace-
// only lines from an in-memory list of rule lines, preserving the surrounding
// whitespace inside any retained pattern and the original relative order.
func LoadLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if isCommentOrBlank(line) {
			continue
		}
		out = append(out, line)
	}
	return out
}

// LoadLinesFromFile reads a rule file (a .gitignore or .contextfiles)
// discovered during a walk and returns its filtered
// pattern lines. A missing file is not an error: it silently yields zero
// patterns, per spec. A file that exists but cannot be opened for another
// reason, or is not valid UTF-8, also yields zero patterns here -- this
// variant is for walk-discovered files, where such failures are never fatal.
func LoadLinesFromFile(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	if !utf8.Valid(data) {
		return nil
	}
	return LoadLines(splitLines(string(data)))
}

// LoadRuleFile reads an explicitly named rule file (the override rules
// source) and returns its filtered pattern lines. Unlike LoadLinesFromFile,
// failure to open the file or invalid UTF-8 content is fatal: it is reported
// as a *LoadError so the caller can surface it as a rule-read error.
func LoadRuleFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("not valid UTF-8")}
	}
	return LoadLines(splitLines(string(data))), nil
}

func isCommentOrBlank(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "" || strings.HasPrefix(trimmed, "#")
}

// splitLines splits on \n and strips a trailing \r from each line, so that
// CRLF-terminated rule files are handled the same as LF-terminated ones.
func splitLines(data string) []string {
	raw := strings.Split(data, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		lines = append(lines, strings.TrimSuffix(l, "\r"))
	}
	return lines
}
