// Package ruleset implements the gitignore-style pattern compiler shared by
// every rule source harvestcx understands: built-in defaults, .gitignore,
// .contextfiles, and caller-supplied override rules. It mirrors the wildmatch
// semantics of gitignore (anchoring, negation, directory-only patterns,
// **-globbing) on top of doublestar's segment matcher.
package ruleset

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Pattern is a single compiled gitignore-style rule line.
type Pattern struct {
	// Raw is the original pattern text, unmodified.
	Raw string

	// body is the match expression: Raw with any leading "!", leading "/",
	// and trailing "/" stripped.
	body string

	// Negated is true when Raw begins with an unescaped "!".
	Negated bool

	// DirOnly is true when Raw ends with "/"; the pattern can then only
	// match directory candidates.
	DirOnly bool

	// Anchored is true when the pattern must match from the layer's anchor
	// directory rather than at any depth below it. A pattern is anchored
	// when it has a leading "/", or when it contains a "/" anywhere other
	// than a single trailing position.
	Anchored bool
}

// ParsePattern compiles a single raw pattern line (already stripped of
// comments and surrounding blank lines by the Rule Loader) into a Pattern.
func ParsePattern(raw string) Pattern {
	p := Pattern{Raw: raw}

	body := raw
	switch {
	case strings.HasPrefix(body, "\\!"):
		// A literal "!" at position 0, escaped.
		body = "!" + body[2:]
	case strings.HasPrefix(body, "!"):
		p.Negated = true
		body = body[1:]
	}

	if strings.HasSuffix(body, "/") && len(body) > 1 {
		p.DirOnly = true
		body = strings.TrimSuffix(body, "/")
	}

	if strings.HasPrefix(body, "/") {
		p.Anchored = true
		body = strings.TrimPrefix(body, "/")
	} else if strings.Contains(body, "/") {
		// An internal (non-trailing) separator anchors the pattern to the
		// layer's directory even without a leading slash, per gitignore.
		p.Anchored = true
	}

	p.body = body
	return p
}

// Match reports whether localPath (slash-separated, relative to this
// pattern's layer anchor directory) matches the pattern. isDir indicates
// whether localPath denotes a directory candidate.
func (p Pattern) Match(localPath string, isDir bool) bool {
	if p.DirOnly && !isDir {
		return false
	}
	if p.body == "" {
		return false
	}

	glob := p.body
	if !p.Anchored {
		glob = "**/" + glob
	}

	matched, err := doublestar.Match(glob, localPath)
	if err != nil {
		return false
	}
	return matched
}
