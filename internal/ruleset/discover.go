package ruleset

import (
	"os"
	"path/filepath"
)

// GitignoreFilename and ContextfileFilename name the two rule-file kinds the
// Context Walker discovers at each directory it visits.
const (
	GitignoreFilename  = ".gitignore"
	ContextfileFilename = ".contextfiles"
)

// DiscoverGitignore looks for a .gitignore file in absDir and, if present,
// compiles it into a RuleLayer anchored at relDir (relDir is the directory's
// path relative to the walk target, "" for the walk target itself). ok is
// false when no .gitignore exists there; that is not an error.
func DiscoverGitignore(absDir, relDir string) (layer RuleLayer, ok bool) {
	return discoverLayer(absDir, relDir, GitignoreFilename, SourceGitignore)
}

// DiscoverContextfile is DiscoverGitignore for .contextfiles.
func DiscoverContextfile(absDir, relDir string) (layer RuleLayer, ok bool) {
	return discoverLayer(absDir, relDir, ContextfileFilename, SourceContextfile)
}

func discoverLayer(absDir, relDir, filename string, kind SourceKind) (RuleLayer, bool) {
	path := filepath.Join(absDir, filename)
	if _, err := os.Stat(path); err != nil {
		return RuleLayer{}, false
	}
	lines := LoadLinesFromFile(path)
	return NewRuleLayer(kind, relDir, lines), true
}

// NewOverrideLayer compiles caller-supplied override rule lines into the
// single Override RuleLayer, anchored at the walk target root ("").
func NewOverrideLayer(rawLines []string) RuleLayer {
	return NewRuleLayer(SourceOverride, "", LoadLines(rawLines))
}
