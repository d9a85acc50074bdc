package ruleset

// SourceKind tags where a RuleLayer's patterns came from.
type SourceKind int

const (
	// SourceDefaults identifies the built-in exclusion layer.
	SourceDefaults SourceKind = iota
	// SourceGitignore identifies a discovered .gitignore file.
	SourceGitignore
	// SourceContextfile identifies a discovered .contextfiles file.
	SourceContextfile
	// SourceOverride identifies the caller-supplied override layer.
	SourceOverride
)

func (k SourceKind) String() string {
	switch k {
	case SourceDefaults:
		return "defaults"
	case SourceGitignore:
		return "gitignore"
	case SourceContextfile:
		return "contextfile"
	case SourceOverride:
		return "override"
	default:
		return "unknown"
	}
}

// RuleSource records the origin of a RuleLayer: its kind and, when
// applicable, the directory (relative to the walk target, slash-separated,
// "" for the walk target itself) at which it was discovered. Non-anchored
// patterns within the layer resolve relative to this directory.
type RuleSource struct {
	Kind SourceKind
	Dir  string
}

// RuleLayer is an ordered sequence of Patterns drawn from one RuleSource,
// anchored at RuleSource.Dir. Layer order and pattern order within a layer
// are both preserved; EffectiveSpec.Classify depends on both for its
// last-match-wins semantics.
type RuleLayer struct {
	Source   RuleSource
	Patterns []Pattern
}

// NewRuleLayer compiles raw pattern lines (already filtered of comments and
// blank lines by the Rule Loader) into a RuleLayer anchored at dir.
func NewRuleLayer(kind SourceKind, dir string, rawPatterns []string) RuleLayer {
	patterns := make([]Pattern, 0, len(rawPatterns))
	for _, raw := range rawPatterns {
		patterns = append(patterns, ParsePattern(raw))
	}
	return RuleLayer{
		Source:   RuleSource{Kind: kind, Dir: dir},
		Patterns: patterns,
	}
}
