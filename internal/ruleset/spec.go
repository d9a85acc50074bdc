package ruleset

import "strings"

// Classification is the three-valued verdict EffectiveSpec.Classify returns
// for a candidate path.
type Classification int

const (
	// Unmatched means no pattern in any composed layer matched the path.
	// The Context Walker treats Unmatched as included, subject to whatever
	// the Defaults layer itself excludes.
	Unmatched Classification = iota
	// Included means the last matching pattern was a negation.
	Included
	// Excluded means the last matching pattern was a plain (non-negated)
	// exclusion.
	Excluded
)

func (c Classification) String() string {
	switch c {
	case Included:
		return "Included"
	case Excluded:
		return "Excluded"
	default:
		return "Unmatched"
	}
}

// EffectiveSpec is the compiled matcher for one directory visit, composed of
// an ordered concatenation of RuleLayers. The decision for any path is
// determined by the last matching Pattern across all layers in composition
// order; negation flips the decision.
type EffectiveSpec struct {
	layers []RuleLayer
}

// Compile builds an EffectiveSpec from an ordered list of RuleLayers. Layer
// order must already reflect the desired composition order (see
// NewDefaultsLayer, DiscoverGitignore / DiscoverContextfile and
// NewOverrideLayer); Compile does not reorder them.
func Compile(layers []RuleLayer) *EffectiveSpec {
	// Defensive copy: callers build the stack incrementally per directory
	// and must not have their slice backing array shared with ours.
	cp := make([]RuleLayer, len(layers))
	copy(cp, layers)
	return &EffectiveSpec{layers: cp}
}

// Classify reports whether relPath (slash-separated, relative to the walk
// target the layers were anchored under) is Included, Excluded, or
// Unmatched. isDir indicates whether relPath denotes a directory candidate.
func (s *EffectiveSpec) Classify(relPath string, isDir bool) Classification {
	return s.ClassifyExplain(relPath, isDir).Classification
}

// MatchInfo is ClassifyExplain's result: the classification plus which
// layer and pattern produced the last match, for debug_explain rendering.
// Source is the zero SourceKind and Pattern is empty when Classification is
// Unmatched.
type MatchInfo struct {
	Classification Classification
	Source         RuleSource
	Pattern        string
}

// ClassifyExplain is Classify plus the provenance of the decision. The
// Context Walker calls it for every decision; Classify is a thin wrapper
// that discards the provenance.
func (s *EffectiveSpec) ClassifyExplain(relPath string, isDir bool) MatchInfo {
	relPath = strings.TrimPrefix(relPath, "./")

	var info MatchInfo
	matched := false
	lastNegated := false

	for _, layer := range s.layers {
		local, ok := localize(relPath, layer.Source.Dir)
		if !ok {
			continue
		}
		for _, p := range layer.Patterns {
			if p.Match(local, isDir) {
				matched = true
				lastNegated = p.Negated
				info.Source = layer.Source
				info.Pattern = p.Raw
			}
		}
	}

	if !matched {
		info.Classification = Unmatched
		return info
	}
	if lastNegated {
		info.Classification = Included
	} else {
		info.Classification = Excluded
	}
	return info
}

// localize returns relPath expressed relative to a layer's anchor directory
// (anchorDir, itself relative to the walk target, "" meaning the walk
// target), and whether relPath falls under that anchor at all. A layer
// anchored below the walk target never applies to paths outside its own
// subtree, which is what keeps a subdirectory's rule file from affecting
// anything above it.
func localize(relPath, anchorDir string) (string, bool) {
	if anchorDir == "" {
		return relPath, true
	}
	prefix := anchorDir + "/"
	if !strings.HasPrefix(relPath, prefix) {
		return "", false
	}
	return strings.TrimPrefix(relPath, prefix), true
}
