package contextdump

import "github.com/harvestcx/harvestcx/internal/ruleset"

// ExplainEntry records why one path received its final classification
// during an explain run: the winning rule source and the raw pattern text
// that produced the last match in the last-match-wins composition.
type ExplainEntry struct {
	// Path is project-root-relative, forward-slash separated.
	Path           string
	Decision       ruleset.Classification
	Source         ruleset.SourceKind
	SourceDir      string
	MatchedPattern string
}

// ExplainTrace accumulates one ExplainEntry per path the walker evaluated
// against a rule set, in visitation order, across every target of one
// ReadContext call.
type ExplainTrace struct {
	Entries []ExplainEntry
}

func (t *ExplainTrace) record(path string, info ruleset.MatchInfo) {
	t.Entries = append(t.Entries, ExplainEntry{
		Path:           path,
		Decision:       info.Classification,
		Source:         info.Source.Kind,
		SourceDir:      info.Source.Dir,
		MatchedPattern: info.Pattern,
	})
}
