package ruleset

import "testing"

func classify(t *testing.T, spec *EffectiveSpec, path string, isDir bool) Classification {
	t.Helper()
	return spec.Classify(path, isDir)
}

func TestClassifyDefaultsOnly(t *testing.T) {
	spec := Compile([]RuleLayer{NewDefaultsLayer()})

	if got := classify(t, spec, "a.py", false); got != Unmatched {
		t.Errorf("a.py: got %v, want Unmatched", got)
	}
	if got := classify(t, spec, ".git", true); got != Excluded {
		t.Errorf(".git: got %v, want Excluded", got)
	}
	if got := classify(t, spec, "node_modules", true); got != Excluded {
		t.Errorf("node_modules: got %v, want Excluded", got)
	}
}

func TestClassifyContextfileAnchoredUnderSubdir(t *testing.T) {
	// src/.contextfiles contains ".git/" -- it anchors to src/, so it must
	// not un-exclude the root .git/.
	defaults := NewDefaultsLayer()
	srcContextfile := NewRuleLayer(SourceContextfile, "src", []string{".git/"})

	spec := Compile([]RuleLayer{defaults, srcContextfile})

	if got := classify(t, spec, ".git", true); got != Excluded {
		t.Errorf("root .git: got %v, want Excluded", got)
	}
	if got := classify(t, spec, "src/app.py", false); got != Unmatched {
		t.Errorf("src/app.py: got %v, want Unmatched", got)
	}
}

func TestClassifyNegationPrecedence(t *testing.T) {
	// "*.log" re-excludes everything the defaults layer already excludes
	// (a no-op, since this is the same rule); "!important.log" then carves
	// out the one exception -- see DESIGN.md's negation-ordering note.
	root := NewRuleLayer(SourceContextfile, "", []string{"*.log", "!important.log"})
	spec := Compile([]RuleLayer{NewDefaultsLayer(), root})

	if got := classify(t, spec, "a.log", false); got != Excluded {
		t.Errorf("a.log: got %v, want Excluded", got)
	}
	if got := classify(t, spec, "important.log", false); got != Included {
		t.Errorf("important.log: got %v, want Included", got)
	}
}

func TestClassifyLastMatchWinsAcrossLayers(t *testing.T) {
	l1 := NewRuleLayer(SourceGitignore, "", []string{"*.tmp"})
	l2 := NewRuleLayer(SourceContextfile, "", []string{"!keep.tmp"})
	spec := Compile([]RuleLayer{l1, l2})

	if got := classify(t, spec, "a.tmp", false); got != Excluded {
		t.Errorf("a.tmp: got %v, want Excluded", got)
	}
	if got := classify(t, spec, "keep.tmp", false); got != Included {
		t.Errorf("keep.tmp: got %v, want Included", got)
	}
}

func TestClassifyOverrideLayerAlone(t *testing.T) {
	spec := Compile([]RuleLayer{NewOverrideLayer([]string{"*.tmp"})})

	if got := classify(t, spec, ".git", true); got != Unmatched {
		t.Errorf(".git under override: got %v, want Unmatched (defaults do not apply)", got)
	}
	if got := classify(t, spec, "b.tmp", false); got != Excluded {
		t.Errorf("b.tmp: got %v, want Excluded", got)
	}
}
