package ruleset

import "testing"

func TestPatternMatchBasic(t *testing.T) {
	cases := []struct {
		pattern string
		path    string
		isDir   bool
		want    bool
	}{
		{"*.log", "a.log", false, true},
		{"*.log", "src/a.log", false, true},
		{"*.log", "a.logx", false, false},
		{"/a.log", "a.log", false, true},
		{"/a.log", "src/a.log", false, false},
		{"build/", "build", true, true},
		{"build/", "build", false, false},
		{"build/", "src/build", true, true},
		{"src/*.go", "src/main.go", false, true},
		{"src/*.go", "a/src/main.go", false, false},
		{".git/", ".git", true, true},
		{"!important.log", "important.log", false, true},
	}

	for _, tc := range cases {
		p := ParsePattern(tc.pattern)
		got := p.Match(tc.path, tc.isDir)
		if got != tc.want {
			t.Errorf("pattern %q path %q isDir=%v: got %v, want %v", tc.pattern, tc.path, tc.isDir, got, tc.want)
		}
	}
}

func TestParsePatternNegationAndAnchoring(t *testing.T) {
	p := ParsePattern("!*.log")
	if !p.Negated {
		t.Error("expected Negated")
	}
	if p.Anchored {
		t.Error("expected unanchored")
	}

	p = ParsePattern("\\!weird")
	if p.Negated {
		t.Error("escaped ! must not be treated as negation")
	}

	p = ParsePattern("/root/only")
	if !p.Anchored {
		t.Error("leading slash must anchor")
	}

	p = ParsePattern("nested/path")
	if !p.Anchored {
		t.Error("internal slash must anchor")
	}

	p = ParsePattern("flat")
	if p.Anchored {
		t.Error("single segment must not anchor")
	}

	p = ParsePattern("dironly/")
	if !p.DirOnly {
		t.Error("trailing slash must set DirOnly")
	}
}
