package ruleset

// DefaultPatterns is the built-in exclusion list applied whenever no
// override rules are active.
var DefaultPatterns = []string{
	// Dotted prefix.
	".*",

	// Version-control metadata directories.
	".git/",
	".hg/",
	".svn/",

	// Editor/IDE metadata.
	".idea/",
	".vscode/",

	// Dependency/output directories.
	"node_modules/",
	"venv/",
	".venv/",
	"__pycache__/",
	"dist/",
	"build/",
	"target/",
	"out/",
	"bin/",
	"obj/",
	"*.egg-info/",

	// Common log/backup file names.
	"*.log",
	"log.*",
	"*.bak",
	"*.tmp",
	"*.temp",
	"*.swp",
	"*~",
}

// NewDefaultsLayer compiles DefaultPatterns into the Defaults RuleLayer,
// anchored at the walk target (dir == "").
func NewDefaultsLayer() RuleLayer {
	return NewRuleLayer(SourceDefaults, "", DefaultPatterns)
}
