package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Profile is the decoded shape of an optional .harvestcx.toml file in the
// project root directory. Any field left unset in the file keeps its
// FlagValues-derived value; Profile never overrides an explicit CLI flag.
type Profile struct {
	Targets           []string `toml:"targets"`
	OverrideRulesFile string   `toml:"override_rules_file"`
	ListOnly          bool     `toml:"list_only"`
	SizeLimit         string   `toml:"size_limit"`
}

// LoadProfile reads and decodes a .harvestcx.toml file at path. Unknown TOML
// keys produce a slog warning rather than an error, so future schema
// additions don't break older config files. A missing file is not an error:
// callers get a zero-value Profile.
func LoadProfile(path string) (*Profile, error) {
	if _, err := os.Stat(path); err != nil {
		return &Profile{}, nil
	}

	var p Profile
	meta, err := toml.DecodeFile(path, &p)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	warnUndecodedKeys(meta, path)

	return &p, nil
}

// ApplyProfile fills in any FlagValues field left at its zero value with the
// corresponding Profile value. Explicit flags (already non-zero) win.
func ApplyProfile(fv *FlagValues, p *Profile) {
	if len(fv.Targets) == 0 {
		fv.Targets = p.Targets
	}
	if fv.OverrideRulesFile == "" {
		fv.OverrideRulesFile = p.OverrideRulesFile
	}
	if !fv.ListOnly {
		fv.ListOnly = p.ListOnly
	}
	if fv.SizeLimit == "" {
		fv.SizeLimit = p.SizeLimit
	}
}

// warnUndecodedKeys logs a warning for each key in the TOML document that did
// not map to any field in Profile.
func warnUndecodedKeys(meta toml.MetaData, source string) {
	undecoded := meta.Undecoded()
	if len(undecoded) == 0 {
		return
	}

	keys := make([]string, 0, len(undecoded))
	for _, k := range undecoded {
		keys = append(keys, k.String())
	}

	slog.Warn("unknown config keys will be ignored",
		"source", source,
		"keys", strings.Join(keys, ", "),
	)
}
