package config

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// FlagValues collects the CLI-facing knobs harvestcx's core API needs. This
// struct is populated by BindFlags and read after Cobra parses the command
// line.
type FlagValues struct {
	ProjectRoot       string
	Targets           []string
	OverrideRulesFile string
	ListOnly          bool
	SizeLimit         string
	DebugExplain      bool
	Verbose           bool
	Quiet             bool
}

// BindFlags registers harvestcx's flags on cmd and returns the FlagValues
// pointer that will hold their parsed values once Cobra has run.
func BindFlags(cmd *cobra.Command) *FlagValues {
	fv := &FlagValues{}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&fv.ProjectRoot, "root", "r", ".", "project root directory")
	pf.StringArrayVarP(&fv.Targets, "target", "t", nil, "target file or directory to include (repeatable, defaults to root)")
	pf.StringVar(&fv.OverrideRulesFile, "override-rules", "", "path to a rule file that replaces all .gitignore/.contextfiles discovery")
	pf.BoolVarP(&fv.ListOnly, "list-only", "l", false, "emit a path listing instead of file contents")
	pf.StringVar(&fv.SizeLimit, "size-limit", "", "aggregate size budget, e.g. 100MB (defaults to 100MiB)")
	pf.BoolVar(&fv.DebugExplain, "debug-explain", false, "include a classification trace for every visited path")
	pf.BoolVarP(&fv.Verbose, "verbose", "v", false, "enable debug logging")
	pf.BoolVarP(&fv.Quiet, "quiet", "q", false, "suppress all output except errors")

	return fv
}

// ValidateFlags checks the parsed flag values for correctness and mutual
// exclusion, and applies environment variable fallbacks. Call from
// PersistentPreRunE after Cobra has parsed the flags.
func ValidateFlags(fv *FlagValues, cmd *cobra.Command) error {
	applyEnvOverrides(fv, cmd)

	if fv.Verbose && fv.Quiet {
		return fmt.Errorf("--verbose and --quiet are mutually exclusive")
	}

	info, err := os.Stat(fv.ProjectRoot)
	if err != nil {
		return fmt.Errorf("--root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("--root: %s is not a directory", fv.ProjectRoot)
	}

	if fv.SizeLimit != "" {
		if _, err := ParseSize(fv.SizeLimit); err != nil {
			return fmt.Errorf("--size-limit: %w", err)
		}
	}

	return nil
}

// applyEnvOverrides applies HARVESTCX_* environment variable fallbacks for
// flags that were not explicitly set on the command line.
func applyEnvOverrides(fv *FlagValues, cmd *cobra.Command) {
	if v := os.Getenv("HARVESTCX_ROOT"); v != "" && !cmd.Flags().Changed("root") {
		fv.ProjectRoot = v
	}
	if v := os.Getenv("HARVESTCX_OVERRIDE_RULES"); v != "" && !cmd.Flags().Changed("override-rules") {
		fv.OverrideRulesFile = v
	}
	if os.Getenv("HARVESTCX_VERBOSE") == "1" && !cmd.Flags().Changed("verbose") {
		fv.Verbose = true
	}
	if os.Getenv("HARVESTCX_QUIET") == "1" && !cmd.Flags().Changed("quiet") {
		fv.Quiet = true
	}
}
