package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/harvestcx/harvestcx/internal/contextdump"
)

var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	includedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	excludedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	unmatchedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	summaryStyle   = lipgloss.NewStyle().Bold(true).MarginTop(1)
	errorStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
)

// renderExplainTrace prints one line per classification decision, colored by
// outcome, with the deciding rule source and pattern.
func renderExplainTrace(w io.Writer, trace *contextdump.ExplainTrace) {
	fmt.Fprintln(w, headerStyle.Render("PATH")+"  "+headerStyle.Render("DECISION")+"  "+headerStyle.Render("SOURCE")+"  "+headerStyle.Render("PATTERN"))
	for _, e := range trace.Entries {
		style := unmatchedStyle
		switch e.Decision.String() {
		case "Included":
			style = includedStyle
		case "Excluded":
			style = excludedStyle
		}
		source := e.Source.String()
		if e.SourceDir != "" {
			source = fmt.Sprintf("%s(%s)", source, e.SourceDir)
		}
		fmt.Fprintf(w, "%s  %s  %s  %s\n", e.Path, style.Render(e.Decision.String()), source, e.MatchedPattern)
	}
}

// renderDumpError turns a *contextdump.DumpError into a styled message on
// stderr for oversize diagnostics, and passes the error through unchanged so
// Execute can still compute an exit code from it.
func renderDumpError(err error) error {
	var dumpErr *contextdump.DumpError
	if !errors.As(err, &dumpErr) {
		return err
	}
	if dumpErr.Kind != contextdump.KindOversize || dumpErr.Detail == nil {
		return err
	}

	fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf(
		"context dump exceeded the %d byte limit (observed %d bytes)",
		dumpErr.Detail.LimitBytes, dumpErr.Detail.ObservedBytes,
	)))
	fmt.Fprintln(os.Stderr, headerStyle.Render("largest files seen before abort:"))
	for _, f := range dumpErr.Detail.LargestFiles {
		fmt.Fprintf(os.Stderr, "  %8d  %s\n", f.Size, f.RelPath)
	}

	return err
}
