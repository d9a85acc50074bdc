package cli

import (
	"github.com/spf13/cobra"

	"github.com/harvestcx/harvestcx/internal/contextdump"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the filtered context dump for a project to stdout",
	Long: `dump walks the project root and its targets, applies the composed
rule layers, and writes the concatenated file contents to stdout in
` + "```path=...```" + ` blocks.`,
	RunE: runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	fv := GlobalFlags()
	req, err := buildRequest(fv, fv.ListOnly, fv.DebugExplain)
	if err != nil {
		return err
	}

	result, err := contextdump.ReadContext(cmd.Context(), req)
	if err != nil {
		return renderDumpError(err)
	}

	if fv.DebugExplain && result.Explain != nil {
		renderExplainTrace(cmd.OutOrStderr(), result.Explain)
	}

	return writeResult(cmd.OutOrStdout(), result.Text)
}
