package cli

import (
	"github.com/spf13/cobra"

	"github.com/harvestcx/harvestcx/internal/contextdump"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the project-relative paths a dump would include, one per line",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	fv := GlobalFlags()
	req, err := buildRequest(fv, true, fv.DebugExplain)
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
