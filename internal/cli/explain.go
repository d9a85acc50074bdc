package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harvestcx/harvestcx/internal/contextdump"
	"github.com/harvestcx/harvestcx/internal/tokenbudget"
)

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Show why each visited path was included or excluded, plus a token estimate",
	Long: `explain runs the same walk a dump would, but instead of printing file
contents it renders a table of every classification decision made along the
way, and an estimated cl100k_base token count for the resulting dump.`,
	RunE: runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)
}

func runExplain(cmd *cobra.Command, args []string) error {
	fv := GlobalFlags()
	req, err := buildRequest(fv, false, true)
	if err != nil {
		return err
	}

	result, err := contextdump.ReadContext(cmd.Context(), req)
	if err != nil {
		return renderDumpError(err)
	}

	out := cmd.OutOrStdout()
	if result.Explain != nil {
		renderExplainTrace(out, result.Explain)
	}

	estimator, err := tokenbudget.NewEstimator()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "token estimate unavailable: %v\n", err)
		return nil
	}
	tokens := estimator.Count(result.Text)
	fmt.Fprintln(out, summaryStyle.Render(fmt.Sprintf("estimated tokens (%s): %d", tokenbudget.EncodingName, tokens)))

	return nil
}
