package cli

import (
	"io"

	"github.com/harvestcx/harvestcx/internal/config"
	"github.com/harvestcx/harvestcx/internal/contextdump"
	"github.com/harvestcx/harvestcx/internal/ruleset"
)

// buildRequest turns the resolved global flags into a contextdump.Request,
// loading the override rules file (if any) and resolving the size limit
// through config.ResolveSizeLimit.
func buildRequest(fv *config.FlagValues, listOnly, debugExplain bool) (contextdump.Request, error) {
	limit, err := config.ResolveSizeLimit(fv.SizeLimit)
	if err != nil {
		return contextdump.Request{}, err
	}

	var overrideRules []string
	if fv.OverrideRulesFile != "" {
		lines, err := ruleset.LoadRuleFile(fv.OverrideRulesFile)
		if err != nil {
			return contextdump.Request{}, err
		}
		overrideRules = lines
	}

	return contextdump.Request{
		ProjectRoot:    fv.ProjectRoot,
		Targets:        fv.Targets,
		OverrideRules:  overrideRules,
		ListOnly:       listOnly,
		SizeLimitBytes: limit,
		DebugExplain:   debugExplain,
		Cancelled:      func() bool { return false },
	}, nil
}

func writeResult(w io.Writer, text string) error {
	_, err := io.WriteString(w, text)
	return err
}
