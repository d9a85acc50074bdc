// Package tokenbudget estimates the token cost of a finished context dump.
// It is purely advisory: the orchestrator enforces the byte-based aggregate
// size budget (internal/contextdump), and this package runs only after a
// dump has already succeeded, to report an estimated cl100k_base token count
// for the explain command and the MCP dump_stats tool.
package tokenbudget

import (
	"fmt"

	tiktoken "github.com/pkoukk/tiktoken-go"
)

// EncodingName is the BPE encoding harvestcx reports token counts in.
const EncodingName = "cl100k_base"

// Estimator counts tokens in a text using a cached tiktoken BPE encoding.
type Estimator struct {
	enc *tiktoken.Tiktoken
}

// NewEstimator loads the cl100k_base encoding once. The encoding is cached
// on disk (or via TIKTOKEN_CACHE_DIR) by tiktoken-go after the first call.
func NewEstimator() (*Estimator, error) {
	enc, err := tiktoken.GetEncoding(EncodingName)
	if err != nil {
		return nil, fmt.Errorf("loading tiktoken encoding %q: %w", EncodingName, err)
	}
	return &Estimator{enc: enc}, nil
}

// Count returns the number of cl100k_base tokens in text. Returns 0 for
// empty text. Safe for concurrent use.
func (e *Estimator) Count(text string) int {
	if text == "" {
		return 0
	}
	return len(e.enc.Encode(text, nil, nil))
}
