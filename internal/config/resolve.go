package config

import (
	"fmt"
	"os"

	"github.com/knadh/koanf/providers/confmap"
	koanf "github.com/knadh/koanf/v2"
)

// EnvMaxSizeBytes is the environment variable that overrides the default
// aggregate size budget.
const EnvMaxSizeBytes = "HARVESTCX_MAX_SIZE_BYTES"

// DefaultSizeLimitBytes is the built-in aggregate budget (100 MiB) used when
// neither the environment nor an explicit flag sets one.
const DefaultSizeLimitBytes int64 = 100 * 1024 * 1024

// ResolveSizeLimit resolves the aggregate size budget through three layers,
// highest precedence last: built-in default, HARVESTCX_MAX_SIZE_BYTES
// environment variable, explicit CLI flag.
func ResolveSizeLimit(flagRaw string) (int64, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]any{
		"size_limit_bytes": DefaultSizeLimitBytes,
	}, "."), nil); err != nil {
		return 0, fmt.Errorf("loading default size limit: %w", err)
	}

	if v := os.Getenv(EnvMaxSizeBytes); v != "" {
		n, err := ParseSize(v)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", EnvMaxSizeBytes, err)
		}
		if err := k.Load(confmap.Provider(map[string]any{
			"size_limit_bytes": n,
		}, "."), nil); err != nil {
			return 0, fmt.Errorf("loading env size limit: %w", err)
		}
	}

	if flagRaw != "" {
		n, err := ParseSize(flagRaw)
		if err != nil {
			return 0, fmt.Errorf("--size-limit: %w", err)
		}
		if err := k.Load(confmap.Provider(map[string]any{
			"size_limit_bytes": n,
		}, "."), nil); err != nil {
			return 0, fmt.Errorf("loading flag size limit: %w", err)
		}
	}

	return k.Int64("size_limit_bytes"), nil
}
