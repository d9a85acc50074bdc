package config

import (
	"fmt"
	"strconv"
	"strings"
)

// sizeUnits maps case-insensitive size suffixes to their byte multipliers.
// Both the decimal (KB/MB/GB) and binary (KiB/MiB/GiB) forms are accepted;
// harvestcx treats them identically since users rarely mean the distinction.
var sizeUnits = []struct {
	suffix     string
	multiplier int64
}{
	{"GIB", 1024 * 1024 * 1024},
	{"GB", 1024 * 1024 * 1024},
	{"MIB", 1024 * 1024},
	{"MB", 1024 * 1024},
	{"KIB", 1024},
	{"KB", 1024},
	{"B", 1},
}

// ParseSize parses a human-readable byte size such as "100MB", "512KiB", or
// a bare integer (treated as bytes). Suffixes are case-insensitive.
func ParseSize(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty size string")
	}

	upper := strings.ToUpper(s)
	for _, u := range sizeUnits {
		if !strings.HasSuffix(upper, u.suffix) {
			continue
		}
		numStr := strings.TrimSpace(s[:len(s)-len(u.suffix)])
		if numStr == "" {
			continue
		}
		return parseSizeNumber(numStr, u.multiplier)
	}

	return parseSizeNumber(s, 1)
}

func parseSizeNumber(numStr string, multiplier int64) (int64, error) {
	if n, err := strconv.ParseInt(numStr, 10, 64); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("size must be non-negative: %q", numStr)
		}
		return n * multiplier, nil
	}
	f, err := strconv.ParseFloat(numStr, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size: %q", numStr)
	}
	if f < 0 {
		return 0, fmt.Errorf("size must be non-negative: %q", numStr)
	}
	return int64(f * float64(multiplier)), nil
}
