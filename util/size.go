package util

import (
	"fmt"
	"strconv"
	"strings"
)

var sizeUnits = []struct {
	suffix     string
	multiplier int64
}{
	{"GB", 1 << 30},
	{"MB", 1 << 20},
	{"KB", 1 << 10},
	{"B", 1},
}

// ParseSize parses a human-readable size string such as "1MB", "512KB" or
// "2048" into bytes. Units are binary and case-insensitive.
func ParseSize(s string) (int64, error) {
	raw := s
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("empty size")
	}

	multiplier := int64(1)
	for _, u := range sizeUnits {
		if strings.HasSuffix(s, u.suffix) {
			multiplier = u.multiplier
			s = strings.TrimSpace(strings.TrimSuffix(s, u.suffix))
			break
		}
	}

	val, err := strconv.ParseInt(s, 10, 64)
	if err != nil || val < 0 {
		return 0, fmt.Errorf("invalid size %q", raw)
	}
	return val * multiplier, nil
}

// ParseSizeOr is ParseSize with a fallback for empty or malformed input.
func ParseSizeOr(s string, defaultBytes int64) int64 {
	n, err := ParseSize(s)
	if err != nil {
		return defaultBytes
	}
	return n
}
