package config

import (
	"fmt"
	"strconv"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Config holds report generator settings, populated from environment
// variables. Per-run paths (input file, output targets) are command-line
// flags, not environment.
type Config struct {
	TopN             int
	MaxLabelDistance int
	LogLevel         string
	LogFormat        string
	ChartOut         string
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	topN, err := parsePositiveInt("REPORT_TOP_N", "10")
	if err != nil {
		return nil, err
	}

	maxDistance, err := parsePositiveInt("MAX_LABEL_DISTANCE", "8")
	if err != nil {
		return nil, err
	}

	return &Config{
		TopN:             topN,
		MaxLabelDistance: maxDistance,
		LogLevel:         sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:        sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ChartOut:         sharedcfg.EnvOrDefault("CHART_OUT", ""),
	}, nil
}

func parsePositiveInt(key, fallback string) (int, error) {
	raw := sharedcfg.EnvOrDefault(key, fallback)
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, raw)
	}
	return n, nil
}
