package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.TopN)
	assert.Equal(t, 8, cfg.MaxLabelDistance)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Empty(t, cfg.ChartOut)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("REPORT_TOP_N", "25")
	t.Setenv("MAX_LABEL_DISTANCE", "3")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("CHART_OUT", "out/report.html")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.TopN)
	assert.Equal(t, 3, cfg.MaxLabelDistance)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "out/report.html", cfg.ChartOut)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non-numeric top n", "REPORT_TOP_N", "ten"},
		{"zero top n", "REPORT_TOP_N", "0"},
		{"negative distance", "MAX_LABEL_DISTANCE", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}
