package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/storm-impact-report/internal/pipeline"
)

func sampleReport() *pipeline.Report {
	return &pipeline.Report{
		RankedToll: []pipeline.Summary{
			{EventType: "tornado", Value: 96979},
			{EventType: "excessive heat", Value: 8428},
		},
		RankedDamage: []pipeline.Summary{
			{EventType: "flood", Value: 150_319_678_250},
			{EventType: "hurricane (typhoon)", Value: 87_068_996_810},
		},
		RecordsIn:         902297,
		RecordsDropped:    745,
		UnrecognizedCodes: 12,
		GeneratedAt:       time.Date(2024, 4, 26, 12, 0, 0, 0, time.UTC),
	}
}

func TestWriteReport(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, WriteReport(&sb, sampleReport(), 10))
	out := sb.String()

	assert.Contains(t, out, "Human toll")
	assert.Contains(t, out, "Economic damage")
	assert.Contains(t, out, "tornado")
	assert.Contains(t, out, "96979")
	assert.Contains(t, out, "flood")
	assert.Contains(t, out, "902297 records in, 745 dropped")
	assert.Contains(t, out, "12 unrecognized magnitude codes")
	assert.Contains(t, out, "2024-04-26T12:00:00Z")
}

func TestWriteReport_TopNLimits(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, WriteReport(&sb, sampleReport(), 1))
	out := sb.String()

	assert.Contains(t, out, "tornado")
	assert.NotContains(t, out, "excessive heat")
}

func TestWriteCharts(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, WriteCharts(&sb, sampleReport(), 10))
	out := sb.String()

	assert.Contains(t, out, "echarts")
	assert.Contains(t, out, "Human toll by event type")
	assert.Contains(t, out, "Economic damage by event type")
}
