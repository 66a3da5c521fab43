package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uxmetrics/internal/analytics"
	"uxmetrics/internal/models"
)

func TestBuildAndWrite(t *testing.T) {
	study := &models.Study{
		ID:        "st-1",
		Name:      "Checkout Redesign",
		ProductID: "webstore",
		FeatureID: "checkout-v2",
	}
	mean := 50.0
	metrics := &analytics.AggregatedMetrics{
		StudyID:      "st-1",
		SessionCount: 2,
		Metrics: analytics.MetricSummaries{
			TaskSuccessRate: analytics.MeanMetric{Mean: &mean, Count: 2},
		},
	}

	doc := Build(study, metrics, analytics.Filters{TaskQuery: "checkout"}, "First round of testing.")
	assert.Equal(t, FormatVersion, doc.Version)
	assert.False(t, doc.GeneratedAt.IsZero())
	assert.Equal(t, "Checkout Redesign", doc.Study.Name)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, doc))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "1", decoded["version"])
	assert.Equal(t, "First round of testing.", decoded["commentary"])

	// Missing statistics serialize as explicit nulls, not zeros. The
	// document's metrics field is the aggregation result, whose per-kind
	// summaries sit under its own metrics key.
	agg, ok := decoded["metrics"].(map[string]interface{})
	require.True(t, ok)
	summaries, ok := agg["metrics"].(map[string]interface{})
	require.True(t, ok)
	seq, ok := summaries["seq"].(map[string]interface{})
	require.True(t, ok)
	assert.Nil(t, seq["mean"])
	assert.Equal(t, 0.0, seq["count"])
}
