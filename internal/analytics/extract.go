package analytics

import (
	"encoding/json"

	"uxmetrics/internal/models"
)

// ExtractValues returns, in input order, the numeric values the responses
// contribute to the metric kind. A response that yields no interpretable
// value is skipped; it neither raises nor contributes a zero.
func ExtractValues(responses []models.AssessmentResponse, kind models.AssessmentKind) []float64 {
	values := make([]float64, 0, len(responses))
	for _, resp := range responses {
		if v, ok := valueFor(resp, kind); ok {
			values = append(values, v)
		}
	}
	return values
}

// valueFor resolves one response's contribution. The pre-computed metrics
// map wins under the kind's canonical key; raw answers are consulted only
// when that key is absent.
func valueFor(resp models.AssessmentResponse, kind models.AssessmentKind) (float64, bool) {
	if v, ok := numeric(resp.Metrics, kind.MetricKey()); ok {
		return v, true
	}
	return derive(resp, kind)
}

// derive applies the kind-specific fallback over raw answers. Efficiency
// and error rate carry no fallback rule: their responses contribute only
// through the computed field.
func derive(resp models.AssessmentResponse, kind models.AssessmentKind) (float64, bool) {
	switch kind {
	case models.KindTaskSuccessRate:
		if b, ok := resp.RawAnswers["successful"].(bool); ok {
			if b {
				return 100, true
			}
			return 0, true
		}
		return 0, false
	case models.KindTimeOnTask:
		return numeric(resp.RawAnswers, "durationSeconds")
	case models.KindSEQ:
		return numeric(resp.RawAnswers, "rating")
	case models.KindTaskEfficiency, models.KindErrorRate:
		return 0, false
	}
	return 0, false
}

// numeric coerces a JSON map entry to float64. Values scanned back from the
// database arrive as json.Number, plain unmarshalling hands back float64,
// and freshly constructed maps may carry ints.
func numeric(m map[string]interface{}, key string) (float64, bool) {
	if m == nil {
		return 0, false
	}
	switch v := m[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
