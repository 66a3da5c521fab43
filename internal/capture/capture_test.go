package capture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskSuccessScoring(t *testing.T) {
	pass := TaskSuccess("s", "t", "Checkout", true)
	assert.Equal(t, 100.0, pass.Metrics["successRate"])
	assert.Equal(t, true, pass.RawAnswers["successful"])

	fail := TaskSuccess("s", "t", "Checkout", false)
	assert.Equal(t, 0.0, fail.Metrics["successRate"])
}

func TestEfficiencyScoring(t *testing.T) {
	r := Efficiency("s", "t", "Checkout", 5, 8)
	assert.InDelta(t, 62.5, r.Metrics["efficiency"], 1e-9)

	// A zero actual count never divides.
	zero := Efficiency("s", "t", "Checkout", 5, 0)
	assert.Equal(t, 0.0, zero.Metrics["efficiency"])
}

func TestErrorRateScoring(t *testing.T) {
	r := ErrorRate("s", "t", "Search", 2, 8)
	assert.Equal(t, 25.0, r.Metrics["errorRate"])

	noOpportunities := ErrorRate("s", "t", "Search", 2, 0)
	assert.Equal(t, 0.0, noOpportunities.Metrics["errorRate"])

	// opportunities < errors is accepted; the rate just exceeds 100.
	odd := ErrorRate("s", "t", "Search", 6, 4)
	assert.Equal(t, 150.0, odd.Metrics["errorRate"])
}

func TestSEQCarriesRawAndComputed(t *testing.T) {
	r := SEQ("s", "t", "Checkout", 6)
	assert.Equal(t, 6, r.RawAnswers["rating"])
	assert.Equal(t, 6.0, r.Metrics["seqRating"])
}

func TestTimeOnTaskSeconds(t *testing.T) {
	r := TimeOnTask("s", "t", "Checkout", 92.5)
	assert.Equal(t, 92.5, r.Metrics["durationSeconds"])
	assert.Equal(t, 92.5, r.RawAnswers["durationSeconds"])
}
