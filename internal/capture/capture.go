// Package capture builds assessment responses from instrument inputs,
// computing each kind's metric value at capture time. Raw answers are
// stored alongside the computed value so older readers that derive from raw
// fields keep working.
package capture

import (
	"gorm.io/datatypes"

	"uxmetrics/internal/models"
)

func newResponse(sessionID, typeID, task string, raw, metrics map[string]interface{}) *models.AssessmentResponse {
	return &models.AssessmentResponse{
		SessionID:        sessionID,
		AssessmentTypeID: typeID,
		TaskDescription:  task,
		RawAnswers:       datatypes.JSONMap(raw),
		Metrics:          datatypes.JSONMap(metrics),
	}
}

// TaskSuccess scores a binary attempt outcome as 100 or 0.
func TaskSuccess(sessionID, typeID, task string, successful bool) *models.AssessmentResponse {
	rate := 0.0
	if successful {
		rate = 100.0
	}
	return newResponse(sessionID, typeID, task,
		map[string]interface{}{"successful": successful},
		map[string]interface{}{"successRate": rate},
	)
}

// TimeOnTask records an elapsed duration in seconds.
func TimeOnTask(sessionID, typeID, task string, seconds float64) *models.AssessmentResponse {
	return newResponse(sessionID, typeID, task,
		map[string]interface{}{"durationSeconds": seconds},
		map[string]interface{}{"durationSeconds": seconds},
	)
}

// Efficiency scores optimal versus actual steps as a percentage. A
// non-positive actual step count scores 0 rather than dividing.
func Efficiency(sessionID, typeID, task string, optimalSteps, actualSteps int) *models.AssessmentResponse {
	pct := 0.0
	if actualSteps > 0 {
		pct = float64(optimalSteps) / float64(actualSteps) * 100
	}
	return newResponse(sessionID, typeID, task,
		map[string]interface{}{"optimalSteps": optimalSteps, "actualSteps": actualSteps},
		map[string]interface{}{"efficiency": pct},
	)
}

// ErrorRate scores errors against opportunities as a percentage. Zero
// opportunities score 0; an error count above the opportunity count is
// accepted as given.
func ErrorRate(sessionID, typeID, task string, errorCount, opportunities int) *models.AssessmentResponse {
	pct := 0.0
	if opportunities > 0 {
		pct = float64(errorCount) / float64(opportunities) * 100
	}
	return newResponse(sessionID, typeID, task,
		map[string]interface{}{"errors": errorCount, "opportunities": opportunities},
		map[string]interface{}{"errorRate": pct},
	)
}

// SEQ records a 1-7 post-task ease rating. Range enforcement happens in the
// repository against the instrument definition.
func SEQ(sessionID, typeID, task string, rating int) *models.AssessmentResponse {
	return newResponse(sessionID, typeID, task,
		map[string]interface{}{"rating": rating},
		map[string]interface{}{"seqRating": float64(rating)},
	)
}
