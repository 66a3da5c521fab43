package models

// AssessmentKind identifies one of the five fixed usability instruments.
type AssessmentKind string

const (
	KindTaskSuccessRate AssessmentKind = "task_success_rate"
	KindTimeOnTask      AssessmentKind = "time_on_task"
	KindTaskEfficiency  AssessmentKind = "task_efficiency"
	KindErrorRate       AssessmentKind = "error_rate"
	KindSEQ             AssessmentKind = "seq"
)

// AllKinds returns the five instrument kinds in display order.
func AllKinds() []AssessmentKind {
	return []AssessmentKind{
		KindTaskSuccessRate,
		KindTimeOnTask,
		KindTaskEfficiency,
		KindErrorRate,
		KindSEQ,
	}
}

// Valid reports whether k is one of the five known kinds.
func (k AssessmentKind) Valid() bool {
	switch k {
	case KindTaskSuccessRate, KindTimeOnTask, KindTaskEfficiency, KindErrorRate, KindSEQ:
		return true
	}
	return false
}

// MetricKey returns the canonical key under which responses of this kind
// store their pre-computed metric value.
func (k AssessmentKind) MetricKey() string {
	switch k {
	case KindTaskSuccessRate:
		return "successRate"
	case KindTimeOnTask:
		return "durationSeconds"
	case KindTaskEfficiency:
		return "efficiency"
	case KindErrorRate:
		return "errorRate"
	case KindSEQ:
		return "seqRating"
	}
	return ""
}
