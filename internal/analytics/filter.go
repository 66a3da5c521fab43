package analytics

import (
	"strings"
	"time"

	"uxmetrics/internal/models"
)

// Filters narrow a metric query. All active criteria combine with AND; an
// unset criterion excludes nothing on that axis. ParticipantID and the date
// range prune sessions; TaskQuery is a response-level attribute and applies
// to the flat response list.
type Filters struct {
	ParticipantID string     `json:"participantId,omitempty"`
	TaskQuery     string     `json:"taskQuery,omitempty"`
	From          *time.Time `json:"from,omitempty"`
	To            *time.Time `json:"to,omitempty"`
}

// Sessions returns the sessions satisfying every active session-level
// criterion. The date range is inclusive of both endpoints and normalized
// to whole days, so From == To keeps that entire day.
func (f Filters) Sessions(sessions []models.Session) []models.Session {
	var from, to time.Time
	if f.From != nil {
		from = startOfDay(*f.From)
	}
	if f.To != nil {
		to = endOfDay(*f.To)
	}

	out := make([]models.Session, 0, len(sessions))
	for _, s := range sessions {
		if f.ParticipantID != "" && s.ParticipantID != f.ParticipantID {
			continue
		}
		if f.From != nil && s.CreatedAt.Before(from) {
			continue
		}
		if f.To != nil && s.CreatedAt.After(to) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Responses returns the responses whose task description contains the task
// query, case-insensitively. An empty query keeps everything.
func (f Filters) Responses(responses []models.AssessmentResponse) []models.AssessmentResponse {
	if f.TaskQuery == "" {
		return responses
	}
	q := strings.ToLower(f.TaskQuery)

	out := make([]models.AssessmentResponse, 0, len(responses))
	for _, r := range responses {
		if strings.Contains(strings.ToLower(r.TaskDescription), q) {
			out = append(out, r)
		}
	}
	return out
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
