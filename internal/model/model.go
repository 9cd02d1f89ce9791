package model

import "time"

// Status is the fixed application lifecycle. It is a closed cycle:
// every status has a successor and cycling never halts.
type Status string

const (
	StatusApplied      Status = "Applied"
	StatusInterviewing Status = "Interviewing"
	StatusOffer        Status = "Offer"
	StatusRejected     Status = "Rejected"
	StatusGhosted      Status = "Ghosted"
)

// Job is one tracked job application.
type Job struct {
	ID       int    `json:"id"`
	Company  string `json:"company"`
	Role     string `json:"role"`
	PostLink string `json:"post_link"`
	Status   Status `json:"status"`
	// Notes is persisted but not editable from the TUI today.
	Notes       string    `json:"notes"`
	DateApplied time.Time `json:"date_applied"`
}

// NewJob creates a record with status Applied and the current time.
//
// Callers assign id as len(list)+1 at insert; ids are not re-sequenced
// after deletions, so an id may repeat across a list's lifetime.
func NewJob(id int, company, role, link string) Job {
	return Job{
		ID:          id,
		Company:     company,
		Role:        role,
		PostLink:    link,
		Status:      StatusApplied,
		Notes:       "",
		DateApplied: time.Now().UTC(),
	}
}

// Next returns the successor status in the cycle.
func (s Status) Next() Status {
	switch s {
	case StatusApplied:
		return StatusInterviewing
	case StatusInterviewing:
		return StatusOffer
	case StatusOffer:
		return StatusRejected
	case StatusRejected:
		return StatusGhosted
	case StatusGhosted:
		return StatusApplied
	default:
		// Unknown values (hand-edited files) re-enter the cycle at the start.
		return StatusApplied
	}
}

// CycleStatus advances the job's status one step.
func (j *Job) CycleStatus() {
	j.Status = j.Status.Next()
}
