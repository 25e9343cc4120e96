package model

import "time"

// AttemptOutcome is the per-copy result of one submission.
type AttemptOutcome string

var (
	AttemptAccepted AttemptOutcome = "accepted"
	AttemptFailed   AttemptOutcome = "failed"
	AttemptSkipped  AttemptOutcome = "skipped"
)

// SubmissionAttempt is one append-only audit record.
type SubmissionAttempt struct {
	ID              string
	CycleID         string
	Network         Network
	ResourceID      string
	TransactionHash string
	Endpoint        string
	Attempt         int
	Copy            int
	Fee             int64
	Outcome         AttemptOutcome
	Category        ErrorCategory
	Code            string
	Error           string
	Timestamp       time.Time
}

// Outcome summarises one resource's lifecycle within a scheduling cycle.
type Outcome struct {
	CycleID    string
	Network    Network
	ResourceID string
	Status     Status
	// Attempts counts submission rounds; flood copies share a round.
	Attempts        int
	FinalFee        int64
	TransactionHash string
	Category        ErrorCategory
	Error           string
	UnlockAt        time.Time
	StartedAt       time.Time
	FinishedAt      time.Time
	History         []SubmissionAttempt
}

// Fail marks the outcome with status and the category derived from err.
func (o *Outcome) Fail(status Status, err error) {
	o.FailAs(status, Categorize(err), err)
}

// FailAs marks the outcome with an explicit category.
func (o *Outcome) FailAs(status Status, category ErrorCategory, err error) {
	o.Status = status
	o.Category = category
	if err != nil {
		o.Error = err.Error()
	}
}
