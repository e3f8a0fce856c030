package enum

import "fmt"

// SubmissionStatus represents the processing state of a contact form submission
type SubmissionStatus string

const (
	SubmissionStatusNew        SubmissionStatus = "new"
	SubmissionStatusInProgress SubmissionStatus = "in_progress"
	SubmissionStatusCompleted  SubmissionStatus = "completed"
	SubmissionStatusArchived   SubmissionStatus = "archived"
)

func (s SubmissionStatus) String() string {
	return string(s)
}

// Validate returns an error for statuses outside the known set
func (s SubmissionStatus) Validate() error {
	switch s {
	case SubmissionStatusNew, SubmissionStatusInProgress, SubmissionStatusCompleted, SubmissionStatusArchived:
		return nil
	default:
		return fmt.Errorf("unknown submission status %q", string(s))
	}
}
