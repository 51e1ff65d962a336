package models

import "time"

// SubmissionStatus is the binary outcome of a create-case call.
type SubmissionStatus string

const (
	SubmissionSent   SubmissionStatus = "sent"
	SubmissionFailed SubmissionStatus = "failed"
)

// SubmissionResult reports the outcome of submitting one case. A sent result
// carries the service's case identifier; a failed one carries the reason.
type SubmissionResult struct {
	OrderID     string           `json:"order_id"`
	Status      SubmissionStatus `json:"status"`
	CaseID      string           `json:"case_id,omitempty"`
	Reason      string           `json:"reason,omitempty"`
	Category    string           `json:"category,omitempty"`
	SubmittedAt time.Time        `json:"submitted_at"`
}

// Succeeded reports whether the service accepted the case.
func (r SubmissionResult) Succeeded() bool {
	return r.Status == SubmissionSent && r.CaseID != ""
}

// Sent builds a successful result.
func Sent(orderID, caseID string, at time.Time) SubmissionResult {
	return SubmissionResult{OrderID: orderID, Status: SubmissionSent, CaseID: caseID, SubmittedAt: at}
}

// Failed builds a failed result.
func Failed(orderID, category, reason string, at time.Time) SubmissionResult {
	return SubmissionResult{OrderID: orderID, Status: SubmissionFailed, Category: category, Reason: reason, SubmittedAt: at}
}
