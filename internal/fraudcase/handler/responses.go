package handler

import (
	"time"

	"casebridge/internal/fraudcase/models"
)

type RecordResponse struct {
	ID          string  `json:"id"`
	Status      string  `json:"status"`
	Code        string  `json:"code"`
	Score       float64 `json:"score"`
	EntriesText string  `json:"entries_text"`
	CreatedAt   string  `json:"created_at"`
}

// SubmissionResponse omits the failure reason, which can carry transport
// detail; callers get the category only.
type SubmissionResponse struct {
	OrderID     string `json:"order_id"`
	Status      string `json:"status"`
	CaseID      string `json:"case_id,omitempty"`
	Category    string `json:"category,omitempty"`
	SubmittedAt string `json:"submitted_at"`
}

func toRecordResponse(r *models.CaseRecord) RecordResponse {
	return RecordResponse{
		ID:          r.ID,
		Status:      string(r.Status),
		Code:        r.Code,
		Score:       r.Score,
		EntriesText: r.EntriesText,
		CreatedAt:   r.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toSubmissionResponse(r models.SubmissionResult) SubmissionResponse {
	return SubmissionResponse{
		OrderID:     r.OrderID,
		Status:      string(r.Status),
		CaseID:      r.CaseID,
		Category:    r.Category,
		SubmittedAt: r.SubmittedAt.UTC().Format(time.RFC3339),
	}
}
