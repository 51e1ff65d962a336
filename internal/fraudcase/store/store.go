// Package store persists local case records.
//
// All implementations follow the same contract:
//   - Save upserts by record ID; saving the same ID twice overwrites.
//   - FindByID wraps sentinel.ErrNotFound when no record exists.
//   - Infrastructure failures are returned wrapped with context.
package store

import (
	"fmt"

	"casebridge/internal/fraudcase/models"
	"casebridge/internal/sentinel"
)

func notFound(orderID string) error {
	return fmt.Errorf("case record %q not found: %w", orderID, sentinel.ErrNotFound)
}

func cloneRecord(r *models.CaseRecord) *models.CaseRecord {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}
