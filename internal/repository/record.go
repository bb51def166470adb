package repository

import (
	"context"

	"stresstrack/internal/model"
)

// RecordRepository defines data access for stress-level records using SQL
// queries only. No business logic here — strictly persistence operations.
type RecordRepository interface {
	// Create inserts a new record. The store assigns the identifier; the
	// returned record carries it. All other fields must already be populated
	// by the caller (including the timestamp).
	Create(ctx context.Context, rec *model.StressRecord) (*model.StressRecord, error)

	// ListByUser returns one page of a user's records ordered by timestamp
	// descending (newest first). An empty page is a valid, empty slice.
	ListByUser(ctx context.Context, userID string, pq PageQuery) ([]model.StressRecord, error)
}

// PageQuery holds limit/offset pagination parameters.
//
// Offset pagination is not stable under concurrent inserts: a record written
// between two page fetches may shift offsets and cause a record to appear
// twice or be skipped across pages. Accepted tradeoff.
type PageQuery struct {
	Limit  int
	Offset int
}
