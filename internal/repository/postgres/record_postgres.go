package postgres

import (
	"context"
	"database/sql"

	"stresstrack/internal/model"
	"stresstrack/internal/repository"
)

// RecordPostgres is a PostgreSQL implementation of repository.RecordRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type RecordPostgres struct {
	db *sql.DB
}

// NewRecordPostgres creates a new RecordPostgres repository.
func NewRecordPostgres(db *sql.DB) *RecordPostgres {
	return &RecordPostgres{db: db}
}

var _ repository.RecordRepository = (*RecordPostgres)(nil)

// Create inserts a new record row. The id column has a UUID default, so the
// identifier is assigned by the database and read back via RETURNING.
func (r *RecordPostgres) Create(ctx context.Context, rec *model.StressRecord) (*model.StressRecord, error) {
	const q = `
		INSERT INTO stress_level_records (user_id, stress_level, image, timestamp)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	out := *rec
	row := r.db.QueryRowContext(ctx, q,
		rec.UserID,
		rec.StressLevel,
		rec.Image,
		rec.Timestamp,
	)
	if err := row.Scan(&out.ID); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListByUser returns the user's records newest-first using LIMIT/OFFSET pagination.
func (r *RecordPostgres) ListByUser(ctx context.Context, userID string, pq repository.PageQuery) ([]model.StressRecord, error) {
	const q = `
		SELECT id, user_id, stress_level, image, timestamp
		FROM stress_level_records
		WHERE user_id = $1
		ORDER BY timestamp DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.QueryContext(ctx, q, userID, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.StressRecord, 0)
	for rows.Next() {
		var rec model.StressRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.UserID,
			&rec.StressLevel,
			&rec.Image,
			&rec.Timestamp,
		); err != nil {
			return nil, err
		}
		items = append(items, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
