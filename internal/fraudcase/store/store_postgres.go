package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"casebridge/internal/fraudcase/models"
)

// dbExecutor is satisfied by *sql.DB and *sql.Tx.
type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// PostgresStore persists records in the case_records table.
type PostgresStore struct {
	db dbExecutor
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const upsertCaseRecord = `
	INSERT INTO case_records (id, status, code, score, entries_text, created_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (id) DO UPDATE SET
		status = EXCLUDED.status,
		code = EXCLUDED.code,
		score = EXCLUDED.score,
		entries_text = EXCLUDED.entries_text,
		created_at = EXCLUDED.created_at`

const selectCaseRecord = `
	SELECT id, status, code, score, entries_text, created_at
	FROM case_records
	WHERE id = $1`

func (s *PostgresStore) Save(ctx context.Context, record *models.CaseRecord) error {
	if record == nil {
		return errors.New("case record is required")
	}
	_, err := s.db.ExecContext(ctx, upsertCaseRecord,
		record.ID,
		string(record.Status),
		record.Code,
		record.Score,
		record.EntriesText,
		record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("save case record: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, orderID string) (*models.CaseRecord, error) {
	record, err := scanCaseRecord(s.db.QueryRowContext(ctx, selectCaseRecord, orderID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound(orderID)
		}
		return nil, fmt.Errorf("find case record: %w", err)
	}
	return record, nil
}

func scanCaseRecord(row *sql.Row) (*models.CaseRecord, error) {
	var (
		r      models.CaseRecord
		status string
	)
	if err := row.Scan(&r.ID, &status, &r.Code, &r.Score, &r.EntriesText, &r.CreatedAt); err != nil {
		return nil, err
	}
	r.Status = models.CaseStatus(status)
	return &r, nil
}
