// Package store handles SQLite persistence of exam records.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/examboard/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for exam records.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS exam_records (
			id INTEGER PRIMARY KEY,
			provider TEXT NOT NULL,
			exam TEXT NOT NULL,
			exam_type TEXT NOT NULL,
			attempts INTEGER NOT NULL,
			average_score REAL NOT NULL,
			progress INTEGER NOT NULL,
			grade_score INTEGER NOT NULL,
			grade_total INTEGER NOT NULL,
			status TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_exam_records_provider ON exam_records(provider);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Count returns the number of stored records.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM exam_records`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// InsertRecords stores records in a single transaction. Records with a zero
// ID get one assigned by SQLite.
func (s *Store) InsertRecords(ctx context.Context, records []model.ExamRecord) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()
	if err = insertRecords(ctx, tx, records); err != nil {
		return err
	}
	return tx.Commit()
}

// ReplaceAll deletes every record and stores records in their place.
func (s *Store) ReplaceAll(ctx context.Context, records []model.ExamRecord) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()
	if _, err = tx.ExecContext(ctx, `DELETE FROM exam_records`); err != nil {
		return err
	}
	if err = insertRecords(ctx, tx, records); err != nil {
		return err
	}
	return tx.Commit()
}

// SeedIfEmpty stores records only when the table is empty. It reports
// whether anything was written.
func (s *Store) SeedIfEmpty(ctx context.Context, records []model.ExamRecord) (bool, error) {
	n, err := s.Count(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	if err := s.InsertRecords(ctx, records); err != nil {
		return false, err
	}
	return true, nil
}

func insertRecords(ctx context.Context, tx *sql.Tx, records []model.ExamRecord) error {
	if len(records) == 0 {
		return nil
	}
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO exam_records (id, provider, exam, exam_type, attempts, average_score, progress, grade_score, grade_total, status, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := stmt.Close(); cerr != nil {
			// Best-effort statement close.
			_ = cerr
		}
	}()
	for _, r := range records {
		var id any
		if r.ID != 0 {
			id = r.ID
		}
		if _, err := stmt.ExecContext(ctx,
			id,
			r.Provider,
			r.Exam,
			r.ExamType,
			r.Attempts,
			r.AverageScore,
			r.Progress,
			r.LatestGrade.Score,
			r.LatestGrade.Total,
			r.Status,
			r.UpdatedAt.UTC().Format(time.RFC3339Nano),
		); err != nil {
			return err
		}
	}
	return nil
}

// ListRecords returns every record in id order.
func (s *Store) ListRecords(ctx context.Context) ([]model.ExamRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, provider, exam, exam_type, attempts, average_score, progress, grade_score, grade_total, status, updated_at
		FROM exam_records
		ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var records []model.ExamRecord
	for rows.Next() {
		var r model.ExamRecord
		var updatedAt string
		if err := rows.Scan(&r.ID, &r.Provider, &r.Exam, &r.ExamType, &r.Attempts, &r.AverageScore, &r.Progress,
			&r.LatestGrade.Score, &r.LatestGrade.Total, &r.Status, &updatedAt); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, updatedAt)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", r.ID, err)
		}
		r.UpdatedAt = parsed
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// DeleteRecords removes the records with the given ids and returns how many
// rows were deleted.
func (s *Store) DeleteRecords(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id
	}
	query := fmt.Sprintf(`DELETE FROM exam_records WHERE id IN (%s)`, strings.Join(placeholders, ","))
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// DeleteAllRecords removes every record.
func (s *Store) DeleteAllRecords(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM exam_records`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
