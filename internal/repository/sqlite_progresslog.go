package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rcastellanos/malla/internal/db"
	"github.com/rcastellanos/malla/internal/domain"
)

// SQLiteProgressLogRepo implements ProgressLogRepo using a SQLite database.
type SQLiteProgressLogRepo struct {
	db db.DBTX
}

// NewSQLiteProgressLogRepo creates a new SQLiteProgressLogRepo. Pass a
// transaction DBTX for tx-scoped use.
func NewSQLiteProgressLogRepo(db db.DBTX) *SQLiteProgressLogRepo {
	return &SQLiteProgressLogRepo{db: db}
}

func (r *SQLiteProgressLogRepo) Create(ctx context.Context, e *domain.ProgressEntry) error {
	query := `INSERT INTO progress_log (id, plan_name, course_code, from_status, to_status, logged_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.PlanName,
		e.CourseCode,
		int(e.FromStatus),
		int(e.ToStatus),
		e.LoggedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting progress entry: %w", err)
	}
	return nil
}

func (r *SQLiteProgressLogRepo) GetByID(ctx context.Context, id string) (*domain.ProgressEntry, error) {
	query := `SELECT id, plan_name, course_code, from_status, to_status, logged_at
		FROM progress_log WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanEntry(row)
}

func (r *SQLiteProgressLogRepo) ListByPlan(ctx context.Context, planName string) ([]*domain.ProgressEntry, error) {
	query := `SELECT id, plan_name, course_code, from_status, to_status, logged_at
		FROM progress_log WHERE plan_name = ? ORDER BY logged_at, id`
	rows, err := r.db.QueryContext(ctx, query, planName)
	if err != nil {
		return nil, fmt.Errorf("listing progress by plan: %w", err)
	}
	defer rows.Close()
	return r.scanEntries(rows)
}

func (r *SQLiteProgressLogRepo) ListByCourse(ctx context.Context, planName, courseCode string) ([]*domain.ProgressEntry, error) {
	query := `SELECT id, plan_name, course_code, from_status, to_status, logged_at
		FROM progress_log WHERE plan_name = ? AND course_code = ? ORDER BY logged_at, id`
	rows, err := r.db.QueryContext(ctx, query, planName, courseCode)
	if err != nil {
		return nil, fmt.Errorf("listing progress by course: %w", err)
	}
	defer rows.Close()
	return r.scanEntries(rows)
}

func (r *SQLiteProgressLogRepo) DeleteByPlan(ctx context.Context, planName string) error {
	query := `DELETE FROM progress_log WHERE plan_name = ?`
	if _, err := r.db.ExecContext(ctx, query, planName); err != nil {
		return fmt.Errorf("deleting progress entries: %w", err)
	}
	return nil
}

func (r *SQLiteProgressLogRepo) scanEntry(row *sql.Row) (*domain.ProgressEntry, error) {
	var e domain.ProgressEntry
	var from, to int
	var loggedAtStr string

	err := row.Scan(&e.ID, &e.PlanName, &e.CourseCode, &from, &to, &loggedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("progress entry: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning progress entry: %w", err)
	}

	return r.populateEntry(&e, from, to, loggedAtStr)
}

func (r *SQLiteProgressLogRepo) scanEntries(rows *sql.Rows) ([]*domain.ProgressEntry, error) {
	var entries []*domain.ProgressEntry
	for rows.Next() {
		var e domain.ProgressEntry
		var from, to int
		var loggedAtStr string

		if err := rows.Scan(&e.ID, &e.PlanName, &e.CourseCode, &from, &to, &loggedAtStr); err != nil {
			return nil, fmt.Errorf("scanning progress row: %w", err)
		}

		entry, err := r.populateEntry(&e, from, to, loggedAtStr)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating progress entries: %w", err)
	}
	return entries, nil
}

func (r *SQLiteProgressLogRepo) populateEntry(e *domain.ProgressEntry, from, to int, loggedAtStr string) (*domain.ProgressEntry, error) {
	e.FromStatus = domain.Status(from)
	e.ToStatus = domain.Status(to)

	loggedAt, err := time.Parse(time.RFC3339, loggedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing logged_at: %w", err)
	}
	e.LoggedAt = loggedAt

	return e, nil
}
