package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS progress_log (
		id          TEXT PRIMARY KEY,
		plan_name   TEXT NOT NULL,
		course_code TEXT NOT NULL,
		from_status INTEGER NOT NULL CHECK(from_status IN (0,1,2)),
		to_status   INTEGER NOT NULL CHECK(to_status IN (0,1,2)),
		logged_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_progress_plan ON progress_log(plan_name, logged_at)`,
	`CREATE INDEX IF NOT EXISTS idx_progress_course ON progress_log(plan_name, course_code, logged_at)`,
}
