// internal/store/sqlite.go
package store

import (
	"context"
	"database/sql"

	_ "modernc.org/sqlite"
)

// AUTOINCREMENT keeps deleted IDs from being handed out again.
var sqliteSchema = []string{`
CREATE TABLE IF NOT EXISTS questions (
    questionId INTEGER PRIMARY KEY AUTOINCREMENT,
    courseId TEXT NOT NULL,
    question TEXT NOT NULL,
    opt1 TEXT NOT NULL,
    opt2 TEXT NOT NULL,
    opt3 TEXT NOT NULL,
    opt4 TEXT NOT NULL,
    ans TEXT NOT NULL
);`,
	`CREATE INDEX IF NOT EXISTS idx_questions_course ON questions (courseId);`,
}

// NewSQLite opens (or creates) the SQLite database at dbPath.
func NewSQLite(ctx context.Context, dbPath string) (*SQLStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	// SQLite allows one writer at a time.
	db.SetMaxOpenConns(1)

	return newSQLStore(ctx, db, sqliteSchema)
}
