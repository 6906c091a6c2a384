package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
)

var mysqlSchema = []string{`
CREATE TABLE IF NOT EXISTS questions (
    questionId BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
    courseId VARCHAR(255) NOT NULL,
    question TEXT NOT NULL,
    opt1 TEXT NOT NULL,
    opt2 TEXT NOT NULL,
    opt3 TEXT NOT NULL,
    opt4 TEXT NOT NULL,
    ans TEXT NOT NULL,
    INDEX idx_questions_course (courseId)
)`,
}

// NewMySQL connects to MySQL using a go-sql-driver DSN, e.g.
// "user:pass@tcp(localhost:3306)/questions".
func NewMySQL(ctx context.Context, dsn string) (*SQLStore, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("store: parse mysql dsn: %w", err)
	}
	// Report matched rows rather than changed rows, so an update that
	// rewrites identical values is not mistaken for a missing question.
	cfg.ClientFoundRows = true

	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, fmt.Errorf("store: mysql connector: %w", err)
	}

	db := sql.OpenDB(connector)
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	return newSQLStore(ctx, db, mysqlSchema)
}
