package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/course-questions/backend/internal/domain/question"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS questions (
    questionId BIGSERIAL PRIMARY KEY,
    courseId TEXT NOT NULL,
    question TEXT NOT NULL,
    opt1 TEXT NOT NULL,
    opt2 TEXT NOT NULL,
    opt3 TEXT NOT NULL,
    opt4 TEXT NOT NULL,
    ans TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_questions_course ON questions (courseId);
`

// PostgresStore implements Store on a pgx connection pool.
type PostgresStore struct {
	db *pgxpool.Pool
}

// Compile-time check: *PostgresStore satisfies the Store interface.
var _ Store = (*PostgresStore)(nil)

// NewPostgres connects using a postgres:// URL or key=value DSN.
func NewPostgres(ctx context.Context, dsn string) (*PostgresStore, error) {
	const op = "store.NewPostgres"

	connConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse database config: %w", op, err)
	}

	db, err := pgxpool.NewWithConfig(ctx, connConfig)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create database pool: %w", op, err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: failed to ping database: %w", op, err)
	}

	if _, err := db.Exec(ctx, postgresSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: failed to create schema: %w", op, err)
	}

	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Close() error {
	s.db.Close()
	return nil
}

func (s *PostgresStore) ListQuestions(ctx context.Context) ([]question.Question, error) {
	rows, err := s.db.Query(ctx, "SELECT "+questionColumns+" FROM questions ORDER BY questionId")
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	return collectQuestions(rows)
}

func (s *PostgresStore) ListQuestionsByCourse(ctx context.Context, courseID string) ([]question.Question, error) {
	rows, err := s.db.Query(ctx,
		"SELECT "+questionColumns+" FROM questions WHERE courseId = $1 ORDER BY questionId",
		courseID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions by course: %w", err)
	}
	return collectQuestions(rows)
}

func (s *PostgresStore) GetQuestion(ctx context.Context, id int64) (*question.Question, error) {
	var q question.Question
	err := s.db.QueryRow(ctx,
		"SELECT "+questionColumns+" FROM questions WHERE questionId = $1", id,
	).Scan(&q.ID, &q.CourseID, &q.Question, &q.Opt1, &q.Opt2, &q.Opt3, &q.Opt4, &q.Ans)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get question: %w", err)
	}
	return &q, nil
}

func (s *PostgresStore) CreateQuestion(ctx context.Context, q *question.Question) error {
	err := s.db.QueryRow(ctx, `
		INSERT INTO questions (courseId, question, opt1, opt2, opt3, opt4, ans)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING questionId
	`, q.CourseID, q.Question, q.Opt1, q.Opt2, q.Opt3, q.Opt4, q.Ans).Scan(&q.ID)
	if err != nil {
		return fmt.Errorf("failed to insert question: %w", err)
	}
	return nil
}

func (s *PostgresStore) UpdateQuestion(ctx context.Context, q question.Question) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE questions
		SET courseId = $1, question = $2, opt1 = $3, opt2 = $4, opt3 = $5, opt4 = $6, ans = $7
		WHERE questionId = $8
	`, q.CourseID, q.Question, q.Opt1, q.Opt2, q.Opt3, q.Opt4, q.Ans, q.ID)
	if err != nil {
		return fmt.Errorf("failed to update question: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) DeleteQuestion(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, "DELETE FROM questions WHERE questionId = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete question: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func collectQuestions(rows pgx.Rows) ([]question.Question, error) {
	defer rows.Close()

	questions := []question.Question{}
	for rows.Next() {
		var q question.Question
		if err := rows.Scan(&q.ID, &q.CourseID, &q.Question, &q.Opt1, &q.Opt2, &q.Opt3, &q.Opt4, &q.Ans); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate over rows: %w", err)
	}

	return questions, nil
}
