package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/course-questions/backend/internal/domain/question"
)

const questionColumns = "questionId, courseId, question, opt1, opt2, opt3, opt4, ans"

// SQLStore implements Store on database/sql for drivers that use "?"
// placeholders (SQLite and MySQL).
type SQLStore struct {
	db *sql.DB
}

// Compile-time check: *SQLStore satisfies the Store interface.
var _ Store = (*SQLStore)(nil)

func newSQLStore(ctx context.Context, db *sql.DB, schema []string) (*SQLStore, error) {
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: ping: %w", err)
	}
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("store: create schema: %w", err)
		}
	}
	return &SQLStore{db: db}, nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

func (s *SQLStore) ListQuestions(ctx context.Context) ([]question.Question, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+questionColumns+" FROM questions ORDER BY questionId")
	if err != nil {
		return nil, err
	}
	return scanQuestions(rows)
}

func (s *SQLStore) ListQuestionsByCourse(ctx context.Context, courseID string) ([]question.Question, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+questionColumns+" FROM questions WHERE courseId = ? ORDER BY questionId",
		courseID,
	)
	if err != nil {
		return nil, err
	}
	return scanQuestions(rows)
}

func (s *SQLStore) GetQuestion(ctx context.Context, id int64) (*question.Question, error) {
	var q question.Question
	err := s.db.QueryRowContext(ctx,
		"SELECT "+questionColumns+" FROM questions WHERE questionId = ?", id,
	).Scan(&q.ID, &q.CourseID, &q.Question, &q.Opt1, &q.Opt2, &q.Opt3, &q.Opt4, &q.Ans)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (s *SQLStore) CreateQuestion(ctx context.Context, q *question.Question) error {
	result, err := s.db.ExecContext(ctx,
		"INSERT INTO questions (courseId, question, opt1, opt2, opt3, opt4, ans) VALUES (?, ?, ?, ?, ?, ?, ?)",
		q.CourseID, q.Question, q.Opt1, q.Opt2, q.Opt3, q.Opt4, q.Ans,
	)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	q.ID = id
	return nil
}

func (s *SQLStore) UpdateQuestion(ctx context.Context, q question.Question) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE questions SET courseId = ?, question = ?, opt1 = ?, opt2 = ?, opt3 = ?, opt4 = ?, ans = ? WHERE questionId = ?",
		q.CourseID, q.Question, q.Opt1, q.Opt2, q.Opt3, q.Opt4, q.Ans, q.ID,
	)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func (s *SQLStore) DeleteQuestion(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM questions WHERE questionId = ?", id)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func requireRow(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func scanQuestions(rows *sql.Rows) ([]question.Question, error) {
	defer rows.Close()

	questions := []question.Question{}
	for rows.Next() {
		var q question.Question
		if err := rows.Scan(&q.ID, &q.CourseID, &q.Question, &q.Opt1, &q.Opt2, &q.Opt3, &q.Opt4, &q.Ans); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return questions, nil
}
