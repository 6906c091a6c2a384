package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/course-questions/backend/internal/domain/question"
)

var (
	ErrNotFound = errors.New("not found")
)

// Store persists questions. Implementations assign IDs on create and
// never reuse them.
type Store interface {
	ListQuestions(ctx context.Context) ([]question.Question, error)
	ListQuestionsByCourse(ctx context.Context, courseID string) ([]question.Question, error)
	GetQuestion(ctx context.Context, id int64) (*question.Question, error)
	CreateQuestion(ctx context.Context, q *question.Question) error
	UpdateQuestion(ctx context.Context, q question.Question) error
	DeleteQuestion(ctx context.Context, id int64) error
	Close() error
}

// Supported values for Open's driver argument.
const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Open connects to the backend named by driver and makes sure the
// questions table exists.
func Open(ctx context.Context, driver, dsn string) (Store, error) {
	switch driver {
	case DriverSQLite:
		return NewSQLite(ctx, dsn)
	case DriverMySQL:
		return NewMySQL(ctx, dsn)
	case DriverPostgres:
		return NewPostgres(ctx, dsn)
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("store: unsupported driver %q", driver)
	}
}
