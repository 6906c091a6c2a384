// internal/service/questions.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/course-questions/backend/internal/courses"
	"github.com/course-questions/backend/internal/domain/question"
	"github.com/course-questions/backend/internal/grader"
	"github.com/course-questions/backend/internal/store"
)

var (
	ErrCourseNotFound     = errors.New("course not found")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrQuestionIDRequired = errors.New("question id is required")
)

// Verdict is the outcome of checking a submitted answer.
type Verdict struct {
	Found        bool // false when the question does not exist
	Correct      bool
	Question     string
	StoredAnswer string
	Submitted    any
}

// QuestionService owns the course gate in front of create and update
// and the answer check. The store stays a pure persistence layer.
type QuestionService struct {
	store   store.Store
	courses courses.Checker
	grader  grader.Grader
	logger  *slog.Logger
}

// NewQuestionService creates a QuestionService.
func NewQuestionService(s store.Store, c courses.Checker, g grader.Grader, logger *slog.Logger) *QuestionService {
	return &QuestionService{
		store:   s,
		courses: c,
		grader:  g,
		logger:  logger,
	}
}

func (qs *QuestionService) ListQuestions(ctx context.Context) ([]question.Question, error) {
	questions, err := qs.store.ListQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return questions, nil
}

func (qs *QuestionService) ListQuestionsByCourse(ctx context.Context, courseID string) ([]question.Question, error) {
	questions, err := qs.store.ListQuestionsByCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("list questions for course %q: %w", courseID, err)
	}
	return questions, nil
}

// CreateQuestion inserts q once its course is confirmed and sets q.ID.
// It returns ErrCourseNotFound, a *courses.CheckError, or a store error.
func (qs *QuestionService) CreateQuestion(ctx context.Context, q *question.Question) error {
	if err := qs.requireCourse(ctx, q.CourseID); err != nil {
		return err
	}

	if err := qs.store.CreateQuestion(ctx, q); err != nil {
		return fmt.Errorf("create question: %w", err)
	}

	qs.logger.Info("question created", "question_id", q.ID, "course_id", q.CourseID)
	return nil
}

// UpdateQuestion rewrites every field of question q.ID once its course
// is confirmed. A missing row is ErrQuestionNotFound.
func (qs *QuestionService) UpdateQuestion(ctx context.Context, q question.Question) error {
	if err := qs.requireCourse(ctx, q.CourseID); err != nil {
		return err
	}

	err := qs.store.UpdateQuestion(ctx, q)
	if errors.Is(err, store.ErrNotFound) {
		return ErrQuestionNotFound
	}
	if err != nil {
		return fmt.Errorf("update question %d: %w", q.ID, err)
	}

	qs.logger.Info("question updated", "question_id", q.ID, "course_id", q.CourseID)
	return nil
}

func (qs *QuestionService) DeleteQuestion(ctx context.Context, id int64) error {
	err := qs.store.DeleteQuestion(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrQuestionNotFound
	}
	if err != nil {
		return fmt.Errorf("delete question %d: %w", id, err)
	}

	qs.logger.Info("question deleted", "question_id", id)
	return nil
}

// CheckAnswer grades submitted against the stored answer of questionID.
// An unknown question is not an error: the verdict reports Found=false.
func (qs *QuestionService) CheckAnswer(ctx context.Context, questionID string, submitted any) (Verdict, error) {
	if questionID == "" {
		return Verdict{}, ErrQuestionIDRequired
	}

	id, ok := question.ParseID(questionID)
	if !ok {
		return Verdict{Submitted: submitted}, nil
	}

	q, err := qs.store.GetQuestion(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return Verdict{Submitted: submitted}, nil
	}
	if err != nil {
		return Verdict{}, fmt.Errorf("get question %d: %w", id, err)
	}

	return Verdict{
		Found:        true,
		Correct:      qs.grader.Grade(q.Ans, submitted),
		Question:     q.Question,
		StoredAnswer: q.Ans,
		Submitted:    submitted,
	}, nil
}

// requireCourse is the gate in front of every mutation.
func (qs *QuestionService) requireCourse(ctx context.Context, courseID string) error {
	exists, err := qs.courses.Exists(ctx, courseID)
	if err != nil {
		qs.logger.Error("course check failed", "course_id", courseID, "error", err)
		return err
	}
	if !exists {
		qs.logger.Info("course not found", "course_id", courseID)
		return ErrCourseNotFound
	}
	return nil
}
