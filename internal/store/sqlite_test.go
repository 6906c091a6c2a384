package store_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/course-questions/backend/internal/domain/question"
	"github.com/course-questions/backend/internal/store"
)

func newTestStore(t *testing.T) *store.SQLStore {
	t.Helper()
	s, err := store.NewSQLite(context.Background(), filepath.Join(t.TempDir(), "questions.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestCreateQuestion_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	q := question.New("1001", "What is 1 + 1 ?", "10", "2", "1", "5", "2")
	if err := s.CreateQuestion(ctx, q); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.ID == 0 {
		t.Fatal("expected an assigned ID")
	}

	got, err := s.ListQuestionsByCourse(ctx, "1001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 question, got %d", len(got))
	}
	if got[0] != *q {
		t.Errorf("expected %+v, got %+v", *q, got[0])
	}
}

func TestCreateQuestion_IDsNeverReused(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	first := question.New("1001", "Q1", "a", "b", "c", "d", "a")
	second := question.New("1001", "Q2", "a", "b", "c", "d", "b")
	if err := s.CreateQuestion(ctx, first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.CreateQuestion(ctx, second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.ID == second.ID {
		t.Fatalf("expected distinct IDs, both were %d", first.ID)
	}

	if err := s.DeleteQuestion(ctx, second.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	third := question.New("1001", "Q3", "a", "b", "c", "d", "c")
	if err := s.CreateQuestion(ctx, third); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if third.ID == first.ID || third.ID == second.ID {
		t.Errorf("expected a fresh ID, got %d (previous %d, %d)", third.ID, first.ID, second.ID)
	}
}

func TestListQuestions_Empty(t *testing.T) {
	s := newTestStore(t)

	all, err := s.ListQuestions(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("expected no questions, got %d", len(all))
	}

	byCourse, err := s.ListQuestionsByCourse(context.Background(), "1001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(byCourse) != 0 {
		t.Errorf("expected no questions, got %d", len(byCourse))
	}
}

func TestListQuestionsByCourse_FiltersCourse(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	for _, courseID := range []string{"1001", "1002", "1001"} {
		if err := s.CreateQuestion(ctx, question.New(courseID, "Q", "a", "b", "c", "d", "a")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	got, err := s.ListQuestionsByCourse(ctx, "1001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(got))
	}
	for _, q := range got {
		if q.CourseID != "1001" {
			t.Errorf("unexpected course %q", q.CourseID)
		}
	}

	all, err := s.ListQuestions(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 questions, got %d", len(all))
	}
}

func TestUpdateQuestion_RewritesEveryField(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	q := question.New("1001", "Q", "a", "b", "c", "d", "a")
	if err := s.CreateQuestion(ctx, q); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated := question.Question{
		ID: q.ID, CourseID: "1002", Question: "Q'",
		Opt1: "w", Opt2: "x", Opt3: "y", Opt4: "z", Ans: "z",
	}
	if err := s.UpdateQuestion(ctx, updated); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := s.GetQuestion(ctx, q.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *got != updated {
		t.Errorf("expected %+v, got %+v", updated, *got)
	}

	// Writing the same values again still matches the row.
	if err := s.UpdateQuestion(ctx, updated); err != nil {
		t.Errorf("expected identical update to succeed, got %v", err)
	}
}

func TestUpdateQuestion_NotFound(t *testing.T) {
	s := newTestStore(t)

	err := s.UpdateQuestion(context.Background(), question.Question{ID: 99, CourseID: "1001"})
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteQuestion(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	q := question.New("1001", "Q", "a", "b", "c", "d", "a")
	if err := s.CreateQuestion(ctx, q); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := s.DeleteQuestion(ctx, q.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.GetQuestion(ctx, q.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestDeleteQuestion_NotFoundLeavesStoreUnchanged(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	q := question.New("1001", "Q", "a", "b", "c", "d", "a")
	if err := s.CreateQuestion(ctx, q); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := s.DeleteQuestion(ctx, q.ID+100); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	all, err := s.ListQuestions(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 1 || all[0] != *q {
		t.Errorf("expected store unchanged, got %+v", all)
	}
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	if _, err := store.Open(context.Background(), "oracle", ""); err == nil {
		t.Error("expected error for unsupported driver")
	}
}
