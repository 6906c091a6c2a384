package store

import (
	"context"
	"sort"
	"sync"

	"github.com/course-questions/backend/internal/domain/question"
)

// MemoryStore keeps questions in a map. Data is lost on restart; it
// backs tests and DB_DRIVER=memory.
type MemoryStore struct {
	mu        sync.RWMutex
	lastID    int64
	questions map[int64]question.Question
}

// Compile-time check: *MemoryStore satisfies the Store interface.
var _ Store = (*MemoryStore)(nil)

func NewMemory() *MemoryStore {
	return &MemoryStore{questions: make(map[int64]question.Question)}
}

func (s *MemoryStore) Close() error { return nil }

func (s *MemoryStore) ListQuestions(ctx context.Context) ([]question.Question, error) {
	return s.list(func(question.Question) bool { return true }), nil
}

func (s *MemoryStore) ListQuestionsByCourse(ctx context.Context, courseID string) ([]question.Question, error) {
	return s.list(func(q question.Question) bool { return q.CourseID == courseID }), nil
}

func (s *MemoryStore) GetQuestion(ctx context.Context, id int64) (*question.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q, ok := s.questions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &q, nil
}

func (s *MemoryStore) CreateQuestion(ctx context.Context, q *question.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID++
	q.ID = s.lastID
	s.questions[q.ID] = *q
	return nil
}

func (s *MemoryStore) UpdateQuestion(ctx context.Context, q question.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.questions[q.ID]; !ok {
		return ErrNotFound
	}
	s.questions[q.ID] = q
	return nil
}

func (s *MemoryStore) DeleteQuestion(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.questions[id]; !ok {
		return ErrNotFound
	}
	delete(s.questions, id)
	return nil
}

func (s *MemoryStore) list(keep func(question.Question) bool) []question.Question {
	s.mu.RLock()
	defer s.mu.RUnlock()

	questions := []question.Question{}
	for _, q := range s.questions {
		if keep(q) {
			questions = append(questions, q)
		}
	}
	sort.Slice(questions, func(i, j int) bool { return questions[i].ID < questions[j].ID })
	return questions
}
