package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/course-questions/backend/internal/courses"
	"github.com/course-questions/backend/internal/domain/question"
	"github.com/course-questions/backend/internal/grader"
	"github.com/course-questions/backend/internal/service"
	"github.com/course-questions/backend/internal/store"
)

// testEnv is an API backed by an in-memory store and a fake course service.
type testEnv struct {
	t       *testing.T
	server  *httptest.Server
	store   *store.MemoryStore
	courses map[string]bool
	down    bool
}

func newTestEnv(t *testing.T, emptyListNotFound bool) *testEnv {
	t.Helper()
	env := &testEnv{t: t, store: store.NewMemory(), courses: map[string]bool{"1001": true, "1002": true}}

	courseSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if env.down {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		id := strings.TrimPrefix(r.URL.Path, "/getCourseById/")
		w.Header().Set("Content-Type", "application/json")
		if env.courses[id] {
			w.Write([]byte(`{"courseId":"` + id + `","name":"Course"}`))
			return
		}
		w.Write([]byte(`{}`))
	}))
	t.Cleanup(courseSrv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewQuestionService(env.store, courses.NewClient(courseSrv.URL, time.Second), grader.Loose{}, logger)

	mux := http.NewServeMux()
	RegisterRoutes(mux, NewHandler(svc, logger, emptyListNotFound))
	env.server = httptest.NewServer(Recover(logger)(Logging(logger)(CORS(mux))))
	t.Cleanup(env.server.Close)
	return env
}

func (e *testEnv) do(method, path, body string) (int, []byte) {
	e.t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, e.server.URL+path, reader)
	if err != nil {
		e.t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		e.t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		e.t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, data
}

func decodeBody[T any](t *testing.T, data []byte) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		t.Fatalf("decode %s: %v", data, err)
	}
	return v
}

const validQuestion = `{"courseId":"1001","question":"What is 1 + 1 ?","opt1":"10","opt2":"2","opt3":"1","opt4":"5","ans":"2"}`

func (e *testEnv) createQuestion(body string) CreateQuestionResponse {
	e.t.Helper()
	status, data := e.do(http.MethodPost, "/postQuestion", body)
	if status != http.StatusCreated {
		e.t.Fatalf("expected 201, got %d: %s", status, data)
	}
	return decodeBody[CreateQuestionResponse](e.t, data)
}

func TestIndex(t *testing.T) {
	env := newTestEnv(t, true)

	status, data := env.do(http.MethodGet, "/", "")
	if status != http.StatusOK || string(data) != "Course Questions API is running!" {
		t.Errorf("unexpected response %d %q", status, data)
	}
}

func TestPostQuestion(t *testing.T) {
	env := newTestEnv(t, true)

	first := env.createQuestion(validQuestion)
	second := env.createQuestion(validQuestion)

	if first.ID == 0 || first.ID == second.ID {
		t.Errorf("expected distinct IDs, got %d and %d", first.ID, second.ID)
	}
	if first.CourseID != "1001" || first.Question != "What is 1 + 1 ?" {
		t.Errorf("unexpected response %+v", first)
	}
}

func TestPostQuestion_RoundTrip(t *testing.T) {
	env := newTestEnv(t, true)
	created := env.createQuestion(validQuestion)

	status, data := env.do(http.MethodGet, "/getQuestionsByCourseId/1001", "")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	listed := decodeBody[[]QuestionResponse](t, data)
	want := QuestionResponse{
		QuestionID: created.ID, CourseID: "1001", Question: "What is 1 + 1 ?",
		Opt1: "10", Opt2: "2", Opt3: "1", Opt4: "5",
	}
	if len(listed) != 1 || listed[0] != want {
		t.Fatalf("expected [%+v], got %+v", want, listed)
	}
	if bytes.Contains(data, []byte(`"ans"`)) {
		t.Error("list responses must not expose the answer")
	}

	stored, err := env.store.GetQuestion(t.Context(), created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Ans != "2" {
		t.Errorf("expected stored answer %q, got %q", "2", stored.Ans)
	}
}

func TestPostQuestion_NumericFields(t *testing.T) {
	env := newTestEnv(t, true)

	created := env.createQuestion(`{"courseId":1001,"question":"What is 1 + 1 ?","opt1":10,"opt2":2,"opt3":1,"opt4":5,"ans":2}`)

	stored, err := env.store.GetQuestion(t.Context(), created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.CourseID != "1001" || stored.Opt1 != "10" || stored.Ans != "2" {
		t.Errorf("unexpected stored question %+v", stored)
	}
}

// TestPostQuestion_CanonicalNumbers verifies numeric fields are stored in
// their printed form, so a later string answer grades the same way.
func TestPostQuestion_CanonicalNumbers(t *testing.T) {
	env := newTestEnv(t, true)

	created := env.createQuestion(`{"courseId":"1001","question":"Q","opt1":1e3,"opt2":"b","opt3":"c","opt4":"d","ans":2.0}`)

	stored, err := env.store.GetQuestion(t.Context(), created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Opt1 != "1000" || stored.Ans != "2" {
		t.Errorf("expected opt1 %q and ans %q, got %q and %q", "1000", "2", stored.Opt1, stored.Ans)
	}

	_, data := env.do(http.MethodPost, "/checkAnswer", `{"questionId":`+jsonID(created.ID)+`,"ans":"2"}`)
	if msg := decodeBody[MessageResponse](t, data); msg.Message != "The answer is correct :)" {
		t.Errorf("expected a correct verdict, got %q", msg.Message)
	}
}

func TestPostQuestion_MissingField(t *testing.T) {
	env := newTestEnv(t, true)

	status, data := env.do(http.MethodPost, "/postQuestion", `{"courseId":"1001","question":"Q","opt1":"a","opt2":"b","opt3":"c","opt4":"d"}`)
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if msg := decodeBody[MessageResponse](t, data); msg.Message != "ans is required" {
		t.Errorf("unexpected message %q", msg.Message)
	}
}

func TestPostQuestion_InvalidJSON(t *testing.T) {
	env := newTestEnv(t, true)

	status, _ := env.do(http.MethodPost, "/postQuestion", `{"courseId":`)
	if status != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", status)
	}
}

func TestPostQuestion_CourseMissing(t *testing.T) {
	env := newTestEnv(t, true)

	status, data := env.do(http.MethodPost, "/postQuestion", strings.Replace(validQuestion, "1001", "9999", 1))
	if status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}
	if msg := decodeBody[MessageResponse](t, data); msg.Message != "No course found. Invalid course ID." {
		t.Errorf("unexpected message %q", msg.Message)
	}

	if all, _ := env.store.ListQuestions(t.Context()); len(all) != 0 {
		t.Errorf("expected nothing stored, got %d", len(all))
	}
}

func TestPostQuestion_CourseServiceDown(t *testing.T) {
	env := newTestEnv(t, true)
	env.down = true

	status, data := env.do(http.MethodPost, "/postQuestion", validQuestion)
	if status != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", status)
	}
	if msg := decodeBody[MessageResponse](t, data); msg.Message != "Course service unavailable." {
		t.Errorf("unexpected message %q", msg.Message)
	}
	if all, _ := env.store.ListQuestions(t.Context()); len(all) != 0 {
		t.Errorf("expected nothing stored, got %d", len(all))
	}
}

func TestUpdateQuestion(t *testing.T) {
	env := newTestEnv(t, true)
	created := env.createQuestion(validQuestion)
	path := "/updateQuestion/" + jsonID(created.ID)

	status, data := env.do(http.MethodPut, path, `{"courseId":"1002","question":"Q2","opt1":"w","opt2":"x","opt3":"y","opt4":"z","ans":"y"}`)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, data)
	}
	msg := decodeBody[QuestionMessageResponse](t, data)
	if msg.Message != "Question updated successfully." || msg.QuestionID != jsonID(created.ID) {
		t.Errorf("unexpected response %+v", msg)
	}

	stored, _ := env.store.GetQuestion(t.Context(), created.ID)
	if stored.CourseID != "1002" || stored.Question != "Q2" || stored.Ans != "y" {
		t.Errorf("expected every field rewritten, got %+v", stored)
	}
}

func TestUpdateQuestion_Failures(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		body   string
		down   bool
		status int
	}{
		{"course missing", "", strings.Replace(validQuestion, "1001", "9999", 1), false, http.StatusNotFound},
		{"unknown id", "/updateQuestion/999", validQuestion, false, http.StatusNotFound},
		{"non-numeric id", "/updateQuestion/abc", validQuestion, false, http.StatusNotFound},
		{"partial body", "", `{"courseId":"1001","question":"only this"}`, false, http.StatusBadRequest},
		{"course service down", "", validQuestion, true, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, true)
			created := env.createQuestion(validQuestion)
			path := tt.path
			if path == "" {
				path = "/updateQuestion/" + jsonID(created.ID)
			}
			env.down = tt.down

			status, data := env.do(http.MethodPut, path, tt.body)
			if status != tt.status {
				t.Fatalf("expected %d, got %d: %s", tt.status, status, data)
			}

			stored, _ := env.store.GetQuestion(t.Context(), created.ID)
			if stored.CourseID != "1001" || stored.Question != "What is 1 + 1 ?" {
				t.Errorf("expected record unchanged, got %+v", stored)
			}
		})
	}
}

func TestDeleteQuestion(t *testing.T) {
	env := newTestEnv(t, true)
	created := env.createQuestion(validQuestion)

	status, _ := env.do(http.MethodDelete, "/deleteQuestion/999", "")
	if status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}
	if all, _ := env.store.ListQuestions(t.Context()); len(all) != 1 {
		t.Fatalf("expected store unchanged, got %d questions", len(all))
	}

	status, data := env.do(http.MethodDelete, "/deleteQuestion/"+jsonID(created.ID), "")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	msg := decodeBody[QuestionMessageResponse](t, data)
	if msg.Message != "Question deleted successfully" || msg.QuestionID != jsonID(created.ID) {
		t.Errorf("unexpected response %+v", msg)
	}
}

// TestListQuestions_EmptyIsNotFound asserts that an empty course and an
// empty table produce the same 404.
func TestListQuestions_EmptyIsNotFound(t *testing.T) {
	env := newTestEnv(t, true)

	allStatus, allBody := env.do(http.MethodGet, "/getAllQuestions", "")
	courseStatus, courseBody := env.do(http.MethodGet, "/getQuestionsByCourseId/1001", "")
	if allStatus != http.StatusNotFound || courseStatus != http.StatusNotFound {
		t.Fatalf("expected 404 for both, got %d and %d", allStatus, courseStatus)
	}
	if !bytes.Equal(allBody, courseBody) {
		t.Errorf("expected identical bodies, got %s and %s", allBody, courseBody)
	}

	env.createQuestion(validQuestion)
	courseStatus, courseBody2 := env.do(http.MethodGet, "/getQuestionsByCourseId/1002", "")
	if courseStatus != http.StatusNotFound || !bytes.Equal(courseBody2, allBody) {
		t.Errorf("expected empty course to match empty table, got %d %s", courseStatus, courseBody2)
	}
}

func TestListQuestions_EmptyAsEmptyArray(t *testing.T) {
	env := newTestEnv(t, false)

	for _, path := range []string{"/getAllQuestions", "/getQuestionsByCourseId/1001"} {
		status, data := env.do(http.MethodGet, path, "")
		if status != http.StatusOK || strings.TrimSpace(string(data)) != "[]" {
			t.Errorf("%s: expected 200 [], got %d %s", path, status, data)
		}
	}
}

func TestGetAllQuestions(t *testing.T) {
	env := newTestEnv(t, true)
	env.createQuestion(validQuestion)
	env.createQuestion(strings.Replace(validQuestion, "1001", "1002", 1))

	status, data := env.do(http.MethodGet, "/getAllQuestions", "")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if listed := decodeBody[[]QuestionResponse](t, data); len(listed) != 2 {
		t.Errorf("expected 2 questions, got %d", len(listed))
	}
}

func TestCheckAnswer(t *testing.T) {
	env := newTestEnv(t, true)
	created := env.createQuestion(validQuestion)
	id := jsonID(created.ID)

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"numeric string", `{"questionId":` + id + `,"ans":"2"}`, "The answer is correct :)"},
		{"number", `{"questionId":"` + id + `","ans":2}`, "The answer is correct :)"},
		{"wrong", `{"questionId":` + id + `,"ans":"3"}`, "The answer is wrong :( Try again."},
		{"unknown question", `{"questionId":999,"ans":"2"}`, "Question does not exist."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, data := env.do(http.MethodPost, "/checkAnswer", tt.body)
			if status != http.StatusOK {
				t.Fatalf("expected 200, got %d: %s", status, data)
			}
			if msg := decodeBody[MessageResponse](t, data); msg.Message != tt.message {
				t.Errorf("expected %q, got %q", tt.message, msg.Message)
			}
		})
	}
}

func TestCheckAnswer_Bodies(t *testing.T) {
	env := newTestEnv(t, true)
	created := env.createQuestion(validQuestion)
	id := jsonID(created.ID)

	_, data := env.do(http.MethodPost, "/checkAnswer", `{"questionId":`+id+`,"ans":2}`)
	correct := decodeBody[CorrectAnswerResponse](t, data)
	if correct.Question != "What is 1 + 1 ?" || correct.Answer != "2" {
		t.Errorf("unexpected correct body %+v", correct)
	}

	_, data = env.do(http.MethodPost, "/checkAnswer", `{"questionId":`+id+`,"ans":3}`)
	wrong := decodeBody[map[string]any](t, data)
	if wrong["question"] != "What is 1 + 1 ?" || wrong["Your answer"] != float64(3) {
		t.Errorf("unexpected wrong body %v", wrong)
	}
}

func TestCheckAnswer_MissingQuestionID(t *testing.T) {
	env := newTestEnv(t, true)

	for _, body := range []string{`{"ans":"2"}`, `{"questionId":"","ans":"2"}`, `{"questionId":0,"ans":"2"}`, `{"questionId":null}`} {
		status, data := env.do(http.MethodPost, "/checkAnswer", body)
		if status != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", body, status)
			continue
		}
		if got := decodeBody[ErrorResponse](t, data); got.Error != "Question ID is required." {
			t.Errorf("%s: unexpected error body %s", body, data)
		}
	}
}

func TestCheckAnswer_TrueSelectsFirstQuestion(t *testing.T) {
	env := newTestEnv(t, true)
	created := env.createQuestion(validQuestion)
	if created.ID != 1 {
		t.Fatalf("expected the first question to get ID 1, got %d", created.ID)
	}

	status, data := env.do(http.MethodPost, "/checkAnswer", `{"questionId":true,"ans":"2"}`)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, data)
	}
	if msg := decodeBody[MessageResponse](t, data); msg.Message != "The answer is correct :)" {
		t.Errorf("expected a correct verdict, got %q", msg.Message)
	}
}

// failingStore fails every question lookup.
type failingStore struct {
	*store.MemoryStore
}

func (failingStore) GetQuestion(context.Context, int64) (*question.Question, error) {
	return nil, errors.New("connection refused")
}

func TestCheckAnswer_StoreFailure(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewQuestionService(failingStore{store.NewMemory()}, courses.NewClient("http://127.0.0.1:0", time.Second), grader.Loose{}, logger)
	mux := http.NewServeMux()
	RegisterRoutes(mux, NewHandler(svc, logger, true))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/checkAnswer", strings.NewReader(`{"questionId":1,"ans":"2"}`))
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if got := decodeBody[ErrorResponse](t, rec.Body.Bytes()); got.Error != "Database query failed." {
		t.Errorf("unexpected error body %s", rec.Body.Bytes())
	}
}

func TestRequestIDHeader(t *testing.T) {
	env := newTestEnv(t, true)

	resp, err := http.Get(env.server.URL + "/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resp.Body.Close()
	if resp.Header.Get(requestIDHeader) == "" {
		t.Error("expected a generated request ID")
	}

	req, _ := http.NewRequest(http.MethodGet, env.server.URL+"/", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resp.Body.Close()
	if got := resp.Header.Get(requestIDHeader); got != "abc-123" {
		t.Errorf("expected request ID to be echoed, got %q", got)
	}
}

func TestRecover(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := Recover(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}

func jsonID(id int64) string {
	b, _ := json.Marshal(id)
	return string(b)
}
