package api

import (
	"errors"
	"net/http"

	"github.com/course-questions/backend/internal/domain/question"
)

// ── Request / Response types ────────────────────────────────────────────────

// QuestionRequest carries the full field set for create and update.
// Every field is required; update never writes partial records.
type QuestionRequest struct {
	CourseID Text `json:"courseId" swaggertype:"string" example:"1001"`
	Question Text `json:"question" swaggertype:"string" example:"What is 1 + 1 ?"`
	Opt1     Text `json:"opt1" swaggertype:"string" example:"10"`
	Opt2     Text `json:"opt2" swaggertype:"string" example:"2"`
	Opt3     Text `json:"opt3" swaggertype:"string" example:"1"`
	Opt4     Text `json:"opt4" swaggertype:"string" example:"5"`
	Ans      Text `json:"ans" swaggertype:"string" example:"2"`
}

func (r *QuestionRequest) Validate() error {
	if !r.CourseID.Set || r.CourseID.Value == "" {
		return errors.New("courseId is required")
	}
	fields := []struct {
		name  string
		value Text
	}{
		{"question", r.Question},
		{"opt1", r.Opt1},
		{"opt2", r.Opt2},
		{"opt3", r.Opt3},
		{"opt4", r.Opt4},
		{"ans", r.Ans},
	}
	for _, f := range fields {
		if !f.value.Set {
			return errors.New(f.name + " is required")
		}
	}
	return nil
}

func (r *QuestionRequest) toQuestion() *question.Question {
	return question.New(
		r.CourseID.Value,
		r.Question.Value,
		r.Opt1.Value, r.Opt2.Value, r.Opt3.Value, r.Opt4.Value,
		r.Ans.Value,
	)
}

// QuestionResponse is a listed question. The answer is not exposed.
type QuestionResponse struct {
	QuestionID int64  `json:"questionId" example:"1"`
	CourseID   string `json:"courseId" example:"1001"`
	Question   string `json:"question" example:"What is 1 + 1 ?"`
	Opt1       string `json:"opt1" example:"10"`
	Opt2       string `json:"opt2" example:"2"`
	Opt3       string `json:"opt3" example:"1"`
	Opt4       string `json:"opt4" example:"5"`
}

type CreateQuestionResponse struct {
	ID       int64  `json:"id" example:"1"`
	CourseID string `json:"courseId" example:"1001"`
	Question string `json:"question" example:"What is 1 + 1 ?"`
}

// QuestionMessageResponse acknowledges an update or delete.
type QuestionMessageResponse struct {
	Message    string `json:"message" example:"Question deleted successfully"`
	QuestionID string `json:"questionId" example:"1"`
}

func toQuestionResponses(questions []question.Question) []QuestionResponse {
	response := make([]QuestionResponse, len(questions))
	for i, q := range questions {
		response[i] = QuestionResponse{
			QuestionID: q.ID,
			CourseID:   q.CourseID,
			Question:   q.Question,
			Opt1:       q.Opt1,
			Opt2:       q.Opt2,
			Opt3:       q.Opt3,
			Opt4:       q.Opt4,
		}
	}
	return response
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listQuestions returns every question.
// @Summary      Get all questions
// @Description  Get all questions in the database.
// @Tags         Questions
// @Produce      json
// @Success      200  {array}   QuestionResponse
// @Failure      404  {object}  MessageResponse  "no questions"
// @Failure      500  {object}  MessageResponse
// @Router       /getAllQuestions [get]
func (h *Handler) listQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.questions.ListQuestions(r.Context())
	if h.handleServiceError(w, err, "Server error") {
		return
	}
	h.respondList(w, questions)
}

// listQuestionsByCourse returns the questions of one course.
// @Summary      Get all questions under a course ID
// @Description  Get all questions in the database for the given course ID.
// @Tags         Questions
// @Produce      json
// @Param        id   path      string  true  "The Course ID"
// @Success      200  {array}   QuestionResponse
// @Failure      404  {object}  MessageResponse  "no questions"
// @Failure      500  {object}  MessageResponse
// @Router       /getQuestionsByCourseId/{id} [get]
func (h *Handler) listQuestionsByCourse(w http.ResponseWriter, r *http.Request) {
	courseID := r.PathValue("id")

	questions, err := h.questions.ListQuestionsByCourse(r.Context(), courseID)
	if h.handleServiceError(w, err, "Server error") {
		return
	}
	h.respondList(w, questions)
}

// respondList applies the empty-list policy shared by both list routes.
func (h *Handler) respondList(w http.ResponseWriter, questions []question.Question) {
	if len(questions) == 0 && h.emptyListNotFound {
		respondError(w, http.StatusNotFound, "No questions available")
		return
	}
	respondJSON(w, http.StatusOK, toQuestionResponses(questions))
}

// createQuestion inserts a question for an existing course.
// @Summary      Insert a new question
// @Description  Insert a new question for a course that exists in the course service.
// @Tags         Questions
// @Accept       json
// @Produce      json
// @Param        body  body      QuestionRequest  true  "Question to create"
// @Success      201   {object}  CreateQuestionResponse
// @Failure      400   {object}  MessageResponse
// @Failure      404   {object}  MessageResponse  "course not found"
// @Failure      500   {object}  MessageResponse
// @Failure      503   {object}  MessageResponse  "course service unavailable"
// @Router       /postQuestion [post]
func (h *Handler) createQuestion(w http.ResponseWriter, r *http.Request) {
	var req QuestionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	q := req.toQuestion()
	if h.handleServiceError(w, h.questions.CreateQuestion(r.Context(), q), "Error inserting data.") {
		return
	}

	respondJSON(w, http.StatusCreated, CreateQuestionResponse{
		ID:       q.ID,
		CourseID: q.CourseID,
		Question: q.Question,
	})
}

// updateQuestion replaces every field of a question.
// @Summary      Update a question
// @Description  Replace all fields of a question. The referenced course must exist.
// @Tags         Questions
// @Accept       json
// @Produce      json
// @Param        id    path      string           true  "Question ID"
// @Param        body  body      QuestionRequest  true  "Replacement fields"
// @Success      200   {object}  QuestionMessageResponse
// @Failure      400   {object}  MessageResponse
// @Failure      404   {object}  MessageResponse  "course or question not found"
// @Failure      500   {object}  MessageResponse
// @Failure      503   {object}  MessageResponse  "course service unavailable"
// @Router       /updateQuestion/{id} [put]
func (h *Handler) updateQuestion(w http.ResponseWriter, r *http.Request) {
	rawID := r.PathValue("id")

	var req QuestionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	id, ok := question.ParseID(rawID)
	if !ok {
		respondError(w, http.StatusNotFound, "Question ID invalid")
		return
	}

	q := req.toQuestion()
	q.ID = id
	if h.handleServiceError(w, h.questions.UpdateQuestion(r.Context(), *q), "Error updating data.") {
		return
	}

	respondJSON(w, http.StatusOK, QuestionMessageResponse{
		Message:    "Question updated successfully.",
		QuestionID: rawID,
	})
}

// deleteQuestion removes a question.
// @Summary      Delete a question by ID
// @Description  Deletes a specific question using its unique ID.
// @Tags         Questions
// @Produce      json
// @Param        id   path      string  true  "ID of the question to be deleted"
// @Success      200  {object}  QuestionMessageResponse
// @Failure      404  {object}  MessageResponse  "question not found"
// @Failure      500  {object}  MessageResponse
// @Router       /deleteQuestion/{id} [delete]
func (h *Handler) deleteQuestion(w http.ResponseWriter, r *http.Request) {
	rawID := r.PathValue("id")

	id, ok := question.ParseID(rawID)
	if !ok {
		respondError(w, http.StatusNotFound, "Question ID invalid")
		return
	}

	if h.handleServiceError(w, h.questions.DeleteQuestion(r.Context(), id), "Error deleting question") {
		return
	}

	respondJSON(w, http.StatusOK, QuestionMessageResponse{
		Message:    "Question deleted successfully",
		QuestionID: rawID,
	})
}
