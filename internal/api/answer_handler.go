package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/course-questions/backend/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

// CheckAnswerRequest accepts any JSON value for both fields: ids may come
// as numbers or strings and answers are compared loosely.
type CheckAnswerRequest struct {
	QuestionID any `json:"questionId" swaggertype:"string" example:"1"`
	Ans        any `json:"ans" swaggertype:"string" example:"2"`
}

type CorrectAnswerResponse struct {
	Message  string `json:"message" example:"The answer is correct :)"`
	Question string `json:"question" example:"What is 1 + 1 ?"`
	Answer   string `json:"answer" example:"2"`
}

type WrongAnswerResponse struct {
	Message    string `json:"message" example:"The answer is wrong :( Try again."`
	Question   string `json:"question" example:"What is 1 + 1 ?"`
	YourAnswer any    `json:"Your answer,omitempty" swaggertype:"string" example:"3"`
}

// ErrorResponse is the failure body of /checkAnswer, which existing
// clients read from "error" rather than "message".
type ErrorResponse struct {
	Error string `json:"error" example:"Question ID is required."`
}

// questionIDText turns the submitted id into text. Values a client would
// treat as "no id" (null, "", 0, false) become "" and true selects
// question 1, as a SQL comparison would coerce it.
func questionIDText(v any) string {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		return id
	case json.Number:
		if f, err := id.Float64(); err == nil && f == 0 {
			return ""
		}
		return id.String()
	case bool:
		if !id {
			return ""
		}
		return "1"
	default:
		return fmt.Sprint(id)
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// checkAnswer grades a submitted answer.
// @Summary      Check an answer
// @Description  Compares the submitted answer with the stored one. Always 200 once the question ID is present; the body tells whether the answer is correct or the question does not exist.
// @Tags         Answers
// @Accept       json
// @Produce      json
// @Param        body  body      CheckAnswerRequest  true  "Question ID and answer"
// @Success      200   {object}  CorrectAnswerResponse
// @Failure      400   {object}  ErrorResponse  "question ID missing"
// @Failure      500   {object}  ErrorResponse
// @Router       /checkAnswer [post]
func (h *Handler) checkAnswer(w http.ResponseWriter, r *http.Request) {
	var req CheckAnswerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	verdict, err := h.questions.CheckAnswer(r.Context(), questionIDText(req.QuestionID), req.Ans)
	if errors.Is(err, service.ErrQuestionIDRequired) {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Question ID is required."})
		return
	}
	if err != nil {
		h.logger.Error("check answer failed", "error", err)
		respondJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Database query failed."})
		return
	}

	switch {
	case !verdict.Found:
		respondJSON(w, http.StatusOK, MessageResponse{Message: "Question does not exist."})
	case verdict.Correct:
		respondJSON(w, http.StatusOK, CorrectAnswerResponse{
			Message:  "The answer is correct :)",
			Question: verdict.Question,
			Answer:   verdict.StoredAnswer,
		})
	default:
		respondJSON(w, http.StatusOK, WrongAnswerResponse{
			Message:    "The answer is wrong :( Try again.",
			Question:   verdict.Question,
			YourAnswer: verdict.Submitted,
		})
	}
}
