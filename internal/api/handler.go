// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/course-questions/backend/internal/courses"
	"github.com/course-questions/backend/internal/service"
)

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	questions *service.QuestionService
	logger    *slog.Logger

	// emptyListNotFound answers 404 for empty lists, as older clients expect.
	emptyListNotFound bool
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(questions *service.QuestionService, logger *slog.Logger, emptyListNotFound bool) *Handler {
	return &Handler{
		questions:         questions,
		logger:            logger,
		emptyListNotFound: emptyListNotFound,
	}
}

// MessageResponse is the body of every error and of plain acknowledgements.
type MessageResponse struct {
	Message string `json:"message" example:"No questions available"`
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError writes a fixed, client-safe message.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, MessageResponse{Message: message})
}

type validator interface {
	Validate() error
}

// decodeJSON decodes the request body into v. Numbers are kept as
// json.Number so answers can be compared without float rounding.
// Returns false after writing a 400 if the body is not valid JSON.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

func decodeAndValidate(w http.ResponseWriter, r *http.Request, v validator) bool {
	if !decodeJSON(w, r, v) {
		return false
	}
	if err := v.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// handleServiceError maps service errors to HTTP responses. Unknown errors
// are logged and answered with fallback. Returns true if an error was
// handled (caller should return).
func (h *Handler) handleServiceError(w http.ResponseWriter, err error, fallback string) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, service.ErrCourseNotFound):
		respondError(w, http.StatusNotFound, "No course found. Invalid course ID.")
	case errors.Is(err, service.ErrQuestionNotFound):
		respondError(w, http.StatusNotFound, "Question ID invalid")
	case courses.IsCheckFailed(err):
		respondError(w, http.StatusServiceUnavailable, "Course service unavailable.")
	default:
		h.logger.Error("request failed", "error", err)
		respondError(w, http.StatusInternalServerError, fallback)
	}
	return true
}
