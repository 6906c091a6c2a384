// internal/api/router.go
package api

import (
	"net/http"
)

// RegisterRoutes binds the question API. Paths keep the names existing
// clients already call.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /{$}", h.index)

	// Questions
	mux.HandleFunc("GET /getAllQuestions", h.listQuestions)
	mux.HandleFunc("GET /getQuestionsByCourseId/{id}", h.listQuestionsByCourse)
	mux.HandleFunc("POST /postQuestion", h.createQuestion)
	mux.HandleFunc("PUT /updateQuestion/{id}", h.updateQuestion)
	mux.HandleFunc("DELETE /deleteQuestion/{id}", h.deleteQuestion)

	// Answers
	mux.HandleFunc("POST /checkAnswer", h.checkAnswer)
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("Course Questions API is running!"))
}
