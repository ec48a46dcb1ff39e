package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.loggingMiddleware)
	r.Use(recoveryMiddleware)
	r.Use(s.maxBodyMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/ping", s.handlePing)
	r.Get("/health", s.handleHealth)
	r.Get("/test", s.handleTest)

	r.Get("/documents", s.handleListDocuments)
	r.Post("/documents/upload", s.handleUploadDocument)
	r.Get("/documents/{id}", s.handleGetDocument)
	r.Post("/documents/{id}/process", s.handleProcessDocument)

	r.Get("/analytics/pagedata", s.handleAnalyticsPageData)
	r.Post("/analytics/session/start", s.handleStartSession)
	r.Post("/analytics/session/{id}/end", s.handleEndSession)
	r.Post("/analytics/flashcard/attempt", s.handleFlashcardAttempt)
	r.Post("/analytics/quiz/attempt", s.handleQuizAttempt)

	// One-shot endpoints that work on raw text without persisting
	r.Post("/upload-pdf", s.handleUploadPDF)
	r.Post("/generate-summary", s.handleGenerateSummary)
	r.Post("/generate-quiz", s.handleGenerateQuiz)
	r.Post("/generate-flashcards", s.handleGenerateFlashcards)

	return r
}
