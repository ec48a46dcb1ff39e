package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"studyaid/internal/models"
)

type startSessionRequest struct {
	UserID      string `json:"user_id"`
	DocumentID  string `json:"document_id"`
	SessionType string `json:"session_type"`
}

type flashcardAttemptRequest struct {
	UserID           string `json:"user_id"`
	FlashcardID      string `json:"flashcard_id"`
	SessionID        string `json:"session_id"`
	IsCorrect        bool   `json:"is_correct"`
	DifficultyRating int    `json:"difficulty_rating"`
}

type quizAttemptRequest struct {
	UserID         string `json:"user_id"`
	QuizID         string `json:"quiz_id"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"total_questions"`
	CorrectAnswers int    `json:"correct_answers"`
}

func (s *Server) handleAnalyticsPageData(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")

	data, err := s.Analytics.PageData(r.Context(), userID, time.Now().UTC())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if err := readJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	session, err := s.Study.StartSession(r.Context(), req.UserID, req.DocumentID, req.SessionType)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": session.ID, "status": "started"})
}

func (s *Server) handleEndSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.Study.EndSession(r.Context(), id); err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ended", "session_id": id})
}

func (s *Server) handleFlashcardAttempt(w http.ResponseWriter, r *http.Request) {
	var req flashcardAttemptRequest
	if err := readJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	attempt, err := s.Study.RecordFlashcardAttempt(r.Context(), models.FlashcardAttempt{
		UserID:           req.UserID,
		FlashcardID:      req.FlashcardID,
		SessionID:        req.SessionID,
		IsCorrect:        req.IsCorrect,
		DifficultyRating: req.DifficultyRating,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "tracked", "attempt_id": attempt.ID})
}

func (s *Server) handleQuizAttempt(w http.ResponseWriter, r *http.Request) {
	var req quizAttemptRequest
	if err := readJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	attempt, err := s.Study.RecordQuizAttempt(r.Context(), models.QuizAttempt{
		UserID:         req.UserID,
		QuizID:         req.QuizID,
		Score:          req.Score,
		TotalQuestions: req.TotalQuestions,
		CorrectAnswers: req.CorrectAnswers,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "tracked", "quiz_attempt_id": attempt.ID})
}
