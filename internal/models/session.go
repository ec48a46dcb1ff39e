package models

import "time"

type StudySession struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	DocumentID  string     `json:"document_id"`
	SessionType string     `json:"session_type"`
	StartedAt   time.Time  `json:"started_at"`
	EndedAt     *time.Time `json:"ended_at"`
}

type FlashcardAttempt struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	FlashcardID      string    `json:"flashcard_id"`
	SessionID        string    `json:"session_id"`
	IsCorrect        bool      `json:"is_correct"`
	DifficultyRating int       `json:"difficulty_rating"`
	CreatedAt        time.Time `json:"created_at"`
}

type QuizAttempt struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	QuizID         string    `json:"quiz_id"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	CorrectAnswers int       `json:"correct_answers"`
	CreatedAt      time.Time `json:"created_at"`
}
