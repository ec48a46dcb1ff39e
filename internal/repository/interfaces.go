package repository

import (
	"context"
	"time"

	"studyaid/internal/models"
)

// DocumentRepository handles documents and their generated study content
type DocumentRepository interface {
	Create(ctx context.Context, doc models.Document) error
	GetByID(ctx context.Context, id string) (*models.Document, error)
	List(ctx context.Context, filter models.DocumentFilter) ([]models.DocumentListItem, error)
	MarkProcessed(ctx context.Context, id string) error
	SaveGenerated(ctx context.Context, documentID string, summary models.Summary, cards []models.Flashcard, quiz models.Quiz) error
	GetSummary(ctx context.Context, documentID string) (*models.Summary, error)
	ListFlashcards(ctx context.Context, documentID string) ([]models.Flashcard, error)
	GetQuiz(ctx context.Context, documentID string) (*models.Quiz, error)
	FlashcardExists(ctx context.Context, id string) (bool, error)
	QuizExists(ctx context.Context, id string) (bool, error)
}

// StudySessionRepository handles study session data access
type StudySessionRepository interface {
	Create(ctx context.Context, session models.StudySession) error
	GetByID(ctx context.Context, id string) (*models.StudySession, error)
	End(ctx context.Context, id string, endedAt time.Time) error
	TotalDurationSeconds(ctx context.Context, userID string) (int, error)
	CountSince(ctx context.Context, userID string, since time.Time) (int, error)
	SessionDates(ctx context.Context, userID string) ([]time.Time, error)
	DailyTotals(ctx context.Context, userID string, from, to time.Time) ([]models.DailyStudyTotal, error)
}

// AttemptRepository handles flashcard and quiz attempt data access
type AttemptRepository interface {
	CreateFlashcardAttempt(ctx context.Context, attempt models.FlashcardAttempt) error
	CreateQuizAttempt(ctx context.Context, attempt models.QuizAttempt) error
	FlashcardTotals(ctx context.Context, userID string) (total, correct int, err error)
	SeenCount(ctx context.Context, userID string) (int, error)
	MasteredCount(ctx context.Context, userID string, minCorrect int) (int, error)
	AccuracyByDocument(ctx context.Context, userID string) ([]models.FlashcardPerformancePoint, error)
	QuizTotals(ctx context.Context, userID string) (completed int, avgScore float64, err error)
	RecentQuizScores(ctx context.Context, userID string, limit int) ([]models.QuizPerformancePoint, error)
}
