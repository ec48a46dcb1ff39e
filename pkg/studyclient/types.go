package studyclient

import "time"

// The wire types mirror the server's JSON shapes. The SDK keeps its own
// copies so embedding programs can name them directly.

type Document struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	FilePath  string    `json:"file_path"`
	CreatedAt time.Time `json:"created_at"`
}

type DocumentListItem struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

type Summary struct {
	ID         string    `json:"id"`
	DocumentID string    `json:"document_id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

type Flashcard struct {
	ID         string    `json:"id"`
	DocumentID string    `json:"document_id"`
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	CreatedAt  time.Time `json:"created_at"`
}

type Quiz struct {
	ID         string         `json:"id"`
	DocumentID string         `json:"document_id"`
	Title      string         `json:"title"`
	Questions  []QuizQuestion `json:"questions"`
	CreatedAt  time.Time      `json:"created_at"`
}

type QuizQuestion struct {
	ID            string    `json:"id"`
	QuizID        string    `json:"quiz_id"`
	Question      string    `json:"question"`
	Options       []string  `json:"options"`
	CorrectAnswer string    `json:"correct_answer"`
	CreatedAt     time.Time `json:"created_at"`
}

// DocumentDetail is a document with its generated study content. Summary
// and Quiz are nil while generation is pending or has failed.
type DocumentDetail struct {
	Document
	Summary    *Summary    `json:"summary"`
	Flashcards []Flashcard `json:"flashcards"`
	Quiz       *Quiz       `json:"quiz"`
}

// FlashcardAttempt is one recorded flashcard answer. UserID may be left
// empty, the server substitutes the default user.
type FlashcardAttempt struct {
	UserID           string `json:"user_id,omitempty"`
	FlashcardID      string `json:"flashcard_id"`
	SessionID        string `json:"session_id,omitempty"`
	IsCorrect        bool   `json:"is_correct"`
	DifficultyRating int    `json:"difficulty_rating,omitempty"`
}

// QuizAttempt is one completed quiz. The score is recomputed by the
// server from the counts; the client-side value is sent for parity.
type QuizAttempt struct {
	UserID         string `json:"user_id,omitempty"`
	QuizID         string `json:"quiz_id"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"total_questions"`
	CorrectAnswers int    `json:"correct_answers"`
}

type OverallAnalytics struct {
	TotalStudyTime             int     `json:"total_study_time"`
	CurrentStreak              int     `json:"current_streak"`
	LongestStreak              int     `json:"longest_streak"`
	TotalFlashcardsSeen        int     `json:"total_flashcards_seen"`
	TotalFlashcardsMastered    int     `json:"total_flashcards_mastered"`
	FlashcardAccuracyOverall   float64 `json:"flashcard_accuracy_overall"`
	TotalQuizzesCompleted      int     `json:"total_quizzes_completed"`
	AverageQuizScoreOverall    float64 `json:"average_quiz_score_overall"`
	StudySessionsThisWeekCount int     `json:"study_sessions_this_week_count"`
}

type StudySessionPoint struct {
	Date     string `json:"date"`
	Duration int    `json:"duration"`
	Sessions int    `json:"sessions"`
}

type FlashcardPerformancePoint struct {
	DocumentTitle string  `json:"document_title"`
	Accuracy      float64 `json:"accuracy"`
	Attempts      int     `json:"attempts"`
}

type QuizPerformancePoint struct {
	Date      string `json:"date"`
	Score     int    `json:"score"`
	QuizTitle string `json:"quiz_title"`
}

type AnalyticsPageData struct {
	OverallAnalytics              OverallAnalytics            `json:"overall_analytics"`
	StudySessionsChartData        []StudySessionPoint         `json:"study_sessions_chart_data"`
	FlashcardPerformanceChartData []FlashcardPerformancePoint `json:"flashcard_performance_chart_data"`
	QuizPerformanceChartData      []QuizPerformancePoint      `json:"quiz_performance_chart_data"`
}
