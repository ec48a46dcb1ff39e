package models

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

// DailyStudyTotal is a per-day aggregate as read from storage, with the
// duration still in seconds.
type DailyStudyTotal struct {
	Date     string `json:"date"`
	Seconds  int    `json:"seconds"`
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
