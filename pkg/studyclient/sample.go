package studyclient

import (
	"context"
	"fmt"
	"time"
)

// SampleSource serves the fixed illustrative dataset shown when no
// backend is configured. Tracking calls succeed with synthetic ids and
// record nothing.
type SampleSource struct{}

func (SampleSource) Demo() bool { return true }

func (SampleSource) ListDocuments(ctx context.Context) ([]DocumentListItem, error) {
	return []DocumentListItem{
		{ID: "doc-sample-1", Title: "Introduction to AI", CreatedAt: sampleDate(2025, 6, 1)},
		{ID: "doc-sample-2", Title: "Machine Learning Basics", CreatedAt: sampleDate(2025, 6, 4)},
		{ID: "doc-sample-3", Title: "Neural Networks", CreatedAt: sampleDate(2025, 6, 8)},
	}, nil
}

func (SampleSource) GetDocument(ctx context.Context, id string) (*DocumentDetail, error) {
	now := time.Now().UTC()
	return &DocumentDetail{
		Document: Document{
			ID:        id,
			UserID:    "default-user-id",
			Title:     "Sample Document: AI Fundamentals",
			FilePath:  fmt.Sprintf("/uploads/%s.pdf", id),
			CreatedAt: now,
		},
		Summary: &Summary{
			ID:         "sum-" + id,
			DocumentID: id,
			Content: "This document provides a comprehensive introduction to Artificial Intelligence, " +
				"covering key concepts such as machine learning, neural networks, natural language processing, " +
				"and computer vision. It explores the historical development of AI, current applications across " +
				"various industries, and future prospects for AI technology.",
			CreatedAt: now,
		},
		Flashcards: []Flashcard{
			{
				ID:         fmt.Sprintf("fc-%s-1", id),
				DocumentID: id,
				Question:   "What is Artificial Intelligence?",
				Answer:     "Artificial Intelligence is the simulation of human intelligence processes by machines, especially computer systems.",
				CreatedAt:  now,
			},
			{
				ID:         fmt.Sprintf("fc-%s-2", id),
				DocumentID: id,
				Question:   "What are the main types of machine learning?",
				Answer:     "Supervised learning, unsupervised learning, and reinforcement learning.",
				CreatedAt:  now,
			},
			{
				ID:         fmt.Sprintf("fc-%s-3", id),
				DocumentID: id,
				Question:   "What is a neural network?",
				Answer:     "A computing system inspired by biological neural networks that processes information using interconnected nodes.",
				CreatedAt:  now,
			},
		},
		Quiz: &Quiz{
			ID:         "quiz-" + id,
			DocumentID: id,
			Title:      "AI Fundamentals Quiz",
			CreatedAt:  now,
			Questions: []QuizQuestion{
				{
					ID:            fmt.Sprintf("q-%s-1", id),
					QuizID:        "quiz-" + id,
					Question:      "Which of the following is a subset of AI focused on learning from data?",
					Options:       []string{"Machine Learning", "Computer Graphics", "Database Management", "Web Development"},
					CorrectAnswer: "Machine Learning",
					CreatedAt:     now,
				},
				{
					ID:            fmt.Sprintf("q-%s-2", id),
					QuizID:        "quiz-" + id,
					Question:      "What type of AI can perform any intellectual task that a human can do?",
					Options:       []string{"Narrow AI", "General AI", "Super AI", "Weak AI"},
					CorrectAnswer: "General AI",
					CreatedAt:     now,
				},
			},
		},
	}, nil
}

func (SampleSource) AnalyticsPageData(ctx context.Context) (*AnalyticsPageData, error) {
	return &AnalyticsPageData{
		OverallAnalytics: OverallAnalytics{
			TotalStudyTime:             3600,
			CurrentStreak:              3,
			LongestStreak:              5,
			TotalFlashcardsSeen:        50,
			TotalFlashcardsMastered:    30,
			FlashcardAccuracyOverall:   75.0,
			TotalQuizzesCompleted:      10,
			AverageQuizScoreOverall:    85.0,
			StudySessionsThisWeekCount: 5,
		},
		StudySessionsChartData: []StudySessionPoint{
			{Date: "2025-06-06", Duration: 30, Sessions: 1},
			{Date: "2025-06-07", Duration: 45, Sessions: 2},
			{Date: "2025-06-08", Duration: 60, Sessions: 2},
			{Date: "2025-06-09", Duration: 30, Sessions: 1},
			{Date: "2025-06-10", Duration: 90, Sessions: 3},
			{Date: "2025-06-11", Duration: 60, Sessions: 2},
			{Date: "2025-06-12", Duration: 45, Sessions: 2},
		},
		FlashcardPerformanceChartData: []FlashcardPerformancePoint{
			{DocumentTitle: "Introduction to AI", Accuracy: 85.0, Attempts: 20},
			{DocumentTitle: "Machine Learning Basics", Accuracy: 75.0, Attempts: 15},
			{DocumentTitle: "Neural Networks", Accuracy: 70.0, Attempts: 10},
		},
		QuizPerformanceChartData: []QuizPerformancePoint{
			{Date: "2025-06-01", Score: 75, QuizTitle: "AI Quiz 1"},
			{Date: "2025-06-03", Score: 80, QuizTitle: "ML Quiz"},
			{Date: "2025-06-06", Score: 85, QuizTitle: "NN Quiz"},
			{Date: "2025-06-09", Score: 90, QuizTitle: "AI Quiz 2"},
			{Date: "2025-06-12", Score: 95, QuizTitle: "Final Quiz"},
		},
	}, nil
}

func (SampleSource) StartSession(ctx context.Context, documentID, sessionType string) (string, error) {
	return fmt.Sprintf("session-%d", time.Now().Unix()), nil
}

func (SampleSource) EndSession(ctx context.Context, sessionID string) error { return nil }

func (SampleSource) RecordFlashcardAttempt(ctx context.Context, attempt FlashcardAttempt) error {
	return nil
}

func (SampleSource) RecordQuizAttempt(ctx context.Context, attempt QuizAttempt) error { return nil }

func sampleDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
