package api_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyaid/internal/models"
)

func TestStartAndEndSession(t *testing.T) {
	env := newTestEnv(t)
	docID := env.uploadDocument(t, "Algebra", "lecture text")

	rec := env.postJSON(t, "/analytics/session/start", map[string]string{"document_id": docID})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var started map[string]string
	decodeJSON(t, rec, &started)
	assert.Equal(t, "started", started["status"])
	require.NotEmpty(t, started["id"])

	rec = env.postJSON(t, "/analytics/session/"+started["id"]+"/end", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var ended map[string]string
	decodeJSON(t, rec, &ended)
	assert.Equal(t, "ended", ended["status"])
	assert.Equal(t, started["id"], ended["session_id"])

	// Ending again is harmless
	rec = env.postJSON(t, "/analytics/session/"+started["id"]+"/end", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStartSession_UnknownDocument(t *testing.T) {
	env := newTestEnv(t)

	rec := env.postJSON(t, "/analytics/session/start", map[string]string{"document_id": "missing"})

	assertDetail(t, rec, http.StatusNotFound, "Document not found")
}

func TestStartSession_InvalidJSON(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/analytics/session/start", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]string
	decodeJSON(t, rec, &body)
	assert.True(t, strings.HasPrefix(body["detail"], "Invalid JSON body"), body["detail"])
}

func TestEndSession_Unknown(t *testing.T) {
	env := newTestEnv(t)

	rec := env.postJSON(t, "/analytics/session/missing/end", nil)

	assertDetail(t, rec, http.StatusNotFound, "Study session not found")
}

func TestFlashcardAttempt(t *testing.T) {
	env := newTestEnv(t)
	docID := env.uploadDocument(t, "Algebra", "lecture text")
	env.processDocument(t, docID)

	rec := env.postJSON(t, "/analytics/session/start", map[string]string{"document_id": docID})
	require.Equal(t, http.StatusOK, rec.Code)
	var started map[string]string
	decodeJSON(t, rec, &started)

	rec = env.postJSON(t, "/analytics/flashcard/attempt", map[string]any{
		"flashcard_id":      "fc-" + docID + "-1",
		"session_id":        started["id"],
		"is_correct":        true,
		"difficulty_rating": 5,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var tracked map[string]string
	decodeJSON(t, rec, &tracked)
	assert.Equal(t, "tracked", tracked["status"])
	assert.NotEmpty(t, tracked["attempt_id"])
}

func TestFlashcardAttempt_UnknownFlashcard(t *testing.T) {
	env := newTestEnv(t)

	rec := env.postJSON(t, "/analytics/flashcard/attempt", map[string]any{
		"flashcard_id": "missing",
		"is_correct":   true,
	})

	assertDetail(t, rec, http.StatusNotFound, "Flashcard not found")
}

func TestFlashcardAttempt_RejectsBadRating(t *testing.T) {
	env := newTestEnv(t)

	rec := env.postJSON(t, "/analytics/flashcard/attempt", map[string]any{
		"flashcard_id":      "fc-x-1",
		"difficulty_rating": 2,
	})

	assertDetail(t, rec, http.StatusBadRequest, "validation failed for difficulty_rating: must be 1 (hard), 3 (medium), or 5 (easy)")
}

func TestQuizAttempt_RecomputesScore(t *testing.T) {
	env := newTestEnv(t)
	docID := env.uploadDocument(t, "Algebra", "lecture text")
	env.processDocument(t, docID)

	// The reported score is nonsense on purpose
	rec := env.postJSON(t, "/analytics/quiz/attempt", map[string]any{
		"quiz_id":         "quiz-" + docID,
		"score":           9999,
		"total_questions": 4,
		"correct_answers": 3,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var tracked map[string]string
	decodeJSON(t, rec, &tracked)
	assert.Equal(t, "tracked", tracked["status"])
	assert.NotEmpty(t, tracked["quiz_attempt_id"])

	rec = env.get(t, "/analytics/pagedata")
	require.Equal(t, http.StatusOK, rec.Code)
	var data models.AnalyticsPageData
	decodeJSON(t, rec, &data)
	assert.Equal(t, 1, data.OverallAnalytics.TotalQuizzesCompleted)
	assert.InDelta(t, 75.0, data.OverallAnalytics.AverageQuizScoreOverall, 0.01)
	require.Len(t, data.QuizPerformanceChartData, 1)
	assert.Equal(t, 75, data.QuizPerformanceChartData[0].Score)
	assert.Equal(t, "Quiz: Algebra", data.QuizPerformanceChartData[0].QuizTitle)
}

func TestQuizAttempt_UnknownQuiz(t *testing.T) {
	env := newTestEnv(t)

	rec := env.postJSON(t, "/analytics/quiz/attempt", map[string]any{"quiz_id": "missing"})

	assertDetail(t, rec, http.StatusNotFound, "Quiz not found")
}

func TestAnalyticsPageData_Empty(t *testing.T) {
	env := newTestEnv(t)

	rec := env.get(t, "/analytics/pagedata")
	require.Equal(t, http.StatusOK, rec.Code)

	var data models.AnalyticsPageData
	decodeJSON(t, rec, &data)
	assert.Equal(t, models.OverallAnalytics{}, data.OverallAnalytics)
	assert.Len(t, data.StudySessionsChartData, 7)
	require.NotNil(t, data.FlashcardPerformanceChartData)
	assert.Len(t, data.FlashcardPerformanceChartData, 0)
	require.NotNil(t, data.QuizPerformanceChartData)
	assert.Len(t, data.QuizPerformanceChartData, 0)
}

func TestAnalyticsPageData_CountsSessions(t *testing.T) {
	env := newTestEnv(t)
	docID := env.uploadDocument(t, "Algebra", "lecture text")

	rec := env.postJSON(t, "/analytics/session/start", map[string]string{"document_id": docID})
	require.Equal(t, http.StatusOK, rec.Code)
	var started map[string]string
	decodeJSON(t, rec, &started)
	rec = env.postJSON(t, "/analytics/session/"+started["id"]+"/end", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.get(t, "/analytics/pagedata")
	require.Equal(t, http.StatusOK, rec.Code)
	var data models.AnalyticsPageData
	decodeJSON(t, rec, &data)
	assert.Equal(t, 1, data.OverallAnalytics.StudySessionsThisWeekCount)
	assert.Equal(t, 1, data.OverallAnalytics.CurrentStreak)

	// Today is the last chart point and carries the session
	last := data.StudySessionsChartData[len(data.StudySessionsChartData)-1]
	assert.Equal(t, 1, last.Sessions)
}
