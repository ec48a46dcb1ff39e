package generator_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyaid/internal/generator"
	"studyaid/internal/llm"
	"studyaid/internal/worker"
)

func newTestService(t *testing.T, provider llm.Provider) generator.Service {
	t.Helper()

	pool := worker.NewPool(3, 16, zerolog.Nop())
	pool.Start(context.Background())
	t.Cleanup(pool.Stop)

	return generator.NewService(provider, pool)
}

func TestGenerateAll_AssemblesBundle(t *testing.T) {
	svc := newTestService(t, &llm.Fake{})

	bundle, err := svc.GenerateAll(context.Background(), "doc-1", "Intro Notes", "lecture text")
	require.NoError(t, err)

	assert.Equal(t, "sum-doc-1", bundle.Summary.ID)
	assert.Equal(t, "doc-1", bundle.Summary.DocumentID)
	assert.Contains(t, bundle.Summary.Content, "core concepts")
	assert.False(t, bundle.Summary.CreatedAt.IsZero())

	require.Len(t, bundle.Flashcards, 3)
	assert.Equal(t, "fc-doc-1-1", bundle.Flashcards[0].ID)
	assert.Equal(t, "fc-doc-1-3", bundle.Flashcards[2].ID)
	assert.Equal(t, "What does the document introduce?", bundle.Flashcards[0].Question)
	assert.Equal(t, "The fundamentals of the subject", bundle.Flashcards[0].Answer)

	assert.Equal(t, "quiz-doc-1", bundle.Quiz.ID)
	assert.Equal(t, "Quiz: Intro Notes", bundle.Quiz.Title)
	require.Len(t, bundle.Quiz.Questions, 2)
	assert.Equal(t, "q-doc-1-1", bundle.Quiz.Questions[0].ID)
	assert.Equal(t, "quiz-doc-1", bundle.Quiz.Questions[0].QuizID)
	assert.Equal(t, "Core concepts", bundle.Quiz.Questions[0].CorrectAnswer)
	assert.Equal(t, "Each building on the previous", bundle.Quiz.Questions[1].CorrectAnswer)
}

func TestGenerateAll_DropsMalformedQuestions(t *testing.T) {
	fake := &llm.Fake{QuizJSON: `{
		"questions": [
			{"question": "Valid?", "options": ["Yes", "No"], "correct_answer": 1, "explanation": "ok"},
			{"question": "Index out of range?", "options": ["A", "B", "C", "D"], "correct_answer": 7, "explanation": ""},
			{"question": "Too few options?", "options": ["Only"], "correct_answer": 0, "explanation": ""}
		]
	}`}
	svc := newTestService(t, fake)

	bundle, err := svc.GenerateAll(context.Background(), "doc-2", "Notes", "text")
	require.NoError(t, err)

	// Survivors are renumbered from 1
	require.Len(t, bundle.Quiz.Questions, 1)
	assert.Equal(t, "q-doc-2-1", bundle.Quiz.Questions[0].ID)
	assert.Equal(t, "Valid?", bundle.Quiz.Questions[0].Question)
	assert.Equal(t, "No", bundle.Quiz.Questions[0].CorrectAnswer)
}

func TestGenerateAll_FailsWhenNoValidQuestions(t *testing.T) {
	fake := &llm.Fake{QuizJSON: `{
		"questions": [
			{"question": "Broken?", "options": ["Only"], "correct_answer": 3, "explanation": ""}
		]
	}`}
	svc := newTestService(t, fake)

	_, err := svc.GenerateAll(context.Background(), "doc-3", "Notes", "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no valid questions")
}

func TestGenerateAll_SummaryFallback(t *testing.T) {
	fake := &llm.Fake{SummaryJSON: `{"key_points": ["Only point"]}`}
	svc := newTestService(t, fake)

	bundle, err := svc.GenerateAll(context.Background(), "doc-4", "Notes", "text")
	require.NoError(t, err)

	assert.Equal(t, "Summary not available", bundle.Summary.Content)
}

func TestGenerateAll_ProviderErrorFailsBundle(t *testing.T) {
	boom := errors.New("model offline")
	svc := newTestService(t, &llm.Fake{Err: boom})

	_, err := svc.GenerateAll(context.Background(), "doc-5", "Notes", "text")
	assert.ErrorIs(t, err, boom)
}

func TestGenerateSummary_ReturnsParsedContent(t *testing.T) {
	svc := newTestService(t, &llm.Fake{})

	content, err := svc.GenerateSummary(context.Background(), "lecture text")
	require.NoError(t, err)

	assert.Contains(t, content.Summary, "fundamentals")
	assert.Len(t, content.KeyPoints, 5)
}

func TestGenerateQuiz_KeepsRawIndexForm(t *testing.T) {
	svc := newTestService(t, &llm.Fake{})

	content, err := svc.GenerateQuiz(context.Background(), "lecture text")
	require.NoError(t, err)

	require.Len(t, content.Questions, 2)
	assert.Equal(t, 0, content.Questions[0].CorrectAnswer)
	assert.Equal(t, 1, content.Questions[1].CorrectAnswer)
	assert.NotEmpty(t, content.Questions[0].Explanation)
}

func TestGenerateQuiz_StripsCodeFence(t *testing.T) {
	fake := &llm.Fake{QuizJSON: "```json\n{\"questions\": [{\"question\": \"Q?\", \"options\": [\"A\", \"B\"], \"correct_answer\": 0, \"explanation\": \"\"}]}\n```"}
	svc := newTestService(t, fake)

	content, err := svc.GenerateQuiz(context.Background(), "text")
	require.NoError(t, err)
	require.Len(t, content.Questions, 1)
	assert.Equal(t, "Q?", content.Questions[0].Question)
}

func TestGenerateFlashcards_ReturnsCards(t *testing.T) {
	svc := newTestService(t, &llm.Fake{})

	content, err := svc.GenerateFlashcards(context.Background(), "lecture text")
	require.NoError(t, err)

	require.Len(t, content.Flashcards, 3)
	assert.Equal(t, "What accompanies each definition?", content.Flashcards[1].Front)
}

func TestGenerateFlashcards_GarbageResponseFails(t *testing.T) {
	fake := &llm.Fake{FlashcardsJSON: "the model rambled with no JSON at all"}
	svc := newTestService(t, fake)

	_, err := svc.GenerateFlashcards(context.Background(), "text")
	assert.Error(t, err)
}
