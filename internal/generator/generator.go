// Package generator turns document text into study content through an
// LLM provider.
package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"studyaid/internal/llm"
	"studyaid/internal/models"
	"studyaid/internal/worker"
)

// SummaryContent is the raw summary schema the model responds with.
type SummaryContent struct {
	Summary   string   `json:"summary"`
	KeyPoints []string `json:"key_points"`
}

// QuizContent is the raw quiz schema the model responds with.
type QuizContent struct {
	Questions []RawQuestion `json:"questions"`
}

// RawQuestion carries the correct answer as an option index.
type RawQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

// FlashcardsContent is the raw flashcard schema the model responds with.
type FlashcardsContent struct {
	Flashcards []RawCard `json:"flashcards"`
}

type RawCard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// Bundle is one document's fully assembled study content, ready to
// persist.
type Bundle struct {
	Summary    models.Summary
	Flashcards []models.Flashcard
	Quiz       models.Quiz
}

// Service generates study content from extracted document text
type Service interface {
	GenerateSummary(ctx context.Context, text string) (*SummaryContent, error)
	GenerateQuiz(ctx context.Context, text string) (*QuizContent, error)
	GenerateFlashcards(ctx context.Context, text string) (*FlashcardsContent, error)
	GenerateAll(ctx context.Context, documentID, title, text string) (*Bundle, error)
}

type service struct {
	provider llm.Provider
	pool     *worker.Pool
}

// NewService creates a new generation Service. Every model call runs on
// the pool, which caps concurrent LLM requests process-wide.
func NewService(provider llm.Provider, pool *worker.Pool) Service {
	return &service{provider: provider, pool: pool}
}

// complete runs one prompt against the provider and unmarshals the JSON
// object buried in the response.
func (s *service) complete(ctx context.Context, prompt string, out any) error {
	raw, err := s.provider.Complete(ctx, prompt)
	if err != nil {
		return err
	}
	jsonStr, err := llm.ExtractJSON(raw)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(jsonStr), out)
}

// generate schedules one completion on the pool and waits for it.
func (s *service) generate(ctx context.Context, name, prompt string, out any) error {
	done := make(chan error, 1)
	s.pool.Submit(&worker.FuncJob{
		JobName: name,
		Fn: func(jobCtx context.Context) error {
			return s.complete(jobCtx, prompt, out)
		},
		Done: done,
	})

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *service) GenerateSummary(ctx context.Context, text string) (*SummaryContent, error) {
	log := zerolog.Ctx(ctx)
	log.Debug().Int("text_len", len(text)).Msg("generating summary")

	var content SummaryContent
	if err := s.generate(ctx, "generate_summary", summaryPrompt(text), &content); err != nil {
		log.Error().Err(err).Msg("summary generation failed")
		return nil, err
	}
	return &content, nil
}

func (s *service) GenerateQuiz(ctx context.Context, text string) (*QuizContent, error) {
	log := zerolog.Ctx(ctx)
	log.Debug().Int("text_len", len(text)).Msg("generating quiz")

	var content QuizContent
	if err := s.generate(ctx, "generate_quiz", quizPrompt(text), &content); err != nil {
		log.Error().Err(err).Msg("quiz generation failed")
		return nil, err
	}
	return &content, nil
}

func (s *service) GenerateFlashcards(ctx context.Context, text string) (*FlashcardsContent, error) {
	log := zerolog.Ctx(ctx)
	log.Debug().Int("text_len", len(text)).Msg("generating flashcards")

	var content FlashcardsContent
	if err := s.generate(ctx, "generate_flashcards", flashcardsPrompt(text), &content); err != nil {
		log.Error().Err(err).Msg("flashcard generation failed")
		return nil, err
	}
	return &content, nil
}

// GenerateAll produces a document's summary, quiz, and flashcards in
// parallel and assembles them into persistable models. Any failed
// generation fails the whole bundle.
func (s *service) GenerateAll(ctx context.Context, documentID, title, text string) (*Bundle, error) {
	log := zerolog.Ctx(ctx)
	log.Debug().Str("document_id", documentID).Int("text_len", len(text)).Msg("generating study content")

	var (
		summary SummaryContent
		quiz    QuizContent
		cards   FlashcardsContent
	)

	// Jobs are submitted directly so a single worker is never stuck
	// waiting on its own children
	jobs := []struct {
		name string
		fn   func(context.Context) error
		done chan error
	}{
		{"generate_summary", func(c context.Context) error { return s.complete(c, summaryPrompt(text), &summary) }, make(chan error, 1)},
		{"generate_quiz", func(c context.Context) error { return s.complete(c, quizPrompt(text), &quiz) }, make(chan error, 1)},
		{"generate_flashcards", func(c context.Context) error { return s.complete(c, flashcardsPrompt(text), &cards) }, make(chan error, 1)},
	}
	for _, j := range jobs {
		s.pool.Submit(&worker.FuncJob{JobName: j.name, Fn: j.fn, Done: j.done})
	}
	for _, j := range jobs {
		select {
		case err := <-j.done:
			if err != nil {
				log.Error().Err(err).Str("job", j.name).Msg("generation failed")
				return nil, err
			}
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	bundle, err := assemble(ctx, documentID, title, summary, quiz, cards)
	if err != nil {
		log.Error().Err(err).Str("document_id", documentID).Msg("failed to assemble study content")
		return nil, err
	}
	log.Debug().Str("document_id", documentID).Int("flashcards", len(bundle.Flashcards)).Int("questions", len(bundle.Quiz.Questions)).Msg("study content generated")
	return bundle, nil
}

// assemble maps the raw model schemas onto persistable models, applying
// the deterministic artifact ID scheme. Questions whose answer index
// does not land on an option are dropped rather than stored broken.
func assemble(ctx context.Context, documentID, title string, summary SummaryContent, quiz QuizContent, cards FlashcardsContent) (*Bundle, error) {
	log := zerolog.Ctx(ctx)
	now := time.Now().UTC()

	content := summary.Summary
	if content == "" {
		content = "Summary not available"
	}
	bundle := &Bundle{
		Summary: models.Summary{
			ID:         "sum-" + documentID,
			DocumentID: documentID,
			Content:    content,
			CreatedAt:  now,
		},
	}

	for i, card := range cards.Flashcards {
		bundle.Flashcards = append(bundle.Flashcards, models.Flashcard{
			ID:         fmt.Sprintf("fc-%s-%d", documentID, i+1),
			DocumentID: documentID,
			Question:   card.Front,
			Answer:     card.Back,
			CreatedAt:  now,
		})
	}

	quizID := "quiz-" + documentID
	assembled := models.Quiz{
		ID:         quizID,
		DocumentID: documentID,
		Title:      "Quiz: " + title,
		CreatedAt:  now,
	}
	for i, raw := range quiz.Questions {
		if len(raw.Options) < 2 || raw.CorrectAnswer < 0 || raw.CorrectAnswer >= len(raw.Options) {
			log.Warn().Int("question", i+1).Int("options", len(raw.Options)).Int("correct_answer", raw.CorrectAnswer).Msg("dropping malformed quiz question")
			continue
		}
		assembled.Questions = append(assembled.Questions, models.QuizQuestion{
			ID:            fmt.Sprintf("q-%s-%d", documentID, len(assembled.Questions)+1),
			QuizID:        quizID,
			Question:      raw.Question,
			Options:       raw.Options,
			CorrectAnswer: raw.Options[raw.CorrectAnswer],
			CreatedAt:     now,
		})
	}
	if len(assembled.Questions) == 0 {
		return nil, fmt.Errorf("quiz generation produced no valid questions")
	}
	bundle.Quiz = assembled
	return bundle, nil
}
