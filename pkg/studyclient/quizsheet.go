package studyclient

import (
	"context"

	"github.com/rs/zerolog"

	"studyaid/internal/study"
)

// QuizSheet collects a user's answers for one quiz. Selections may be
// changed freely before submission; only the latest choice per question
// counts.
type QuizSheet struct {
	source   DataSource
	quiz     Quiz
	selected map[string]string
}

func NewQuizSheet(source DataSource, quiz Quiz) *QuizSheet {
	return &QuizSheet{source: source, quiz: quiz, selected: make(map[string]string)}
}

// Select records the chosen option for a question, replacing any
// earlier choice.
func (q *QuizSheet) Select(questionID, option string) {
	q.selected[questionID] = option
}

// Selected returns the current choice for a question.
func (q *QuizSheet) Selected(questionID string) (string, bool) {
	option, ok := q.selected[questionID]
	return option, ok
}

// Answered is the number of questions with a selection.
func (q *QuizSheet) Answered() int { return len(q.selected) }

// Submit grades the sheet locally and returns the percentage score.
// Unanswered questions count as wrong. The attempt is posted
// best-effort; a recording failure is logged and does not affect the
// returned score. An empty quiz returns ErrNoQuestions without any
// computation or network call.
func (q *QuizSheet) Submit(ctx context.Context) (int, error) {
	total := len(q.quiz.Questions)
	if total == 0 {
		return 0, ErrNoQuestions
	}

	correct := 0
	for _, question := range q.quiz.Questions {
		if q.selected[question.ID] == question.CorrectAnswer {
			correct++
		}
	}
	score := study.Score(correct, total)

	attempt := QuizAttempt{
		QuizID:         q.quiz.ID,
		Score:          score,
		TotalQuestions: total,
		CorrectAnswers: correct,
	}
	if err := q.source.RecordQuizAttempt(ctx, attempt); err != nil {
		zerolog.Ctx(ctx).Warn().
			Err(err).
			Str("quiz_id", q.quiz.ID).
			Msg("quiz attempt not recorded")
	}
	return score, nil
}
