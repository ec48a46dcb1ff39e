package studyclient

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"studyaid/internal/study"
)

// Difficulty ratings for flashcard attempts.
const (
	RatingHard   = study.RatingHard
	RatingMedium = study.RatingMedium
	RatingEasy   = study.RatingEasy
)

type SessionState int

const (
	SessionNotStarted SessionState = iota
	SessionActive
	SessionEnded
)

// StudySession drives a flashcard study run over one document's deck.
// Start opens a session on the backend; rating and ending are recorded
// best-effort and never block the local state transitions.
type StudySession struct {
	source     DataSource
	documentID string
	cards      []Flashcard

	state      SessionState
	sessionID  string
	startedAt  time.Time
	index      int
	showAnswer bool
}

func NewStudySession(source DataSource, documentID string, cards []Flashcard) *StudySession {
	return &StudySession{source: source, documentID: documentID, cards: cards}
}

func (s *StudySession) State() SessionState { return s.state }
func (s *StudySession) Index() int          { return s.index }
func (s *StudySession) ShowAnswer() bool    { return s.showAnswer }

// Current returns the card under study, nil outside an active session
// or for an empty deck.
func (s *StudySession) Current() *Flashcard {
	if s.state != SessionActive || len(s.cards) == 0 {
		return nil
	}
	return &s.cards[s.index]
}

// Elapsed is the time studied so far in the active session.
func (s *StudySession) Elapsed() time.Duration {
	if s.startedAt.IsZero() {
		return 0
	}
	return time.Since(s.startedAt)
}

// Start opens a session on the backend and activates the deck at the
// first card with the answer hidden. On failure the state stays
// NotStarted and the error is returned.
func (s *StudySession) Start(ctx context.Context) error {
	if s.state != SessionNotStarted {
		return nil
	}
	id, err := s.source.StartSession(ctx, s.documentID, "flashcard")
	if err != nil {
		return err
	}
	s.sessionID = id
	s.startedAt = time.Now().UTC()
	s.state = SessionActive
	s.index = 0
	s.showAnswer = false
	return nil
}

// Next advances to the following card, wrapping past the end.
func (s *StudySession) Next() {
	if s.state != SessionActive {
		return
	}
	s.index = study.WrapNext(s.index, len(s.cards))
}

// Prev steps back one card, wrapping past the start.
func (s *StudySession) Prev() {
	if s.state != SessionActive {
		return
	}
	s.index = study.WrapPrev(s.index, len(s.cards))
}

// ToggleAnswer flips the answer visibility for the current card.
func (s *StudySession) ToggleAnswer() {
	if s.state != SessionActive {
		return
	}
	s.showAnswer = !s.showAnswer
}

// Rate records a difficulty rating for the current card, then advances
// to the next card with the answer hidden. Recording is best-effort: a
// failure is logged and the advance happens regardless.
func (s *StudySession) Rate(ctx context.Context, rating int) {
	card := s.Current()
	if card == nil {
		return
	}
	attempt := FlashcardAttempt{
		FlashcardID:      card.ID,
		SessionID:        s.sessionID,
		IsCorrect:        study.RatingCorrect(rating),
		DifficultyRating: rating,
	}
	if err := s.source.RecordFlashcardAttempt(ctx, attempt); err != nil {
		zerolog.Ctx(ctx).Warn().
			Err(err).
			Str("flashcard_id", card.ID).
			Msg("flashcard attempt not recorded")
	}
	s.index = study.WrapNext(s.index, len(s.cards))
	s.showAnswer = false
}

// End closes the session. Without both a session id and a start time it
// is a pure local no-op that leaves the state untouched; otherwise the
// termination is posted best-effort, the identifiers are cleared and
// the state becomes Ended.
func (s *StudySession) End(ctx context.Context) {
	if s.sessionID == "" || s.startedAt.IsZero() {
		return
	}
	if err := s.source.EndSession(ctx, s.sessionID); err != nil {
		zerolog.Ctx(ctx).Warn().
			Err(err).
			Str("session_id", s.sessionID).
			Msg("session end not recorded")
	}
	s.sessionID = ""
	s.startedAt = time.Time{}
	s.state = SessionEnded
}
