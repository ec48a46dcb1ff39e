package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"studyaid/internal/errors"
	"studyaid/internal/models"
	"studyaid/internal/repository"
	"studyaid/internal/study"
)

// StudyService handles study sessions and attempt tracking
type StudyService interface {
	StartSession(ctx context.Context, userID, documentID, sessionType string) (*models.StudySession, error)
	EndSession(ctx context.Context, id string) error
	RecordFlashcardAttempt(ctx context.Context, input models.FlashcardAttempt) (*models.FlashcardAttempt, error)
	RecordQuizAttempt(ctx context.Context, input models.QuizAttempt) (*models.QuizAttempt, error)
}

type studyService struct {
	docRepo     repository.DocumentRepository
	sessionRepo repository.StudySessionRepository
	attemptRepo repository.AttemptRepository
}

// NewStudyService creates a new StudyService
func NewStudyService(docRepo repository.DocumentRepository, sessionRepo repository.StudySessionRepository, attemptRepo repository.AttemptRepository) StudyService {
	return &studyService{
		docRepo:     docRepo,
		sessionRepo: sessionRepo,
		attemptRepo: attemptRepo,
	}
}

func (s *studyService) StartSession(ctx context.Context, userID, documentID, sessionType string) (*models.StudySession, error) {
	log := zerolog.Ctx(ctx)
	log.Debug().Str("document_id", documentID).Str("session_type", sessionType).Msg("starting study session")

	if userID == "" {
		userID = DefaultUserID
	}
	if sessionType == "" {
		sessionType = "flashcard"
	}

	doc, err := s.docRepo.GetByID(ctx, documentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError("Document")
		}
		log.Error().Err(err).Str("document_id", documentID).Msg("failed to get document")
		return nil, errors.NewInternalError(err)
	}
	if doc == nil {
		return nil, errors.NewNotFoundError("Document")
	}

	session := models.StudySession{
		ID:          uuid.NewString(),
		UserID:      userID,
		DocumentID:  documentID,
		SessionType: sessionType,
		StartedAt:   time.Now().UTC(),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		log.Error().Err(err).Msg("failed to create study session")
		return nil, errors.NewInternalError(err)
	}

	log.Info().Str("session_id", session.ID).Str("document_id", documentID).Msg("study session started")
	return &session, nil
}

func (s *studyService) EndSession(ctx context.Context, id string) error {
	log := zerolog.Ctx(ctx)
	log.Debug().Str("session_id", id).Msg("ending study session")

	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return errors.NewNotFoundError("Study session")
		}
		log.Error().Err(err).Str("session_id", id).Msg("failed to get study session")
		return errors.NewInternalError(err)
	}
	if session == nil {
		return errors.NewNotFoundError("Study session")
	}

	// Ending an already ended session keeps the first timestamp
	if err := s.sessionRepo.End(ctx, id, time.Now().UTC()); err != nil {
		log.Error().Err(err).Str("session_id", id).Msg("failed to end study session")
		return errors.NewInternalError(err)
	}
	return nil
}

func (s *studyService) RecordFlashcardAttempt(ctx context.Context, input models.FlashcardAttempt) (*models.FlashcardAttempt, error) {
	log := zerolog.Ctx(ctx)
	log.Debug().Str("flashcard_id", input.FlashcardID).Bool("is_correct", input.IsCorrect).Msg("recording flashcard attempt")

	if input.UserID == "" {
		input.UserID = DefaultUserID
	}
	switch input.DifficultyRating {
	case 0, study.RatingHard, study.RatingMedium, study.RatingEasy:
	default:
		return nil, errors.NewValidationError("difficulty_rating", "must be 1 (hard), 3 (medium), or 5 (easy)")
	}

	exists, err := s.docRepo.FlashcardExists(ctx, input.FlashcardID)
	if err != nil {
		log.Error().Err(err).Str("flashcard_id", input.FlashcardID).Msg("failed to check flashcard")
		return nil, errors.NewInternalError(err)
	}
	if !exists {
		return nil, errors.NewNotFoundError("Flashcard")
	}

	if input.SessionID != "" {
		session, err := s.sessionRepo.GetByID(ctx, input.SessionID)
		if err != nil {
			if err == sql.ErrNoRows {
				return nil, errors.NewNotFoundError("Study session")
			}
			log.Error().Err(err).Str("session_id", input.SessionID).Msg("failed to get study session")
			return nil, errors.NewInternalError(err)
		}
		if session == nil {
			return nil, errors.NewNotFoundError("Study session")
		}
	}

	input.ID = uuid.NewString()
	input.CreatedAt = time.Now().UTC()
	if err := s.attemptRepo.CreateFlashcardAttempt(ctx, input); err != nil {
		log.Error().Err(err).Msg("failed to create flashcard attempt")
		return nil, errors.NewInternalError(err)
	}
	return &input, nil
}

func (s *studyService) RecordQuizAttempt(ctx context.Context, input models.QuizAttempt) (*models.QuizAttempt, error) {
	log := zerolog.Ctx(ctx)
	log.Debug().Str("quiz_id", input.QuizID).Int("correct", input.CorrectAnswers).Int("total", input.TotalQuestions).Msg("recording quiz attempt")

	if input.UserID == "" {
		input.UserID = DefaultUserID
	}

	exists, err := s.docRepo.QuizExists(ctx, input.QuizID)
	if err != nil {
		log.Error().Err(err).Str("quiz_id", input.QuizID).Msg("failed to check quiz")
		return nil, errors.NewInternalError(err)
	}
	if !exists {
		return nil, errors.NewNotFoundError("Quiz")
	}

	// The stored score is always recomputed from the counts, never
	// trusted from the client
	input.Score = study.Score(input.CorrectAnswers, input.TotalQuestions)
	input.ID = uuid.NewString()
	input.CreatedAt = time.Now().UTC()
	if err := s.attemptRepo.CreateQuizAttempt(ctx, input); err != nil {
		log.Error().Err(err).Msg("failed to create quiz attempt")
		return nil, errors.NewInternalError(err)
	}
	return &input, nil
}
