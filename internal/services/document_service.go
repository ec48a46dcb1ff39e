package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"studyaid/internal/blob"
	"studyaid/internal/errors"
	"studyaid/internal/generator"
	"studyaid/internal/models"
	"studyaid/internal/repository"
)

// DefaultUserID is the placeholder user everything is scoped to until
// real accounts exist.
const DefaultUserID = "default-user-id"

// ExtractTextFunc extracts plain text from PDF bytes.
type ExtractTextFunc func(data []byte) (string, error)

// DocumentService handles document upload, processing, and retrieval
type DocumentService interface {
	Upload(ctx context.Context, filename, title string, data []byte) (*models.Document, error)
	Process(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*models.DocumentDetail, error)
	List(ctx context.Context, filter models.DocumentFilter) ([]models.DocumentListItem, error)
}

type documentService struct {
	docRepo     repository.DocumentRepository
	store       blob.Store
	generator   generator.Service
	extractText ExtractTextFunc
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(docRepo repository.DocumentRepository, store blob.Store, gen generator.Service, extractText ExtractTextFunc) DocumentService {
	return &documentService{
		docRepo:     docRepo,
		store:       store,
		generator:   gen,
		extractText: extractText,
	}
}

func (s *documentService) Upload(ctx context.Context, filename, title string, data []byte) (*models.Document, error) {
	log := zerolog.Ctx(ctx)
	log.Debug().Str("filename", filename).Int("size", len(data)).Msg("uploading document")

	if !strings.HasSuffix(strings.ToLower(filename), ".pdf") {
		return nil, errors.NewBadRequestError("File must be a PDF")
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.NewBadRequestError("Title cannot be empty")
	}

	text, err := s.extractText(data)
	if err != nil {
		return nil, errors.NewBadRequestError(fmt.Sprintf("Error extracting PDF text: %v", err))
	}
	if strings.TrimSpace(text) == "" {
		return nil, errors.NewBadRequestError("No text found in PDF")
	}

	id := uuid.NewString()
	key := fmt.Sprintf("uploads/%s.pdf", id)
	if err := s.store.Put(ctx, key, data, "application/pdf"); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to store pdf")
		return nil, errors.NewInternalError(err)
	}

	doc := models.Document{
		ID:        id,
		UserID:    DefaultUserID,
		Title:     title,
		FilePath:  key,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.docRepo.Create(ctx, doc); err != nil {
		log.Error().Err(err).Str("document_id", id).Msg("failed to create document")
		return nil, errors.NewInternalError(err)
	}

	log.Info().Str("document_id", id).Str("title", title).Int("text_len", len(text)).Msg("document uploaded")
	return &doc, nil
}

func (s *documentService) Process(ctx context.Context, id string) error {
	log := zerolog.Ctx(ctx)
	log.Debug().Str("document_id", id).Msg("processing document")

	doc, err := s.docRepo.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return errors.NewNotFoundError("Document")
		}
		log.Error().Err(err).Str("document_id", id).Msg("failed to get document")
		return errors.NewInternalError(err)
	}
	if doc == nil {
		return errors.NewNotFoundError("Document")
	}

	if strings.TrimSpace(doc.Text) == "" {
		return errors.NewBadRequestError("No text content found for this document")
	}

	bundle, err := s.generator.GenerateAll(ctx, doc.ID, doc.Title, doc.Text)
	if err != nil {
		log.Error().Err(err).Str("document_id", id).Msg("content generation failed")
		if appErr, ok := err.(*errors.AppError); ok {
			return appErr
		}
		return errors.NewInternalError(err)
	}

	if err := s.docRepo.SaveGenerated(ctx, doc.ID, bundle.Summary, bundle.Flashcards, bundle.Quiz); err != nil {
		log.Error().Err(err).Str("document_id", id).Msg("failed to save generated content")
		return errors.NewInternalError(err)
	}
	if err := s.docRepo.MarkProcessed(ctx, doc.ID); err != nil {
		log.Error().Err(err).Str("document_id", id).Msg("failed to mark document processed")
		return errors.NewInternalError(err)
	}

	log.Info().Str("document_id", id).Int("flashcards", len(bundle.Flashcards)).Int("questions", len(bundle.Quiz.Questions)).Msg("document processed")
	return nil
}

func (s *documentService) Get(ctx context.Context, id string) (*models.DocumentDetail, error) {
	log := zerolog.Ctx(ctx)
	log.Debug().Str("document_id", id).Msg("getting document")

	doc, err := s.docRepo.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError("Document")
		}
		log.Error().Err(err).Str("document_id", id).Msg("failed to get document")
		return nil, errors.NewInternalError(err)
	}
	if doc == nil {
		return nil, errors.NewNotFoundError("Document")
	}

	detail := models.DocumentDetail{Document: *doc}

	detail.Summary, err = s.docRepo.GetSummary(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("document_id", id).Msg("failed to get summary")
		return nil, errors.NewInternalError(err)
	}

	detail.Flashcards, err = s.docRepo.ListFlashcards(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("document_id", id).Msg("failed to list flashcards")
		return nil, errors.NewInternalError(err)
	}
	if detail.Flashcards == nil {
		detail.Flashcards = []models.Flashcard{}
	}

	detail.Quiz, err = s.docRepo.GetQuiz(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("document_id", id).Msg("failed to get quiz")
		return nil, errors.NewInternalError(err)
	}

	return &detail, nil
}

func (s *documentService) List(ctx context.Context, filter models.DocumentFilter) ([]models.DocumentListItem, error) {
	log := zerolog.Ctx(ctx)
	log.Debug().Str("user_id", filter.UserID).Msg("listing documents")

	docs, err := s.docRepo.List(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to list documents")
		return nil, errors.NewInternalError(err)
	}
	if docs == nil {
		docs = []models.DocumentListItem{}
	}
	return docs, nil
}
