package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"studyaid/internal/models"
	"studyaid/internal/repository"
)

type documentRepository struct {
	db *sql.DB
}

// NewDocumentRepository creates a new DocumentRepository implementation
func NewDocumentRepository(db *sql.DB) repository.DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Create(ctx context.Context, doc models.Document) error {
	log := componentLogger(ctx, "document_repo")
	log.Debug().Str("id", doc.ID).Str("title", doc.Title).Msg("inserting document")

	_, err := r.db.ExecContext(ctx, `
INSERT INTO documents (id, user_id, title, file_path, text, processed, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
`, doc.ID, doc.UserID, doc.Title, doc.FilePath, doc.Text, doc.Processed, doc.CreatedAt)
	if err != nil {
		log.Error().Err(err).Msg("failed to insert document")
	}
	return err
}

func (r *documentRepository) GetByID(ctx context.Context, id string) (*models.Document, error) {
	log := componentLogger(ctx, "document_repo")
	log.Debug().Str("id", id).Msg("getting document")

	var d models.Document
	err := r.db.QueryRowContext(ctx, `
SELECT id, user_id, title, file_path, text, processed, created_at
FROM documents
WHERE id = ?
`, id).Scan(&d.ID, &d.UserID, &d.Title, &d.FilePath, &d.Text, &d.Processed, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug().Str("id", id).Msg("document not found")
		} else {
			log.Error().Err(err).Msg("failed to get document")
		}
		return nil, err
	}
	return &d, nil
}

func (r *documentRepository) List(ctx context.Context, filter models.DocumentFilter) ([]models.DocumentListItem, error) {
	log := componentLogger(ctx, "document_repo")
	log.Debug().Str("user_id", filter.UserID).Str("query", filter.Query).Msg("listing documents")

	query := sqlBuilder.Select("id", "title", "created_at").
		From("documents").
		OrderBy("created_at DESC")

	// Dynamic WHERE clauses
	if filter.UserID != "" {
		query = query.Where(squirrel.Eq{"user_id": filter.UserID})
	}
	if filter.Query != "" {
		query = query.Where(squirrel.Like{"title": "%" + filter.Query + "%"})
	}
	if filter.Processed != nil {
		query = query.Where(squirrel.Eq{"processed": *filter.Processed})
	}
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
		if filter.Offset > 0 {
			query = query.Offset(uint64(filter.Offset))
		}
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error().Err(err).Msg("failed to build document list query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error().Err(err).Msg("failed to query documents")
		return nil, err
	}
	defer rows.Close()

	var docs []models.DocumentListItem
	for rows.Next() {
		var d models.DocumentListItem
		if err := rows.Scan(&d.ID, &d.Title, &d.CreatedAt); err != nil {
			log.Error().Err(err).Msg("failed to scan document row")
			return nil, err
		}
		docs = append(docs, d)
	}
	log.Debug().Int("count", len(docs)).Msg("documents listed")
	return docs, rows.Err()
}

func (r *documentRepository) MarkProcessed(ctx context.Context, id string) error {
	log := componentLogger(ctx, "document_repo")
	log.Debug().Str("id", id).Msg("marking document processed")

	_, err := r.db.ExecContext(ctx, `UPDATE documents SET processed = 1 WHERE id = ?`, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to mark document processed")
	}
	return err
}

// SaveGenerated replaces a document's generated content in one
// transaction so a reader never sees a half-written set of artifacts.
func (r *documentRepository) SaveGenerated(ctx context.Context, documentID string, summary models.Summary, cards []models.Flashcard, quiz models.Quiz) error {
	log := componentLogger(ctx, "document_repo")
	log.Debug().Str("document_id", documentID).Int("flashcards", len(cards)).Int("questions", len(quiz.Questions)).Msg("saving generated content")

	err := tx(ctx, r.db, func(t *sql.Tx) error {
		if _, err := t.ExecContext(ctx, `DELETE FROM quiz_questions WHERE quiz_id IN (SELECT id FROM quizzes WHERE document_id = ?)`, documentID); err != nil {
			return err
		}
		if _, err := t.ExecContext(ctx, `DELETE FROM quizzes WHERE document_id = ?`, documentID); err != nil {
			return err
		}
		if _, err := t.ExecContext(ctx, `DELETE FROM summaries WHERE document_id = ?`, documentID); err != nil {
			return err
		}
		if _, err := t.ExecContext(ctx, `DELETE FROM flashcards WHERE document_id = ?`, documentID); err != nil {
			return err
		}

		if _, err := t.ExecContext(ctx, `
INSERT INTO summaries (id, document_id, content, created_at)
VALUES (?, ?, ?, ?)
`, summary.ID, summary.DocumentID, summary.Content, summary.CreatedAt); err != nil {
			return err
		}

		for i, c := range cards {
			if _, err := t.ExecContext(ctx, `
INSERT INTO flashcards (id, document_id, question, answer, position, created_at)
VALUES (?, ?, ?, ?, ?, ?)
`, c.ID, c.DocumentID, c.Question, c.Answer, i, c.CreatedAt); err != nil {
				return err
			}
		}

		if _, err := t.ExecContext(ctx, `
INSERT INTO quizzes (id, document_id, title, created_at)
VALUES (?, ?, ?, ?)
`, quiz.ID, quiz.DocumentID, quiz.Title, quiz.CreatedAt); err != nil {
			return err
		}
		for i, q := range quiz.Questions {
			optionsJSON, err := json.Marshal(q.Options)
			if err != nil {
				return fmt.Errorf("marshal options for question %s: %w", q.ID, err)
			}
			if _, err := t.ExecContext(ctx, `
INSERT INTO quiz_questions (id, quiz_id, question, options, correct_answer, position, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
`, q.ID, q.QuizID, q.Question, string(optionsJSON), q.CorrectAnswer, i, q.CreatedAt); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("document_id", documentID).Msg("failed to save generated content")
		return err
	}
	log.Debug().Str("document_id", documentID).Msg("generated content saved")
	return nil
}

func (r *documentRepository) GetSummary(ctx context.Context, documentID string) (*models.Summary, error) {
	log := componentLogger(ctx, "document_repo")

	var s models.Summary
	err := r.db.QueryRowContext(ctx, `
SELECT id, document_id, content, created_at
FROM summaries
WHERE document_id = ?
`, documentID).Scan(&s.ID, &s.DocumentID, &s.Content, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to get summary")
		return nil, err
	}
	return &s, nil
}

func (r *documentRepository) ListFlashcards(ctx context.Context, documentID string) ([]models.Flashcard, error) {
	log := componentLogger(ctx, "document_repo")

	rows, err := r.db.QueryContext(ctx, `
SELECT id, document_id, question, answer, created_at
FROM flashcards
WHERE document_id = ?
ORDER BY position
`, documentID)
	if err != nil {
		log.Error().Err(err).Msg("failed to query flashcards")
		return nil, err
	}
	defer rows.Close()

	var cards []models.Flashcard
	for rows.Next() {
		var c models.Flashcard
		if err := rows.Scan(&c.ID, &c.DocumentID, &c.Question, &c.Answer, &c.CreatedAt); err != nil {
			log.Error().Err(err).Msg("failed to scan flashcard row")
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, rows.Err()
}

func (r *documentRepository) GetQuiz(ctx context.Context, documentID string) (*models.Quiz, error) {
	log := componentLogger(ctx, "document_repo")

	var q models.Quiz
	err := r.db.QueryRowContext(ctx, `
SELECT id, document_id, title, created_at
FROM quizzes
WHERE document_id = ?
`, documentID).Scan(&q.ID, &q.DocumentID, &q.Title, &q.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to get quiz")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
SELECT id, quiz_id, question, options, correct_answer, created_at
FROM quiz_questions
WHERE quiz_id = ?
ORDER BY position
`, q.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to query quiz questions")
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var qq models.QuizQuestion
		var optionsJSON string
		if err := rows.Scan(&qq.ID, &qq.QuizID, &qq.Question, &optionsJSON, &qq.CorrectAnswer, &qq.CreatedAt); err != nil {
			log.Error().Err(err).Msg("failed to scan quiz question row")
			return nil, err
		}
		if err := json.Unmarshal([]byte(optionsJSON), &qq.Options); err != nil {
			log.Error().Err(err).Str("question_id", qq.ID).Msg("failed to decode question options")
			return nil, fmt.Errorf("decode options for question %s: %w", qq.ID, err)
		}
		q.Questions = append(q.Questions, qq)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *documentRepository) FlashcardExists(ctx context.Context, id string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM flashcards WHERE id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}

func (r *documentRepository) QuizExists(ctx context.Context, id string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM quizzes WHERE id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}
