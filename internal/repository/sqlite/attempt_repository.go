package sqlite

import (
	"context"
	"database/sql"

	"studyaid/internal/models"
	"studyaid/internal/repository"
)

type attemptRepository struct {
	db *sql.DB
}

// NewAttemptRepository creates a new AttemptRepository implementation
func NewAttemptRepository(db *sql.DB) repository.AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) CreateFlashcardAttempt(ctx context.Context, attempt models.FlashcardAttempt) error {
	log := componentLogger(ctx, "attempt_repo")
	log.Debug().Str("id", attempt.ID).Str("flashcard_id", attempt.FlashcardID).Bool("is_correct", attempt.IsCorrect).Msg("inserting flashcard attempt")

	sessionID := sql.NullString{String: attempt.SessionID, Valid: attempt.SessionID != ""}
	_, err := r.db.ExecContext(ctx, `
INSERT INTO flashcard_attempts (id, user_id, flashcard_id, session_id, is_correct, difficulty_rating, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
`, attempt.ID, attempt.UserID, attempt.FlashcardID, sessionID, attempt.IsCorrect, attempt.DifficultyRating, attempt.CreatedAt)
	if err != nil {
		log.Error().Err(err).Msg("failed to insert flashcard attempt")
	}
	return err
}

func (r *attemptRepository) CreateQuizAttempt(ctx context.Context, attempt models.QuizAttempt) error {
	log := componentLogger(ctx, "attempt_repo")
	log.Debug().Str("id", attempt.ID).Str("quiz_id", attempt.QuizID).Int("score", attempt.Score).Msg("inserting quiz attempt")

	_, err := r.db.ExecContext(ctx, `
INSERT INTO quiz_attempts (id, user_id, quiz_id, score, total_questions, correct_answers, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
`, attempt.ID, attempt.UserID, attempt.QuizID, attempt.Score, attempt.TotalQuestions, attempt.CorrectAnswers, attempt.CreatedAt)
	if err != nil {
		log.Error().Err(err).Msg("failed to insert quiz attempt")
	}
	return err
}

func (r *attemptRepository) FlashcardTotals(ctx context.Context, userID string) (total, correct int, err error) {
	log := componentLogger(ctx, "attempt_repo")

	err = r.db.QueryRowContext(ctx, `
SELECT COUNT(*),
       COALESCE(SUM(CASE WHEN is_correct = 1 THEN 1 ELSE 0 END), 0)
FROM flashcard_attempts
WHERE user_id = ?
`, userID).Scan(&total, &correct)
	if err != nil {
		log.Error().Err(err).Msg("failed to total flashcard attempts")
		return 0, 0, err
	}
	return total, correct, nil
}

func (r *attemptRepository) SeenCount(ctx context.Context, userID string) (int, error) {
	log := componentLogger(ctx, "attempt_repo")

	var count int
	err := r.db.QueryRowContext(ctx, `
SELECT COUNT(DISTINCT flashcard_id)
FROM flashcard_attempts
WHERE user_id = ?
`, userID).Scan(&count)
	if err != nil {
		log.Error().Err(err).Msg("failed to count seen flashcards")
		return 0, err
	}
	return count, nil
}

func (r *attemptRepository) MasteredCount(ctx context.Context, userID string, minCorrect int) (int, error) {
	log := componentLogger(ctx, "attempt_repo")

	var count int
	err := r.db.QueryRowContext(ctx, `
SELECT COUNT(*)
FROM (
    SELECT flashcard_id
    FROM flashcard_attempts
    WHERE user_id = ? AND is_correct = 1
    GROUP BY flashcard_id
    HAVING COUNT(*) >= ?
)
`, userID, minCorrect).Scan(&count)
	if err != nil {
		log.Error().Err(err).Msg("failed to count mastered flashcards")
		return 0, err
	}
	return count, nil
}

func (r *attemptRepository) AccuracyByDocument(ctx context.Context, userID string) ([]models.FlashcardPerformancePoint, error) {
	log := componentLogger(ctx, "attempt_repo")
	log.Debug().Str("user_id", userID).Msg("computing per-document flashcard accuracy")

	rows, err := r.db.QueryContext(ctx, `
SELECT d.title,
       ROUND(100.0 * SUM(CASE WHEN fa.is_correct = 1 THEN 1 ELSE 0 END) / COUNT(*), 1) AS accuracy,
       COUNT(*) AS attempts
FROM flashcard_attempts fa
JOIN flashcards f ON f.id = fa.flashcard_id
JOIN documents d ON d.id = f.document_id
WHERE fa.user_id = ?
GROUP BY d.id, d.title
ORDER BY d.title
`, userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to query per-document accuracy")
		return nil, err
	}
	defer rows.Close()

	var points []models.FlashcardPerformancePoint
	for rows.Next() {
		var p models.FlashcardPerformancePoint
		if err := rows.Scan(&p.DocumentTitle, &p.Accuracy, &p.Attempts); err != nil {
			log.Error().Err(err).Msg("failed to scan accuracy row")
			return nil, err
		}
		points = append(points, p)
	}
	log.Debug().Int("count", len(points)).Msg("per-document accuracy computed")
	return points, rows.Err()
}

func (r *attemptRepository) QuizTotals(ctx context.Context, userID string) (completed int, avgScore float64, err error) {
	log := componentLogger(ctx, "attempt_repo")

	err = r.db.QueryRowContext(ctx, `
SELECT COUNT(*),
       COALESCE(AVG(score), 0)
FROM quiz_attempts
WHERE user_id = ?
`, userID).Scan(&completed, &avgScore)
	if err != nil {
		log.Error().Err(err).Msg("failed to total quiz attempts")
		return 0, 0, err
	}
	return completed, avgScore, nil
}

// RecentQuizScores returns the newest attempts oldest first, the order
// the score chart plots them in.
func (r *attemptRepository) RecentQuizScores(ctx context.Context, userID string, limit int) ([]models.QuizPerformancePoint, error) {
	log := componentLogger(ctx, "attempt_repo")

	rows, err := r.db.QueryContext(ctx, `
SELECT day, score, title
FROM (
    SELECT date(qa.created_at) AS day,
           qa.score AS score,
           COALESCE(q.title, 'Quiz') AS title,
           qa.created_at AS attempted_at
    FROM quiz_attempts qa
    LEFT JOIN quizzes q ON q.id = qa.quiz_id
    WHERE qa.user_id = ?
    ORDER BY qa.created_at DESC
    LIMIT ?
)
ORDER BY attempted_at
`, userID, limit)
	if err != nil {
		log.Error().Err(err).Msg("failed to query recent quiz scores")
		return nil, err
	}
	defer rows.Close()

	var points []models.QuizPerformancePoint
	for rows.Next() {
		var p models.QuizPerformancePoint
		if err := rows.Scan(&p.Date, &p.Score, &p.QuizTitle); err != nil {
			log.Error().Err(err).Msg("failed to scan quiz score row")
			return nil, err
		}
		points = append(points, p)
	}
	return points, rows.Err()
}
