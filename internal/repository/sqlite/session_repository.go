package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"studyaid/internal/models"
	"studyaid/internal/repository"
)

type sessionRepository struct {
	db *sql.DB
}

// NewStudySessionRepository creates a new StudySessionRepository implementation
func NewStudySessionRepository(db *sql.DB) repository.StudySessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, session models.StudySession) error {
	log := componentLogger(ctx, "session_repo")
	log.Debug().Str("id", session.ID).Str("document_id", session.DocumentID).Str("type", session.SessionType).Msg("inserting study session")

	_, err := r.db.ExecContext(ctx, `
INSERT INTO study_sessions (id, user_id, document_id, session_type, started_at, ended_at)
VALUES (?, ?, ?, ?, ?, NULL)
`, session.ID, session.UserID, session.DocumentID, session.SessionType, session.StartedAt)
	if err != nil {
		log.Error().Err(err).Msg("failed to insert study session")
	}
	return err
}

func (r *sessionRepository) GetByID(ctx context.Context, id string) (*models.StudySession, error) {
	log := componentLogger(ctx, "session_repo")
	log.Debug().Str("id", id).Msg("getting study session")

	var s models.StudySession
	var endedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, `
SELECT id, user_id, document_id, session_type, started_at, ended_at
FROM study_sessions
WHERE id = ?
`, id).Scan(&s.ID, &s.UserID, &s.DocumentID, &s.SessionType, &s.StartedAt, &endedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug().Str("id", id).Msg("study session not found")
		} else {
			log.Error().Err(err).Msg("failed to get study session")
		}
		return nil, err
	}
	if endedAt.Valid {
		t := endedAt.Time
		s.EndedAt = &t
	}
	return &s, nil
}

// End stamps ended_at on a still-open session. Ending an already ended
// session leaves the original timestamp in place.
func (r *sessionRepository) End(ctx context.Context, id string, endedAt time.Time) error {
	log := componentLogger(ctx, "session_repo")
	log.Debug().Str("id", id).Msg("ending study session")

	_, err := r.db.ExecContext(ctx, `
UPDATE study_sessions
SET ended_at = ?
WHERE id = ? AND ended_at IS NULL
`, endedAt, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to end study session")
	}
	return err
}

func (r *sessionRepository) TotalDurationSeconds(ctx context.Context, userID string) (int, error) {
	log := componentLogger(ctx, "session_repo")

	var seconds int
	err := r.db.QueryRowContext(ctx, `
SELECT COALESCE(SUM(strftime('%s', ended_at) - strftime('%s', started_at)), 0)
FROM study_sessions
WHERE user_id = ? AND ended_at IS NOT NULL
`, userID).Scan(&seconds)
	if err != nil {
		log.Error().Err(err).Msg("failed to sum session durations")
		return 0, err
	}
	return seconds, nil
}

func (r *sessionRepository) CountSince(ctx context.Context, userID string, since time.Time) (int, error) {
	log := componentLogger(ctx, "session_repo")

	var count int
	err := r.db.QueryRowContext(ctx, `
SELECT COUNT(*)
FROM study_sessions
WHERE user_id = ? AND datetime(started_at) >= datetime(?)
`, userID, since).Scan(&count)
	if err != nil {
		log.Error().Err(err).Msg("failed to count sessions")
		return 0, err
	}
	return count, nil
}

func (r *sessionRepository) SessionDates(ctx context.Context, userID string) ([]time.Time, error) {
	log := componentLogger(ctx, "session_repo")

	rows, err := r.db.QueryContext(ctx, `
SELECT DISTINCT date(started_at)
FROM study_sessions
WHERE user_id = ?
ORDER BY 1
`, userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to query session dates")
		return nil, err
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			log.Error().Err(err).Msg("failed to scan session date")
			return nil, err
		}
		t, err := time.ParseInLocation("2006-01-02", day, time.UTC)
		if err != nil {
			return nil, err
		}
		dates = append(dates, t)
	}
	log.Debug().Int("count", len(dates)).Msg("session dates loaded")
	return dates, rows.Err()
}

func (r *sessionRepository) DailyTotals(ctx context.Context, userID string, from, to time.Time) ([]models.DailyStudyTotal, error) {
	log := componentLogger(ctx, "session_repo")
	log.Debug().Time("from", from).Time("to", to).Msg("loading daily session totals")

	rows, err := r.db.QueryContext(ctx, `
SELECT date(started_at) AS day,
       COALESCE(SUM(CASE WHEN ended_at IS NOT NULL THEN strftime('%s', ended_at) - strftime('%s', started_at) ELSE 0 END), 0) AS seconds,
       COUNT(*) AS sessions
FROM study_sessions
WHERE user_id = ? AND datetime(started_at) >= datetime(?) AND datetime(started_at) < datetime(?)
GROUP BY day
ORDER BY day
`, userID, from, to)
	if err != nil {
		log.Error().Err(err).Msg("failed to query daily totals")
		return nil, err
	}
	defer rows.Close()

	var totals []models.DailyStudyTotal
	for rows.Next() {
		var t models.DailyStudyTotal
		if err := rows.Scan(&t.Date, &t.Seconds, &t.Sessions); err != nil {
			log.Error().Err(err).Msg("failed to scan daily total row")
			return nil, err
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}
