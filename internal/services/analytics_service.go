package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"studyaid/internal/errors"
	"studyaid/internal/models"
	"studyaid/internal/repository"
	"studyaid/internal/study"
)

// AnalyticsService aggregates study activity for the analytics page
type AnalyticsService interface {
	PageData(ctx context.Context, userID string, now time.Time) (*models.AnalyticsPageData, error)
}

type analyticsService struct {
	sessionRepo repository.StudySessionRepository
	attemptRepo repository.AttemptRepository
}

// NewAnalyticsService creates a new AnalyticsService
func NewAnalyticsService(sessionRepo repository.StudySessionRepository, attemptRepo repository.AttemptRepository) AnalyticsService {
	return &analyticsService{
		sessionRepo: sessionRepo,
		attemptRepo: attemptRepo,
	}
}

func (s *analyticsService) PageData(ctx context.Context, userID string, now time.Time) (*models.AnalyticsPageData, error) {
	log := zerolog.Ctx(ctx)
	log.Debug().Str("user_id", userID).Msg("building analytics page data")

	if userID == "" {
		userID = DefaultUserID
	}

	totalSeconds, err := s.sessionRepo.TotalDurationSeconds(ctx, userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to total session durations")
		return nil, errors.NewInternalError(err)
	}

	dates, err := s.sessionRepo.SessionDates(ctx, userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to load session dates")
		return nil, errors.NewInternalError(err)
	}
	currentStreak, longestStreak := study.Streaks(dates, now)

	seen, err := s.attemptRepo.SeenCount(ctx, userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to count flashcards seen")
		return nil, errors.NewInternalError(err)
	}
	mastered, err := s.attemptRepo.MasteredCount(ctx, userID, study.MasteryThreshold)
	if err != nil {
		log.Error().Err(err).Msg("failed to count flashcards mastered")
		return nil, errors.NewInternalError(err)
	}
	attempts, correct, err := s.attemptRepo.FlashcardTotals(ctx, userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to total flashcard attempts")
		return nil, errors.NewInternalError(err)
	}

	quizzes, avgScore, err := s.attemptRepo.QuizTotals(ctx, userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to total quiz attempts")
		return nil, errors.NewInternalError(err)
	}

	weekSessions, err := s.sessionRepo.CountSince(ctx, userID, study.WeekStart(now))
	if err != nil {
		log.Error().Err(err).Msg("failed to count sessions this week")
		return nil, errors.NewInternalError(err)
	}

	sessionChart, err := s.sessionChart(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	flashcardChart, err := s.attemptRepo.AccuracyByDocument(ctx, userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to load flashcard accuracy by document")
		return nil, errors.NewInternalError(err)
	}
	if flashcardChart == nil {
		flashcardChart = []models.FlashcardPerformancePoint{}
	}

	quizChart, err := s.attemptRepo.RecentQuizScores(ctx, userID, 5)
	if err != nil {
		log.Error().Err(err).Msg("failed to load recent quiz scores")
		return nil, errors.NewInternalError(err)
	}
	if quizChart == nil {
		quizChart = []models.QuizPerformancePoint{}
	}

	return &models.AnalyticsPageData{
		OverallAnalytics: models.OverallAnalytics{
			TotalStudyTime:             totalSeconds,
			CurrentStreak:              currentStreak,
			LongestStreak:              longestStreak,
			TotalFlashcardsSeen:        seen,
			TotalFlashcardsMastered:    mastered,
			FlashcardAccuracyOverall:   study.Percent(correct, attempts),
			TotalQuizzesCompleted:      quizzes,
			AverageQuizScoreOverall:    study.Normalize(avgScore),
			StudySessionsThisWeekCount: weekSessions,
		},
		StudySessionsChartData:        sessionChart,
		FlashcardPerformanceChartData: flashcardChart,
		QuizPerformanceChartData:      quizChart,
	}, nil
}

// sessionChart builds the trailing 7-day activity series, zero-filling
// days with no sessions. Durations are reported in whole minutes.
func (s *analyticsService) sessionChart(ctx context.Context, userID string, now time.Time) ([]models.StudySessionPoint, error) {
	log := zerolog.Ctx(ctx)

	today := dayStart(now)
	from := today.AddDate(0, 0, -6)
	to := today.AddDate(0, 0, 1)

	totals, err := s.sessionRepo.DailyTotals(ctx, userID, from, to)
	if err != nil {
		log.Error().Err(err).Msg("failed to load daily session totals")
		return nil, errors.NewInternalError(err)
	}

	byDay := make(map[string]models.DailyStudyTotal, len(totals))
	for _, t := range totals {
		byDay[t.Date] = t
	}

	chart := make([]models.StudySessionPoint, 0, 7)
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		t := byDay[key]
		chart = append(chart, models.StudySessionPoint{
			Date:     key,
			Duration: t.Seconds / 60,
			Sessions: t.Sessions,
		})
	}
	return chart, nil
}

func dayStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
