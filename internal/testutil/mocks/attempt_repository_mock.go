package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"studyaid/internal/models"
)

// MockAttemptRepository is a mock implementation of repository.AttemptRepository
type MockAttemptRepository struct {
	mock.Mock
}

func (m *MockAttemptRepository) CreateFlashcardAttempt(ctx context.Context, attempt models.FlashcardAttempt) error {
	args := m.Called(ctx, attempt)
	return args.Error(0)
}

func (m *MockAttemptRepository) CreateQuizAttempt(ctx context.Context, attempt models.QuizAttempt) error {
	args := m.Called(ctx, attempt)
	return args.Error(0)
}

func (m *MockAttemptRepository) FlashcardTotals(ctx context.Context, userID string) (int, int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Int(1), args.Error(2)
}

func (m *MockAttemptRepository) SeenCount(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockAttemptRepository) MasteredCount(ctx context.Context, userID string, minCorrect int) (int, error) {
	args := m.Called(ctx, userID, minCorrect)
	return args.Int(0), args.Error(1)
}

func (m *MockAttemptRepository) AccuracyByDocument(ctx context.Context, userID string) ([]models.FlashcardPerformancePoint, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FlashcardPerformancePoint), args.Error(1)
}

func (m *MockAttemptRepository) QuizTotals(ctx context.Context, userID string) (int, float64, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Get(1).(float64), args.Error(2)
}

func (m *MockAttemptRepository) RecentQuizScores(ctx context.Context, userID string, limit int) ([]models.QuizPerformancePoint, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.QuizPerformancePoint), args.Error(1)
}
