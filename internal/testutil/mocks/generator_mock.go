package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"studyaid/internal/generator"
)

// MockGenerator is a mock implementation of generator.Service
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) GenerateSummary(ctx context.Context, text string) (*generator.SummaryContent, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*generator.SummaryContent), args.Error(1)
}

func (m *MockGenerator) GenerateQuiz(ctx context.Context, text string) (*generator.QuizContent, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*generator.QuizContent), args.Error(1)
}

func (m *MockGenerator) GenerateFlashcards(ctx context.Context, text string) (*generator.FlashcardsContent, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*generator.FlashcardsContent), args.Error(1)
}

func (m *MockGenerator) GenerateAll(ctx context.Context, documentID, title, text string) (*generator.Bundle, error) {
	args := m.Called(ctx, documentID, title, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*generator.Bundle), args.Error(1)
}
