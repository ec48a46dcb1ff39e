package llm

import (
	"context"
	"strings"
)

const fakeSummaryJSON = `{
  "summary": "This document introduces the fundamentals of the subject, walking through its core concepts and how they relate to one another.\n\nIt closes with practical examples that show the concepts applied to realistic problems.",
  "key_points": [
    "Core concepts are introduced first",
    "Each concept builds on the previous one",
    "Definitions are paired with examples",
    "Practical applications close the document",
    "Further reading is suggested at the end"
  ]
}`

const fakeQuizJSON = `{
  "questions": [
    {
      "question": "What is the main focus of the document?",
      "options": ["Core concepts", "Unrelated trivia", "Historical dates", "Pricing"],
      "correct_answer": 0,
      "explanation": "The document walks through its core concepts."
    },
    {
      "question": "How are the concepts presented?",
      "options": ["Randomly", "Each building on the previous", "Alphabetically", "By difficulty"],
      "correct_answer": 1,
      "explanation": "Each concept builds on the one before it."
    }
  ]
}`

const fakeFlashcardsJSON = `{
  "flashcards": [
    {"front": "What does the document introduce?", "back": "The fundamentals of the subject"},
    {"front": "What accompanies each definition?", "back": "An example"},
    {"front": "What closes the document?", "back": "Practical applications"}
  ]
}`

// Fake returns canned study content without calling a real model. It
// backs LLM_PROVIDER=fake for offline development and the generator
// tests. The override fields replace the canned response for one
// prompt kind; Err fails every call.
type Fake struct {
	Err            error
	SummaryJSON    string
	QuizJSON       string
	FlashcardsJSON string
}

func (f *Fake) Complete(_ context.Context, prompt string) (string, error) {
	if f.Err != nil {
		return "", f.Err
	}
	switch {
	case strings.Contains(prompt, "flashcard"):
		if f.FlashcardsJSON != "" {
			return f.FlashcardsJSON, nil
		}
		return fakeFlashcardsJSON, nil
	case strings.Contains(prompt, "quiz"):
		if f.QuizJSON != "" {
			return f.QuizJSON, nil
		}
		return fakeQuizJSON, nil
	default:
		if f.SummaryJSON != "" {
			return f.SummaryJSON, nil
		}
		return fakeSummaryJSON, nil
	}
}

func (f *Fake) Model() string {
	return "fake"
}
