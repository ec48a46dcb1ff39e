package models

import "time"

type Document struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	FilePath  string    `json:"file_path"`
	Text      string    `json:"-"`
	Processed bool      `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

type DocumentListItem struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

type DocumentFilter struct {
	UserID    string
	Query     string
	Processed *bool
	Limit     int
	Offset    int
}

type DocumentDetail struct {
	Document
	Summary    *Summary    `json:"summary"`
	Flashcards []Flashcard `json:"flashcards"`
	Quiz       *Quiz       `json:"quiz"`
}

type Summary struct {
	ID         string    `json:"id"`
	DocumentID string    `json:"document_id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

type Quiz struct {
	ID         string         `json:"id"`
	DocumentID string         `json:"document_id"`
	Title      string         `json:"title"`
	Questions  []QuizQuestion `json:"questions"`
	CreatedAt  time.Time      `json:"created_at"`
}

type QuizQuestion struct {
	ID            string    `json:"id"`
	QuizID        string    `json:"quiz_id"`
	Question      string    `json:"question"`
	Options       []string  `json:"options"`
	CorrectAnswer string    `json:"correct_answer"`
	CreatedAt     time.Time `json:"created_at"`
}
