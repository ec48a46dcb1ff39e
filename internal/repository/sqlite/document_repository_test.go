package sqlite_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"studyaid/internal/models"
	"studyaid/internal/repository"
	"studyaid/internal/repository/sqlite"
	"studyaid/internal/testutil"
)

type DocumentRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.DocumentRepository
}

func (s *DocumentRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewDocumentRepository(s.db)
}

func (s *DocumentRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *DocumentRepositorySuite) insertDocument(id, userID, title string, processed bool, createdAt time.Time) {
	_, err := s.db.ExecContext(context.Background(), `
		INSERT INTO documents (id, user_id, title, file_path, text, processed, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, id, userID, title, "uploads/"+id+".pdf", "some extracted text", processed, createdAt)
	s.Require().NoError(err)
}

func (s *DocumentRepositorySuite) TestCreateAndGetByID() {
	ctx := context.Background()
	createdAt := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	doc := models.Document{
		ID:        "doc-1",
		UserID:    "default-user-id",
		Title:     "Biology Notes",
		FilePath:  "uploads/doc-1.pdf",
		Text:      "cells are the basic unit of life",
		Processed: false,
		CreatedAt: createdAt,
	}
	err := s.repo.Create(ctx, doc)
	s.Require().NoError(err)

	got, err := s.repo.GetByID(ctx, "doc-1")
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Assert().Equal("doc-1", got.ID)
	s.Assert().Equal("default-user-id", got.UserID)
	s.Assert().Equal("Biology Notes", got.Title)
	s.Assert().Equal("uploads/doc-1.pdf", got.FilePath)
	s.Assert().Equal("cells are the basic unit of life", got.Text)
	s.Assert().False(got.Processed)
	s.Assert().WithinDuration(createdAt, got.CreatedAt, time.Second)
}

func (s *DocumentRepositorySuite) TestGetByID_NotFound() {
	got, err := s.repo.GetByID(context.Background(), "missing")
	s.Assert().Nil(got)
	s.Assert().ErrorIs(err, sql.ErrNoRows)
}

func (s *DocumentRepositorySuite) TestList_FiltersAndOrder() {
	ctx := context.Background()
	s.insertDocument("doc-1", "user-a", "Algebra Basics", true, time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
	s.insertDocument("doc-2", "user-a", "Advanced Algebra", false, time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC))
	s.insertDocument("doc-3", "user-b", "Chemistry Intro", true, time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC))

	// Newest first for the owning user
	docs, err := s.repo.List(ctx, models.DocumentFilter{UserID: "user-a"})
	s.Require().NoError(err)
	s.Require().Len(docs, 2)
	s.Assert().Equal("doc-2", docs[0].ID)
	s.Assert().Equal("doc-1", docs[1].ID)

	// Title search
	docs, err = s.repo.List(ctx, models.DocumentFilter{UserID: "user-a", Query: "Advanced"})
	s.Require().NoError(err)
	s.Require().Len(docs, 1)
	s.Assert().Equal("doc-2", docs[0].ID)

	// Processed filter
	processed := true
	docs, err = s.repo.List(ctx, models.DocumentFilter{UserID: "user-a", Processed: &processed})
	s.Require().NoError(err)
	s.Require().Len(docs, 1)
	s.Assert().Equal("doc-1", docs[0].ID)

	// Limit and offset page through the newest-first ordering
	docs, err = s.repo.List(ctx, models.DocumentFilter{UserID: "user-a", Limit: 1, Offset: 1})
	s.Require().NoError(err)
	s.Require().Len(docs, 1)
	s.Assert().Equal("doc-1", docs[0].ID)
}

func (s *DocumentRepositorySuite) TestMarkProcessed() {
	ctx := context.Background()
	s.insertDocument("doc-1", "user-a", "Notes", false, time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))

	err := s.repo.MarkProcessed(ctx, "doc-1")
	s.Require().NoError(err)

	got, err := s.repo.GetByID(ctx, "doc-1")
	s.Require().NoError(err)
	s.Assert().True(got.Processed)
}

func (s *DocumentRepositorySuite) generatedBundle(documentID, suffix string) (models.Summary, []models.Flashcard, models.Quiz) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	summary := models.Summary{
		ID:         "sum-" + documentID,
		DocumentID: documentID,
		Content:    "summary " + suffix,
		CreatedAt:  now,
	}
	cards := []models.Flashcard{
		{ID: "fc-" + documentID + "-1", DocumentID: documentID, Question: "q1 " + suffix, Answer: "a1", CreatedAt: now},
		{ID: "fc-" + documentID + "-2", DocumentID: documentID, Question: "q2 " + suffix, Answer: "a2", CreatedAt: now},
	}
	quiz := models.Quiz{
		ID:         "quiz-" + documentID,
		DocumentID: documentID,
		Title:      "Quiz: Notes",
		CreatedAt:  now,
		Questions: []models.QuizQuestion{
			{ID: "q-" + documentID + "-1", QuizID: "quiz-" + documentID, Question: "pick one " + suffix, Options: []string{"A", "B", "C", "D"}, CorrectAnswer: "B", CreatedAt: now},
			{ID: "q-" + documentID + "-2", QuizID: "quiz-" + documentID, Question: "pick two", Options: []string{"W", "X", "Y", "Z"}, CorrectAnswer: "Z", CreatedAt: now},
		},
	}
	return summary, cards, quiz
}

func (s *DocumentRepositorySuite) TestSaveGeneratedAndReadBack() {
	ctx := context.Background()
	s.insertDocument("doc-1", "user-a", "Notes", false, time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))

	summary, cards, quiz := s.generatedBundle("doc-1", "v1")
	err := s.repo.SaveGenerated(ctx, "doc-1", summary, cards, quiz)
	s.Require().NoError(err)

	gotSummary, err := s.repo.GetSummary(ctx, "doc-1")
	s.Require().NoError(err)
	s.Require().NotNil(gotSummary)
	s.Assert().Equal("summary v1", gotSummary.Content)

	gotCards, err := s.repo.ListFlashcards(ctx, "doc-1")
	s.Require().NoError(err)
	s.Require().Len(gotCards, 2)
	s.Assert().Equal("q1 v1", gotCards[0].Question)
	s.Assert().Equal("q2 v1", gotCards[1].Question)

	gotQuiz, err := s.repo.GetQuiz(ctx, "doc-1")
	s.Require().NoError(err)
	s.Require().NotNil(gotQuiz)
	s.Assert().Equal("Quiz: Notes", gotQuiz.Title)
	s.Require().Len(gotQuiz.Questions, 2)
	s.Assert().Equal([]string{"A", "B", "C", "D"}, gotQuiz.Questions[0].Options)
	s.Assert().Equal("B", gotQuiz.Questions[0].CorrectAnswer)
	s.Assert().Equal("Z", gotQuiz.Questions[1].CorrectAnswer)
}

func (s *DocumentRepositorySuite) TestSaveGenerated_ReplacesPreviousContent() {
	ctx := context.Background()
	s.insertDocument("doc-1", "user-a", "Notes", false, time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))

	summary, cards, quiz := s.generatedBundle("doc-1", "v1")
	s.Require().NoError(s.repo.SaveGenerated(ctx, "doc-1", summary, cards, quiz))

	// An attempt recorded against the first generation
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO flashcard_attempts (id, user_id, flashcard_id, is_correct, difficulty_rating, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, "att-1", "user-a", "fc-doc-1-1", 1, 5, time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC))
	s.Require().NoError(err)

	// Reprocessing replaces everything in one shot
	summary2, cards2, quiz2 := s.generatedBundle("doc-1", "v2")
	cards2 = cards2[:1]
	quiz2.Questions = quiz2.Questions[:1]
	s.Require().NoError(s.repo.SaveGenerated(ctx, "doc-1", summary2, cards2, quiz2))

	gotSummary, err := s.repo.GetSummary(ctx, "doc-1")
	s.Require().NoError(err)
	s.Assert().Equal("summary v2", gotSummary.Content)

	gotCards, err := s.repo.ListFlashcards(ctx, "doc-1")
	s.Require().NoError(err)
	s.Assert().Len(gotCards, 1)

	gotQuiz, err := s.repo.GetQuiz(ctx, "doc-1")
	s.Require().NoError(err)
	s.Assert().Len(gotQuiz.Questions, 1)

	// Attempt history outlives the regeneration
	var attempts int
	err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM flashcard_attempts WHERE user_id = ?`, "user-a").Scan(&attempts)
	s.Require().NoError(err)
	s.Assert().Equal(1, attempts)
}

func (s *DocumentRepositorySuite) TestGetSummary_NoneIsNil() {
	s.insertDocument("doc-1", "user-a", "Notes", false, time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))

	summary, err := s.repo.GetSummary(context.Background(), "doc-1")
	s.Require().NoError(err)
	s.Assert().Nil(summary)
}

func (s *DocumentRepositorySuite) TestGetQuiz_NoneIsNil() {
	s.insertDocument("doc-1", "user-a", "Notes", false, time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))

	quiz, err := s.repo.GetQuiz(context.Background(), "doc-1")
	s.Require().NoError(err)
	s.Assert().Nil(quiz)
}

func (s *DocumentRepositorySuite) TestExistenceChecks() {
	ctx := context.Background()
	s.insertDocument("doc-1", "user-a", "Notes", false, time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))

	summary, cards, quiz := s.generatedBundle("doc-1", "v1")
	s.Require().NoError(s.repo.SaveGenerated(ctx, "doc-1", summary, cards, quiz))

	ok, err := s.repo.FlashcardExists(ctx, "fc-doc-1-1")
	s.Require().NoError(err)
	s.Assert().True(ok)

	ok, err = s.repo.FlashcardExists(ctx, "fc-missing")
	s.Require().NoError(err)
	s.Assert().False(ok)

	ok, err = s.repo.QuizExists(ctx, "quiz-doc-1")
	s.Require().NoError(err)
	s.Assert().True(ok)

	ok, err = s.repo.QuizExists(ctx, "quiz-missing")
	s.Require().NoError(err)
	s.Assert().False(ok)
}

func TestDocumentRepositorySuite(t *testing.T) {
	suite.Run(t, new(DocumentRepositorySuite))
}
