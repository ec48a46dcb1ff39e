package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyaid/internal/models"
)

func TestUploadDocument(t *testing.T) {
	env := newTestEnv(t)

	rec := env.postMultipart(t, "/documents/upload", "pdf", "Algebra Notes.PDF", []byte("lecture text about algebra"), map[string]string{"title": "  Algebra  "})

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var doc models.Document
	decodeJSON(t, rec, &doc)
	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, "Algebra", doc.Title)
	assert.Equal(t, "default-user-id", doc.UserID)
	assert.Equal(t, "uploads/"+doc.ID+".pdf", doc.FilePath)
}

func TestUploadDocument_RejectsNonPDF(t *testing.T) {
	env := newTestEnv(t)

	rec := env.postMultipart(t, "/documents/upload", "pdf", "notes.txt", []byte("text"), map[string]string{"title": "Algebra"})

	assertDetail(t, rec, http.StatusBadRequest, "File must be a PDF")
}

func TestUploadDocument_RejectsMissingTitle(t *testing.T) {
	env := newTestEnv(t)

	rec := env.postMultipart(t, "/documents/upload", "pdf", "notes.pdf", []byte("text"), nil)

	assertDetail(t, rec, http.StatusBadRequest, "Title cannot be empty")
}

func TestUploadDocument_RejectsMissingFile(t *testing.T) {
	env := newTestEnv(t)

	rec := env.postMultipart(t, "/documents/upload", "attachment", "notes.pdf", []byte("text"), map[string]string{"title": "Algebra"})

	assertDetail(t, rec, http.StatusBadRequest, "Missing file field 'pdf'")
}

func TestUploadDocument_RejectsEmptyPDF(t *testing.T) {
	env := newTestEnv(t)

	rec := env.postMultipart(t, "/documents/upload", "pdf", "notes.pdf", []byte("   "), map[string]string{"title": "Algebra"})

	assertDetail(t, rec, http.StatusBadRequest, "No text found in PDF")
}

func TestListDocuments(t *testing.T) {
	env := newTestEnv(t)

	rec := env.get(t, "/documents")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	id := env.uploadDocument(t, "Algebra", "lecture text")

	rec = env.get(t, "/documents")
	require.Equal(t, http.StatusOK, rec.Code)
	var docs []models.DocumentListItem
	decodeJSON(t, rec, &docs)
	require.Len(t, docs, 1)
	assert.Equal(t, id, docs[0].ID)
	assert.Equal(t, "Algebra", docs[0].Title)
}

func TestGetDocument_Unknown(t *testing.T) {
	env := newTestEnv(t)

	rec := env.get(t, "/documents/missing")

	assertDetail(t, rec, http.StatusNotFound, "Document not found")
}

func TestProcessDocument_Unknown(t *testing.T) {
	env := newTestEnv(t)

	rec := env.postJSON(t, "/documents/missing/process", nil)

	assertDetail(t, rec, http.StatusNotFound, "Document not found")
}

func TestProcessDocumentFlow(t *testing.T) {
	env := newTestEnv(t)
	id := env.uploadDocument(t, "Algebra", "lecture text about algebra")

	rec := env.postJSON(t, "/documents/"+id+"/process", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var processed map[string]string
	decodeJSON(t, rec, &processed)
	assert.Equal(t, "success", processed["status"])
	assert.Equal(t, "Document processed successfully with AI-generated content", processed["message"])
	assert.Equal(t, id, processed["document_id"])

	rec = env.get(t, "/documents/"+id)
	require.Equal(t, http.StatusOK, rec.Code)
	var detail models.DocumentDetail
	decodeJSON(t, rec, &detail)

	require.NotNil(t, detail.Summary)
	assert.Equal(t, "sum-"+id, detail.Summary.ID)
	assert.Contains(t, detail.Summary.Content, "core concepts")

	require.Len(t, detail.Flashcards, 3)
	assert.Equal(t, "fc-"+id+"-1", detail.Flashcards[0].ID)

	require.NotNil(t, detail.Quiz)
	assert.Equal(t, "quiz-"+id, detail.Quiz.ID)
	assert.Equal(t, "Quiz: Algebra", detail.Quiz.Title)
	require.Len(t, detail.Quiz.Questions, 2)
	assert.Equal(t, "Core concepts", detail.Quiz.Questions[0].CorrectAnswer)
}

func TestGetDocument_BeforeProcessingHasNoContent(t *testing.T) {
	env := newTestEnv(t)
	id := env.uploadDocument(t, "Algebra", "lecture text")

	rec := env.get(t, "/documents/"+id)
	require.Equal(t, http.StatusOK, rec.Code)

	var detail struct {
		Summary    any   `json:"summary"`
		Flashcards []any `json:"flashcards"`
		Quiz       any   `json:"quiz"`
	}
	decodeJSON(t, rec, &detail)
	assert.Nil(t, detail.Summary)
	assert.NotNil(t, detail.Flashcards)
	assert.Len(t, detail.Flashcards, 0)
	assert.Nil(t, detail.Quiz)
}
