package api

import (
	"io"
	"net/http"
	"strings"

	"studyaid/internal/errors"
	"studyaid/internal/generator"
)

type generateRequest struct {
	Text string `json:"text"`
}

type processingResponse struct {
	Summary    *generator.SummaryContent    `json:"summary"`
	Quiz       *generator.QuizContent       `json:"quiz"`
	Flashcards *generator.FlashcardsContent `json:"flashcards"`
}

// handleUploadPDF extracts text and generates all three artifacts in one
// call, returning them without persisting anything.
func (s *Server) handleUploadPDF(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		handleError(w, r, errors.NewBadRequestError("Invalid multipart form"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		handleError(w, r, errors.NewBadRequestError("Missing file field 'file'"))
		return
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
		handleError(w, r, errors.NewBadRequestError("Only PDF files are allowed"))
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		handleError(w, r, errors.NewInternalError(err))
		return
	}

	text, err := s.ExtractText(data)
	if err != nil {
		handleError(w, r, errors.NewBadRequestError("Error extracting PDF text: "+err.Error()))
		return
	}
	if strings.TrimSpace(text) == "" {
		handleError(w, r, errors.NewBadRequestError("No text found in PDF"))
		return
	}

	summary, err := s.Generator.GenerateSummary(r.Context(), text)
	if err != nil {
		handleError(w, r, err)
		return
	}
	quiz, err := s.Generator.GenerateQuiz(r.Context(), text)
	if err != nil {
		handleError(w, r, err)
		return
	}
	flashcards, err := s.Generator.GenerateFlashcards(r.Context(), text)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, processingResponse{
		Summary:    summary,
		Quiz:       quiz,
		Flashcards: flashcards,
	})
}

func (s *Server) handleGenerateSummary(w http.ResponseWriter, r *http.Request) {
	text, ok := s.readGenerateText(w, r)
	if !ok {
		return
	}

	content, err := s.Generator.GenerateSummary(r.Context(), text)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, content)
}

func (s *Server) handleGenerateQuiz(w http.ResponseWriter, r *http.Request) {
	text, ok := s.readGenerateText(w, r)
	if !ok {
		return
	}

	content, err := s.Generator.GenerateQuiz(r.Context(), text)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, content)
}

func (s *Server) handleGenerateFlashcards(w http.ResponseWriter, r *http.Request) {
	text, ok := s.readGenerateText(w, r)
	if !ok {
		return
	}

	content, err := s.Generator.GenerateFlashcards(r.Context(), text)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, content)
}

// readGenerateText pulls the text payload shared by the generate
// endpoints, writing the error response itself when the body is bad.
func (s *Server) readGenerateText(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req generateRequest
	if err := readJSON(r, &req); err != nil {
		handleError(w, r, err)
		return "", false
	}
	if strings.TrimSpace(req.Text) == "" {
		handleError(w, r, errors.NewBadRequestError("Text cannot be empty"))
		return "", false
	}
	return req.Text, true
}
