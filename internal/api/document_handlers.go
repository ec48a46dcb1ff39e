package api

import (
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"studyaid/internal/errors"
	"studyaid/internal/models"
	"studyaid/internal/services"
)

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	filter := models.DocumentFilter{UserID: services.DefaultUserID}

	q := r.URL.Query()
	filter.Query = q.Get("q")
	if v := q.Get("processed"); v != "" {
		processed := v == "true"
		filter.Processed = &processed
	}
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Limit = n
		}
	}
	if v := q.Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Offset = n
		}
	}

	docs, err := s.Documents.List(r.Context(), filter)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, docs)
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	detail, err := s.Documents.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (s *Server) handleUploadDocument(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		handleError(w, r, errors.NewBadRequestError("Invalid multipart form"))
		return
	}

	file, header, err := r.FormFile("pdf")
	if err != nil {
		handleError(w, r, errors.NewBadRequestError("Missing file field 'pdf'"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		handleError(w, r, errors.NewInternalError(err))
		return
	}

	doc, err := s.Documents.Upload(r.Context(), header.Filename, r.FormValue("title"), data)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, doc)
}

func (s *Server) handleProcessDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.Documents.Process(r.Context(), id); err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":      "success",
		"message":     "Document processed successfully with AI-generated content",
		"document_id": id,
	})
}
