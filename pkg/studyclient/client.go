// Package studyclient is the Go SDK for a studyaid backend: document
// upload and processing, study content retrieval, and analytics
// tracking, plus the page-level flows a frontend builds on top of them.
package studyclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Client is a thin HTTP client for the backend REST API. All methods
// take a context; a canceled context returns ctx.Err() so callers can
// discard late responses. The zero base URL is legal: every call then
// fails fast with ErrNotConfigured.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// WithLogger attaches a logger for request-level debug output.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Configured reports whether a backend base URL is set.
func (c *Client) Configured() bool {
	return c.baseURL != ""
}

// Ping checks connectivity with the backend.
func (c *Client) Ping(ctx context.Context) error {
	return c.get(ctx, "/ping", nil)
}

// ListDocuments returns the uploaded documents, newest first.
func (c *Client) ListDocuments(ctx context.Context) ([]DocumentListItem, error) {
	var docs []DocumentListItem
	if err := c.get(ctx, "/documents", &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// GetDocument fetches one document with its generated study content.
func (c *Client) GetDocument(ctx context.Context, id string) (*DocumentDetail, error) {
	var detail DocumentDetail
	if err := c.get(ctx, "/documents/"+id, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// UploadDocument posts a PDF as multipart form data and returns the
// created document.
func (c *Client) UploadDocument(ctx context.Context, filename, title string, data []byte) (*Document, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("pdf", filename)
	if err != nil {
		return nil, err
	}
	if _, err := fw.Write(data); err != nil {
		return nil, err
	}
	if err := mw.WriteField("title", title); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/documents/upload", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var doc Document
	if err := c.do(req, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ProcessDocument triggers content generation for an uploaded document.
func (c *Client) ProcessDocument(ctx context.Context, id string) error {
	return c.postJSON(ctx, "/documents/"+id+"/process", nil, nil)
}

// AnalyticsPageData fetches the aggregate analytics payload.
func (c *Client) AnalyticsPageData(ctx context.Context) (*AnalyticsPageData, error) {
	var data AnalyticsPageData
	if err := c.get(ctx, "/analytics/pagedata", &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// StartSession opens a study session for a document and returns the
// session id.
func (c *Client) StartSession(ctx context.Context, documentID, sessionType string) (string, error) {
	payload := struct {
		DocumentID  string `json:"document_id"`
		SessionType string `json:"session_type,omitempty"`
	}{DocumentID: documentID, SessionType: sessionType}

	var resp struct {
		ID string `json:"id"`
	}
	if err := c.postJSON(ctx, "/analytics/session/start", payload, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

// EndSession terminates a study session.
func (c *Client) EndSession(ctx context.Context, sessionID string) error {
	return c.postJSON(ctx, "/analytics/session/"+sessionID+"/end", nil, nil)
}

// RecordFlashcardAttempt records one flashcard answer.
func (c *Client) RecordFlashcardAttempt(ctx context.Context, attempt FlashcardAttempt) error {
	return c.postJSON(ctx, "/analytics/flashcard/attempt", attempt, nil)
}

// RecordQuizAttempt records one completed quiz.
func (c *Client) RecordQuizAttempt(ctx context.Context, attempt QuizAttempt) error {
	return c.postJSON(ctx, "/analytics/quiz/attempt", attempt, nil)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	if !c.Configured() {
		return ErrNotConfigured
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, payload, out any) error {
	if !c.Configured() {
		return ErrNotConfigured
	}
	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			return err
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Surface cancellation as the plain context error so callers
		// can discard the late response without unwrapping.
		if ctxErr := req.Context().Err(); ctxErr != nil {
			return ctxErr
		}
		c.log.Error().Err(err).Str("path", req.URL.Path).Msg("request failed")
		return fmt.Errorf("studyclient: %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("request completed")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("studyclient: decode %s response: %w", req.URL.Path, err)
	}
	return nil
}
