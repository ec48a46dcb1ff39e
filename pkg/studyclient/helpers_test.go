package studyclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"studyaid/pkg/studyclient"
)

// fakeBackend wraps httptest.Server and counts requests per
// "METHOD /path" so tests can assert how often an endpoint was hit.
type fakeBackend struct {
	srv  *httptest.Server
	mu   sync.Mutex
	hits map[string]int
}

func newFakeBackend(t *testing.T, handler http.HandlerFunc) *fakeBackend {
	t.Helper()
	b := &fakeBackend{hits: make(map[string]int)}
	b.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.hits[r.Method+" "+r.URL.Path]++
		b.mu.Unlock()
		handler(w, r)
	}))
	t.Cleanup(b.srv.Close)
	return b
}

func (b *fakeBackend) URL() string { return b.srv.URL }

func (b *fakeBackend) Hits(key string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hits[key]
}

func (b *fakeBackend) TotalHits() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	total := 0
	for _, n := range b.hits {
		total += n
	}
	return total
}

func respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondDetail(w http.ResponseWriter, status int, detail string) {
	respond(w, status, map[string]string{"detail": detail})
}

// stubSource is an in-memory DataSource for exercising the page and
// study flows without a backend.
type stubSource struct {
	demo bool

	docs         []studyclient.DocumentListItem
	docsErr      error
	detail       *studyclient.DocumentDetail
	detailErr    error
	analytics    *studyclient.AnalyticsPageData
	analyticsErr error

	startID    string
	startErr   error
	startCalls int
	startDoc   string
	startType  string

	endCalls int
	endID    string
	endErr   error

	flashcardAttempts []studyclient.FlashcardAttempt
	flashcardErr      error
	quizAttempts      []studyclient.QuizAttempt
	quizErr           error
}

var _ studyclient.DataSource = (*stubSource)(nil)

func (s *stubSource) Demo() bool { return s.demo }

func (s *stubSource) ListDocuments(ctx context.Context) ([]studyclient.DocumentListItem, error) {
	if s.docsErr != nil {
		return nil, s.docsErr
	}
	return s.docs, nil
}

func (s *stubSource) GetDocument(ctx context.Context, id string) (*studyclient.DocumentDetail, error) {
	if s.detailErr != nil {
		return nil, s.detailErr
	}
	return s.detail, nil
}

func (s *stubSource) AnalyticsPageData(ctx context.Context) (*studyclient.AnalyticsPageData, error) {
	if s.analyticsErr != nil {
		return nil, s.analyticsErr
	}
	return s.analytics, nil
}

func (s *stubSource) StartSession(ctx context.Context, documentID, sessionType string) (string, error) {
	s.startCalls++
	s.startDoc = documentID
	s.startType = sessionType
	if s.startErr != nil {
		return "", s.startErr
	}
	return s.startID, nil
}

func (s *stubSource) EndSession(ctx context.Context, sessionID string) error {
	s.endCalls++
	s.endID = sessionID
	return s.endErr
}

func (s *stubSource) RecordFlashcardAttempt(ctx context.Context, attempt studyclient.FlashcardAttempt) error {
	s.flashcardAttempts = append(s.flashcardAttempts, attempt)
	return s.flashcardErr
}

func (s *stubSource) RecordQuizAttempt(ctx context.Context, attempt studyclient.QuizAttempt) error {
	s.quizAttempts = append(s.quizAttempts, attempt)
	return s.quizErr
}

func deck(ids ...string) []studyclient.Flashcard {
	cards := make([]studyclient.Flashcard, 0, len(ids))
	for _, id := range ids {
		cards = append(cards, studyclient.Flashcard{ID: id, Question: "Q " + id, Answer: "A " + id})
	}
	return cards
}
