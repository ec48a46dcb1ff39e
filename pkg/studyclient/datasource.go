package studyclient

import (
	"context"
	"strings"
)

// DataSource is the read-and-track surface the page flows build on.
// The live implementation talks to the backend; the sample one serves
// a fixed illustrative dataset when no backend is configured.
type DataSource interface {
	ListDocuments(ctx context.Context) ([]DocumentListItem, error)
	GetDocument(ctx context.Context, id string) (*DocumentDetail, error)
	AnalyticsPageData(ctx context.Context) (*AnalyticsPageData, error)

	StartSession(ctx context.Context, documentID, sessionType string) (string, error)
	EndSession(ctx context.Context, sessionID string) error
	RecordFlashcardAttempt(ctx context.Context, attempt FlashcardAttempt) error
	RecordQuizAttempt(ctx context.Context, attempt QuizAttempt) error

	// Demo reports whether the source serves sample data instead of a
	// live backend. Pages show a configuration warning when true.
	Demo() bool
}

var (
	_ DataSource = (*LiveSource)(nil)
	_ DataSource = SampleSource{}
)

// NewDataSource selects the live source when a base URL is configured
// and the sample source otherwise.
func NewDataSource(baseURL string, opts ...Option) DataSource {
	if strings.TrimSpace(baseURL) == "" {
		return SampleSource{}
	}
	return NewLiveSource(New(baseURL, opts...), NewCache())
}

// LiveSource serves data from the backend, reading through an optional
// cache that is wiped on every mutating call.
type LiveSource struct {
	client *Client
	cache  *Cache
}

// NewLiveSource wraps a client. A nil cache disables caching.
func NewLiveSource(client *Client, cache *Cache) *LiveSource {
	return &LiveSource{client: client, cache: cache}
}

func (s *LiveSource) Demo() bool { return false }

func (s *LiveSource) ListDocuments(ctx context.Context) ([]DocumentListItem, error) {
	if v, ok := s.cache.get("documents"); ok {
		if docs, ok := v.([]DocumentListItem); ok {
			return docs, nil
		}
	}
	docs, err := s.client.ListDocuments(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.set("documents", docs)
	return docs, nil
}

func (s *LiveSource) GetDocument(ctx context.Context, id string) (*DocumentDetail, error) {
	key := "document:" + id
	if v, ok := s.cache.get(key); ok {
		if detail, ok := v.(*DocumentDetail); ok {
			return detail, nil
		}
	}
	detail, err := s.client.GetDocument(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.set(key, detail)
	return detail, nil
}

func (s *LiveSource) AnalyticsPageData(ctx context.Context) (*AnalyticsPageData, error) {
	if v, ok := s.cache.get("analytics"); ok {
		if data, ok := v.(*AnalyticsPageData); ok {
			return data, nil
		}
	}
	data, err := s.client.AnalyticsPageData(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.set("analytics", data)
	return data, nil
}

func (s *LiveSource) StartSession(ctx context.Context, documentID, sessionType string) (string, error) {
	id, err := s.client.StartSession(ctx, documentID, sessionType)
	if err != nil {
		return "", err
	}
	s.cache.Invalidate()
	return id, nil
}

func (s *LiveSource) EndSession(ctx context.Context, sessionID string) error {
	if err := s.client.EndSession(ctx, sessionID); err != nil {
		return err
	}
	s.cache.Invalidate()
	return nil
}

func (s *LiveSource) RecordFlashcardAttempt(ctx context.Context, attempt FlashcardAttempt) error {
	if err := s.client.RecordFlashcardAttempt(ctx, attempt); err != nil {
		return err
	}
	s.cache.Invalidate()
	return nil
}

func (s *LiveSource) RecordQuizAttempt(ctx context.Context, attempt QuizAttempt) error {
	if err := s.client.RecordQuizAttempt(ctx, attempt); err != nil {
		return err
	}
	s.cache.Invalidate()
	return nil
}
