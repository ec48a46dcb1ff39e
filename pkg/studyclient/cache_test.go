package studyclient_test

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyaid/pkg/studyclient"
)

func analyticsBackend(t *testing.T) *fakeBackend {
	return newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method + " " + r.URL.Path {
		case "GET /documents":
			respond(w, http.StatusOK, []map[string]any{{"id": "doc-1", "title": "Algebra"}})
		case "GET /documents/doc-1", "GET /documents/doc-2":
			respond(w, http.StatusOK, map[string]any{"id": "doc-1", "title": "Algebra", "flashcards": []any{}})
		case "GET /analytics/pagedata":
			respond(w, http.StatusOK, map[string]any{"overall_analytics": map[string]any{"total_study_time": 60}})
		default:
			respond(w, http.StatusOK, map[string]string{"status": "tracked"})
		}
	})
}

func TestLiveSource_CachesReads(t *testing.T) {
	backend := analyticsBackend(t)
	source := studyclient.NewLiveSource(studyclient.New(backend.URL()), studyclient.NewCache())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		docs, err := source.ListDocuments(ctx)
		require.NoError(t, err)
		require.Len(t, docs, 1)
	}
	assert.Equal(t, 1, backend.Hits("GET /documents"))

	for i := 0; i < 2; i++ {
		data, err := source.AnalyticsPageData(ctx)
		require.NoError(t, err)
		require.Equal(t, 60, data.OverallAnalytics.TotalStudyTime)
	}
	assert.Equal(t, 1, backend.Hits("GET /analytics/pagedata"))
}

func TestLiveSource_DocumentCacheIsKeyedByID(t *testing.T) {
	backend := analyticsBackend(t)
	source := studyclient.NewLiveSource(studyclient.New(backend.URL()), studyclient.NewCache())
	ctx := context.Background()

	_, err := source.GetDocument(ctx, "doc-1")
	require.NoError(t, err)
	_, err = source.GetDocument(ctx, "doc-2")
	require.NoError(t, err)
	_, err = source.GetDocument(ctx, "doc-1")
	require.NoError(t, err)

	assert.Equal(t, 1, backend.Hits("GET /documents/doc-1"))
	assert.Equal(t, 1, backend.Hits("GET /documents/doc-2"))
}

func TestLiveSource_MutationsInvalidate(t *testing.T) {
	backend := analyticsBackend(t)
	source := studyclient.NewLiveSource(studyclient.New(backend.URL()), studyclient.NewCache())
	ctx := context.Background()

	_, err := source.ListDocuments(ctx)
	require.NoError(t, err)

	require.NoError(t, source.EndSession(ctx, "sess-1"))

	_, err = source.ListDocuments(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, backend.Hits("GET /documents"), "a mutating call wipes the cache")

	require.NoError(t, source.RecordQuizAttempt(ctx, studyclient.QuizAttempt{QuizID: "quiz-1", TotalQuestions: 1}))

	_, err = source.ListDocuments(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, backend.Hits("GET /documents"))
}

func TestLiveSource_ErrorsAreNotCached(t *testing.T) {
	var failing atomic.Bool
	failing.Store(true)
	backend := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		if failing.Load() {
			respondDetail(w, http.StatusInternalServerError, "boom")
			return
		}
		respond(w, http.StatusOK, []map[string]any{{"id": "doc-1", "title": "Algebra"}})
	})
	source := studyclient.NewLiveSource(studyclient.New(backend.URL()), studyclient.NewCache())
	ctx := context.Background()

	_, err := source.ListDocuments(ctx)
	require.Error(t, err)

	failing.Store(false)
	docs, err := source.ListDocuments(ctx)
	require.NoError(t, err, "the earlier failure must not be served from cache")
	assert.Len(t, docs, 1)
}

func TestLiveSource_NilCache(t *testing.T) {
	backend := analyticsBackend(t)
	source := studyclient.NewLiveSource(studyclient.New(backend.URL()), nil)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := source.ListDocuments(ctx)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, backend.Hits("GET /documents"), "nil cache disables caching")
}

func TestCache_InvalidateAndLen(t *testing.T) {
	cache := studyclient.NewCache()
	assert.Equal(t, 0, cache.Len())

	backend := analyticsBackend(t)
	source := studyclient.NewLiveSource(studyclient.New(backend.URL()), cache)
	_, err := source.ListDocuments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, cache.Len())

	cache.Invalidate()
	assert.Equal(t, 0, cache.Len())
}
