package studyclient

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"studyaid/internal/study"
)

// DemoWarning is shown on the dashboard when sample data is served
// because no backend is configured.
const DemoWarning = "Backend is not configured. Showing sample data."

// DashboardPage holds the document list and the analytics snapshot.
// The two fetches are independent: a failure empties its own section
// and leaves the other alone.
type DashboardPage struct {
	source DataSource

	Documents []DocumentListItem
	Analytics OverallAnalytics
	Warning   string
}

func NewDashboardPage(source DataSource) *DashboardPage {
	return &DashboardPage{source: source}
}

func (p *DashboardPage) Load(ctx context.Context) {
	log := zerolog.Ctx(ctx)
	p.Warning = ""
	if p.source.Demo() {
		p.Warning = DemoWarning
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		docs, err := p.source.ListDocuments(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("document list unavailable")
			p.Documents = []DocumentListItem{}
			return
		}
		p.Documents = docs
	}()
	go func() {
		defer wg.Done()
		data, err := p.source.AnalyticsPageData(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("analytics snapshot unavailable")
			p.Analytics = OverallAnalytics{}
			return
		}
		p.Analytics = data.OverallAnalytics
	}()
	wg.Wait()
}

// DocumentPage holds one document's study content. Any failure to load,
// 404 or otherwise, ends in the NotFound terminal state.
type DocumentPage struct {
	source DataSource

	Detail   *DocumentDetail
	NotFound bool
}

func NewDocumentPage(source DataSource) *DocumentPage {
	return &DocumentPage{source: source}
}

func (p *DocumentPage) Load(ctx context.Context, id string) {
	detail, err := p.source.GetDocument(ctx, id)
	if err != nil {
		log := zerolog.Ctx(ctx)
		if IsNotFound(err) {
			log.Info().Str("document_id", id).Msg("document not found")
		} else {
			log.Warn().Err(err).Str("document_id", id).Msg("document fetch failed")
		}
		p.Detail = nil
		p.NotFound = true
		return
	}
	p.Detail = detail
	p.NotFound = false
}

// AnalyticsPage holds the full analytics payload. A failed fetch
// substitutes the all-zero payload so charts render an explicit
// "no data" state.
type AnalyticsPage struct {
	source DataSource

	Data AnalyticsPageData
}

func NewAnalyticsPage(source DataSource) *AnalyticsPage {
	return &AnalyticsPage{source: source}
}

func (p *AnalyticsPage) Load(ctx context.Context) {
	data, err := p.source.AnalyticsPageData(ctx)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("analytics unavailable")
		p.Data = AnalyticsPageData{
			StudySessionsChartData:        []StudySessionPoint{},
			FlashcardPerformanceChartData: []FlashcardPerformancePoint{},
			QuizPerformanceChartData:      []QuizPerformancePoint{},
		}
		return
	}
	p.Data = *data
}

// DisplayAccuracy is the overall flashcard accuracy rounded for display.
func (p *AnalyticsPage) DisplayAccuracy() int {
	return study.DisplayPercent(p.Data.OverallAnalytics.FlashcardAccuracyOverall)
}

// DisplayAverageQuizScore is the overall quiz average rounded for display.
func (p *AnalyticsPage) DisplayAverageQuizScore() int {
	return study.DisplayPercent(p.Data.OverallAnalytics.AverageQuizScoreOverall)
}

// Normalize maps non-finite values to zero before rendering. The stored
// values are never mutated.
func Normalize(x float64) float64 { return study.Normalize(x) }

// DisplayPercent normalizes and rounds a percentage for display.
func DisplayPercent(x float64) int { return study.DisplayPercent(x) }
