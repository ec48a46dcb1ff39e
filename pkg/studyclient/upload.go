package studyclient

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
)

// ErrNotReady is returned by Run before a file and title are accepted.
var ErrNotReady = errors.New("studyclient: a PDF file and a title are required")

// UploadFlow carries the upload form state: an accepted PDF filename and
// a title. Run posts the file, triggers processing and yields the
// navigation target for the new document.
type UploadFlow struct {
	client *Client
	cache  *Cache

	filename string
	title    string
}

// NewUploadFlow builds a flow around a client. A non-nil cache is wiped
// after each successful mutating step.
func NewUploadFlow(client *Client, cache *Cache) *UploadFlow {
	return &UploadFlow{client: client, cache: cache}
}

// SetFile accepts a filename into the form state. Non-PDF names are
// rejected with ErrNotPDF and leave the state unchanged.
func (f *UploadFlow) SetFile(name string) error {
	if !strings.HasSuffix(strings.ToLower(name), ".pdf") {
		return ErrNotPDF
	}
	f.filename = name
	return nil
}

// SetTitle records the document title.
func (f *UploadFlow) SetTitle(title string) {
	f.title = title
}

// CanSubmit reports whether a file is accepted and the title is non-empty.
func (f *UploadFlow) CanSubmit() bool {
	return f.filename != "" && strings.TrimSpace(f.title) != ""
}

// Run uploads the accepted file, triggers processing, and returns the
// created document id with the navigation target for its detail view.
// When processing fails after a successful upload, the document id is
// still returned beside the error so the orphaned document can be
// reported. An unconfigured client fails before any network call.
func (f *UploadFlow) Run(ctx context.Context, data []byte) (docID, target string, err error) {
	if !f.CanSubmit() {
		return "", "", ErrNotReady
	}

	doc, err := f.client.UploadDocument(ctx, f.filename, f.title, data)
	if err != nil {
		return "", "", err
	}
	f.cache.Invalidate()

	if err := f.client.ProcessDocument(ctx, doc.ID); err != nil {
		zerolog.Ctx(ctx).Warn().
			Err(err).
			Str("document_id", doc.ID).
			Msg("processing failed after upload, document has no generated content")
		return doc.ID, "", err
	}
	f.cache.Invalidate()

	return doc.ID, "/document/" + doc.ID, nil
}
