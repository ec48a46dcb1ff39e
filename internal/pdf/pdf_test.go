package pdf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"studyaid/internal/pdf"
)

func TestExtractText_RejectsNonPDF(t *testing.T) {
	_, err := pdf.ExtractText([]byte("plain text pretending to be a pdf"))
	assert.Error(t, err, "non-PDF bytes should not parse")
}

func TestExtractText_RejectsEmptyInput(t *testing.T) {
	_, err := pdf.ExtractText(nil)
	assert.Error(t, err, "empty input should not parse")
}

func TestExtractText_RejectsTruncatedPDF(t *testing.T) {
	// A real header with nothing behind it
	_, err := pdf.ExtractText([]byte("%PDF-1.4\n"))
	assert.Error(t, err)
}
