package utils

import (
	"bytes"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePDF(t *testing.T, pages ...string) []byte {
	t.Helper()
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetCompression(false)
	for _, text := range pages {
		doc.AddPage()
		doc.SetFont("Arial", "", 12)
		doc.CellFormat(0, 10, text, "", 1, "L", false, 0, "")
	}
	var buf bytes.Buffer
	require.NoError(t, doc.Output(&buf))
	return buf.Bytes()
}

func TestExtractPDFText(t *testing.T) {
	content := samplePDF(t, "Hello campus", "Second page")

	text, err := ExtractPDFText(content)
	require.NoError(t, err)
	assert.Contains(t, text, "Hello campus")
	assert.Contains(t, text, "Second page")

	pages, err := CountPDFPages(content)
	require.NoError(t, err)
	assert.Equal(t, 2, pages)
}

func TestExtractPDFText_NotAPDF(t *testing.T) {
	_, err := ExtractPDFText([]byte("plain text"))
	assert.Error(t, err)
	assert.False(t, IsPDF([]byte("plain text")))
	assert.True(t, IsPDF(samplePDF(t, "x")))
}
