package ingestion

import (
	"archive/zip"
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDOCX(t *testing.T, documentXML string) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return buf.Bytes()
}

func TestExtractDOCX(t *testing.T) {
	doc := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>
    <w:p><w:r><w:t>Senior </w:t></w:r><w:r><w:t>Engineer</w:t></w:r></w:p>
  </w:body>
</w:document>`

	text, err := ExtractDOCX(buildDOCX(t, doc))
	require.NoError(t, err)
	assert.Contains(t, text, "Jane Doe")
	assert.Contains(t, text, "Senior Engineer")
}

func TestExtractDOCXMissingDocument(t *testing.T) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("word/styles.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte("<styles/>"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	_, err = ExtractDOCX(buf.Bytes())
	assert.ErrorIs(t, err, ErrExtractionFailed)
}

func TestExtractDOCXNotAZip(t *testing.T) {
	_, err := ExtractDOCX([]byte("not a zip archive"))
	assert.ErrorIs(t, err, ErrExtractionFailed)
}

func TestExtractBytes(t *testing.T) {
	text, err := ExtractBytes("resume.txt", []byte("plain text resume"))
	require.NoError(t, err)
	assert.Equal(t, "plain text resume", text)

	// Files uploaded without an extension are treated as plain text
	text, err = ExtractBytes("resume", []byte("also plain"))
	require.NoError(t, err)
	assert.Equal(t, "also plain", text)

	_, err = ExtractBytes("resume.odt", []byte("x"))
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestExtractPDFInvalid(t *testing.T) {
	_, err := ExtractPDF([]byte("definitely not a pdf"))
	assert.ErrorIs(t, err, ErrExtractionFailed)
}
