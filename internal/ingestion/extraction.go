// Package ingestion handles candidate document intake: extracting plain text
// from resume files and pulling research seeds (URLs, profile usernames) out
// of the text.
package ingestion

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

var (
	// ErrUnsupportedFormat is returned for file extensions we cannot extract.
	ErrUnsupportedFormat = fmt.Errorf("unsupported file format")
	// ErrExtractionFailed is returned when a document cannot be parsed.
	ErrExtractionFailed = fmt.Errorf("document extraction failed")
)

// ExtractFile extracts plain text from a resume file based on its extension.
// Supported formats: .pdf, .docx, .txt.
func ExtractFile(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrExtractionFailed, err)
		}
		return ExtractPDF(data)
	case ".docx":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrExtractionFailed, err)
		}
		return ExtractDOCX(data)
	case ".txt":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrExtractionFailed, err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// ExtractBytes extracts plain text from in-memory file content, using the
// original filename to decide the format. Uploads arrive this way over HTTP.
func ExtractBytes(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return ExtractPDF(data)
	case ".docx":
		return ExtractDOCX(data)
	case ".txt", "":
		return string(data), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(filename))
	}
}

// ExtractPDF extracts text from PDF content. Link annotations are appended as
// a trailing "Links:" section so profile URLs hidden behind anchor text still
// reach the research stage.
func ExtractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrExtractionFailed, err)
	}

	textReader, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrExtractionFailed, err)
	}

	textBytes, err := io.ReadAll(textReader)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrExtractionFailed, err)
	}

	text := string(textBytes)
	links := extractPDFLinks(reader)
	if len(links) > 0 {
		text += "\n\nLinks:\n" + strings.Join(links, "\n")
	}

	return text, nil
}

// extractPDFLinks walks page annotations collecting URI link targets.
func extractPDFLinks(reader *pdf.Reader) []string {
	var links []string
	seen := make(map[string]bool)

	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		annots := page.V.Key("Annots")
		for j := 0; j < annots.Len(); j++ {
			annot := annots.Index(j)
			if annot.Key("Subtype").Name() != "Link" {
				continue
			}
			uri := annot.Key("A").Key("URI")
			if uri.IsNull() {
				continue
			}
			link := uri.RawString()
			if link != "" && !seen[link] {
				seen[link] = true
				links = append(links, link)
			}
		}
	}

	return links
}

// docxDocument models the minimal structure of word/document.xml needed to
// recover paragraph text.
type docxDocument struct {
	Body struct {
		Paragraphs []docxParagraph `xml:"p"`
	} `xml:"body"`
}

type docxParagraph struct {
	Runs []struct {
		Text string `xml:"t"`
	} `xml:"r"`
}

// ExtractDOCX extracts paragraph text from DOCX content.
func ExtractDOCX(data []byte) (string, error) {
	zipReader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrExtractionFailed, err)
	}

	var docFile *zip.File
	for _, f := range zipReader.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", fmt.Errorf("%w: missing word/document.xml", ErrExtractionFailed)
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrExtractionFailed, err)
	}
	defer func() { _ = rc.Close() }()

	docBytes, err := io.ReadAll(rc)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrExtractionFailed, err)
	}

	var doc docxDocument
	if err := xml.Unmarshal(docBytes, &doc); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExtractionFailed, err)
	}

	var sb strings.Builder
	for _, para := range doc.Body.Paragraphs {
		for _, run := range para.Runs {
			sb.WriteString(run.Text)
		}
		sb.WriteString("\n")
	}

	return sb.String(), nil
}
