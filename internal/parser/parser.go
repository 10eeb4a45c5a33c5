// Package parser turns source documents into linear text, page by page.
package parser

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Extracted is the plain-text rendering of one document.
type Extracted struct {
	Title string   // Filename without extension
	Pages []string // Text per page; single-page formats have one entry
}

// Text joins the pages with a blank line between them.
func (e *Extracted) Text() string {
	return strings.Join(e.Pages, "\n\n")
}

// PageCount is advisory; it is logged but never used to build records.
func (e *Extracted) PageCount() int {
	return len(e.Pages)
}

// Parser converts raw document bytes into text.
type Parser interface {
	Parse(r io.Reader, filename string) (*Extracted, error)
}

// Options tunes parser construction.
type Options struct {
	// PDFFallbackPdftotext retries failed PDF extraction with the pdftotext
	// binary when it is on PATH.
	PDFFallbackPdftotext bool
}

// SupportedExtensions lists file extensions this tool can handle.
var SupportedExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".csv":      true,
	".html":     true,
	".htm":      true,
	".pdf":      true,
	".docx":     true,
}

// ForFile returns the appropriate parser for a filename.
func ForFile(filename string, opts Options) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return &TextParser{}, nil
	case ".md", ".markdown":
		return &MarkdownParser{}, nil
	case ".csv":
		return &CSVParser{}, nil
	case ".html", ".htm":
		return &HTMLParser{}, nil
	case ".pdf":
		return &PDFParser{FallbackPdftotext: opts.PDFFallbackPdftotext}, nil
	case ".docx":
		return &DOCXParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

func titleFor(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
