package parser

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// TextParser handles plain text files. Form feeds split pages.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (*Extracted, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read text: %w", err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%s is not valid UTF-8", filename)
	}
	return &Extracted{
		Title: titleFor(filename),
		Pages: splitPages(strings.TrimPrefix(string(data), "\ufeff")),
	}, nil
}
