package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// CSVParser handles CSV files. The first row is the header; every data row
// becomes one "header: value, ..." line.
type CSVParser struct{}

func (p *CSVParser) Parse(r io.Reader, filename string) (*Extracted, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	out := &Extracted{Title: titleFor(filename), Pages: []string{""}}
	if len(records) == 0 {
		return out, nil
	}

	headers := records[0]
	lines := make([]string, 0, len(records)-1)
	for _, row := range records[1:] {
		if line := csvRowLine(headers, row); line != "" {
			lines = append(lines, line)
		}
	}
	out.Pages[0] = strings.Join(lines, "\n")
	return out, nil
}

// csvRowLine renders a row. Single-cell rows and cells without a header
// are emitted bare, so a row holding "1. Nombres" still reads as a heading.
func csvRowLine(headers, row []string) string {
	var parts []string
	for j, cell := range row {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		if j == 0 && len(row) == 1 || j >= len(headers) || headers[j] == "" {
			parts = append(parts, cell)
			continue
		}
		parts = append(parts, headers[j]+": "+cell)
	}
	return strings.Join(parts, ", ")
}
