// Package pipeline runs the extraction over a directory of course notes and
// aggregates the records into a materials set.
package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dgallion1/notesgest/internal/materials"
	"github.com/dgallion1/notesgest/internal/outline"
	"github.com/dgallion1/notesgest/internal/parser"
	"github.com/dgallion1/notesgest/internal/routing"
)

// Document is one source file. Name is the routing identifier.
type Document struct {
	Name string
	Path string
}

// ListDocuments returns the supported files directly inside dir, sorted by
// name. Subdirectories are not descended into.
func ListDocuments(dir string) ([]Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list notes directory: %w", err)
	}
	var docs []Document
	for _, e := range entries {
		if e.IsDir() || !parser.IsSupportedExtension(e.Name()) {
			continue
		}
		docs = append(docs, Document{Name: e.Name(), Path: filepath.Join(dir, e.Name())})
	}
	return docs, nil
}

// Extraction is the result of extracting one document in isolation.
type Extraction struct {
	Name        string             `json:"name"`
	Title       string             `json:"title"`
	Pages       int                `json:"pages"`
	ContentHash string             `json:"content_hash"`
	Mapped      bool               `json:"mapped"`
	Targets     []routing.Target   `json:"targets"`
	Records     []materials.Record `json:"records"`
}

// Runner turns documents into records and routes them.
type Runner struct {
	routes *routing.Table
	opts   parser.Options
	log    *slog.Logger
	stats  *ExtractStats
}

func NewRunner(routes *routing.Table, opts parser.Options, log *slog.Logger) *Runner {
	return &Runner{
		routes: routes,
		opts:   opts,
		log:    log,
		stats:  NewExtractStats(time.Hour),
	}
}

// Stats returns the rolling extraction-time tracker shared by every run.
func (r *Runner) Stats() *ExtractStats {
	return r.stats
}

// Routes returns the routing table in use.
func (r *Runner) Routes() *routing.Table {
	return r.routes
}

// Run processes docs in order and returns the finalized materials. A
// document that cannot be read contributes nothing; the only error returned
// is the context's.
func (r *Runner) Run(ctx context.Context, docs []Document) (*materials.Materials, *Report, error) {
	m := materials.New()
	report := newReport()

	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			report.finish()
			return nil, report, err
		}
		report.add(r.runOne(m, doc))
	}

	report.Dropped = m.Finalize()
	if report.Dropped > 0 {
		r.log.Warn("records routed only to a pseudo-level were dropped", "records", report.Dropped)
	}
	report.Records = m.Count()
	report.finish()

	r.log.Info("run complete",
		"documents", len(docs),
		"processed", report.Count(StatusProcessed),
		"empty", report.Count(StatusEmpty),
		"skipped", report.Count(StatusSkipped),
		"failed", report.Count(StatusFailed),
		"records", report.Records,
	)
	return m, report, nil
}

func (r *Runner) runOne(m *materials.Materials, doc Document) (res DocResult) {
	log := r.log.With("file", doc.Name)
	res.Name = doc.Name

	targets, ok := r.routes.Resolve(doc.Name)
	if !ok {
		log.Warn("no routing entry, skipping")
		res.Status = StatusSkipped
		return res
	}
	res.Targets = targets

	start := time.Now()
	defer func() {
		elapsed := time.Since(start)
		res.DurationMs = elapsed.Milliseconds()
		r.stats.Record(elapsed)
	}()

	f, err := os.Open(doc.Path)
	if err != nil {
		log.Error("open failed", "error", err)
		res.Status, res.Error = StatusFailed, err.Error()
		return res
	}
	defer f.Close()

	ex, err := r.extract(f, doc.Name)
	if err != nil {
		log.Error("extract failed", "error", err)
		res.Status, res.Error = StatusFailed, err.Error()
		return res
	}
	res.Pages = ex.Pages
	res.ContentHash = ex.ContentHash

	if len(ex.Records) == 0 {
		log.Warn("no text extracted", "pages", ex.Pages)
		res.Status = StatusEmpty
		return res
	}

	for _, t := range targets {
		if err := m.Append(t.Level, t.Category, ex.Records...); err != nil {
			log.Error("append failed", "target", t.String(), "error", err)
			res.Status, res.Error = StatusFailed, err.Error()
			return res
		}
	}
	res.Status = StatusProcessed
	res.Records = len(ex.Records)
	log.Info("document processed", "pages", ex.Pages, "records", res.Records, "targets", len(targets))
	return res
}

// ExtractOne parses and outlines a single document without aggregating it.
// Targets are resolved for information only.
func (r *Runner) ExtractOne(rd io.Reader, name string) (*Extraction, error) {
	start := time.Now()
	ex, err := r.extract(rd, name)
	r.stats.Record(time.Since(start))
	if err != nil {
		return nil, err
	}
	ex.Targets, ex.Mapped = r.routes.Resolve(name)
	if ex.Targets == nil {
		ex.Targets = []routing.Target{}
	}
	return ex, nil
}

func (r *Runner) extract(rd io.Reader, name string) (*Extraction, error) {
	p, err := parser.ForFile(name, r.opts)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(rd)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	text, err := p.Parse(bytes.NewReader(data), name)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}

	records := outline.Extract(text.Text())
	if records == nil {
		records = []materials.Record{}
	}
	return &Extraction{
		Name:        name,
		Title:       text.Title,
		Pages:       text.PageCount(),
		ContentHash: ContentHashHex(data),
		Records:     records,
	}, nil
}
