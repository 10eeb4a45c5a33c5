package pipeline

import (
	"context"
	"fmt"

	"github.com/dgallion1/notesgest/internal/materials"
)

// Build runs every supported document in notesDir and writes the artifact to
// outPath. Only listing, cancellation and the write itself are fatal.
func (r *Runner) Build(ctx context.Context, notesDir, outPath string) (*materials.Materials, *Report, error) {
	docs, err := ListDocuments(notesDir)
	if err != nil {
		return nil, nil, err
	}
	r.log.Info("building materials", "notes_dir", notesDir, "documents", len(docs))

	m, report, err := r.Run(ctx, docs)
	if err != nil {
		return nil, report, err
	}
	if err := materials.WriteFile(outPath, m); err != nil {
		return nil, report, fmt.Errorf("write materials: %w", err)
	}
	r.log.Info("materials written", "path", outPath, "records", report.Records)
	return m, report, nil
}
