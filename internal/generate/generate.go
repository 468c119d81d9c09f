// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package generate runs the booth page pipeline: load the booth data file,
// extract records, render each one, and write <id>.html into the output
// directory.
package generate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/booth-pages/internal/booth"
	"github.com/pdiddy/booth-pages/internal/render"
	"github.com/pdiddy/booth-pages/pkg/types"
)

const pageExt = ".html"

// ErrInvalidID reports a record id that cannot be used as a file name inside
// the output directory.
var ErrInvalidID = errors.New("invalid booth id")

// BatchResult holds the outcome of a generation run.
type BatchResult struct {
	Generated  int      `json:"generated" yaml:"generated"`
	Skipped    int      `json:"skipped" yaml:"skipped"`
	Failed     int      `json:"failed" yaml:"failed"`
	Duplicates int      `json:"duplicates" yaml:"duplicates"`
	Files      []string `json:"files" yaml:"files"`
}

// Total returns the number of records processed.
func (r BatchResult) Total() int {
	return r.Generated + r.Skipped + r.Failed
}

// HasFailures reports whether any record failed to write.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Run generates one page per record in cfg.InputPath, printing progress and
// per-record status to w. Load failures are fatal and leave the output
// directory untouched. Write failures are counted and the batch continues.
// A record whose id repeats an earlier one overwrites the earlier page.
func Run(ctx context.Context, cfg types.GenerateConfig, w io.Writer) (BatchResult, error) {
	text, err := booth.Load(cfg.InputPath, w)
	if err != nil {
		return BatchResult{}, err
	}

	records := booth.Extract(text)
	if len(records) == 0 {
		fmt.Fprintf(w, "No booth records found in %s\n", cfg.InputPath)
		return BatchResult{}, nil
	}
	slog.Debug("extracted booth records", "count", len(records), "output_dir", cfg.OutputDir)
	fmt.Fprintf(w, "writing: %s\n", cfg.OutputDir)

	opts := render.Options{Escape: cfg.Escape}
	seen := make(map[string]string, len(records)) // lowercased id -> id
	var result BatchResult

	for _, rec := range records {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		if err := validateID(rec.ID); err != nil {
			fmt.Fprintf(w, "skipped: %q (%v)\n", rec.ID, err)
			result.Skipped++
			continue
		}

		doc, err := render.Page(rec, opts)
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", rec.ID, err)
			result.Failed++
			continue
		}

		path, err := WriteRecord(cfg.OutputDir, rec.ID, doc)
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", rec.ID, err)
			result.Failed++
			continue
		}

		key := strings.ToLower(rec.ID)
		prev, dup := seen[key]
		switch {
		case dup && prev == rec.ID:
			fmt.Fprintf(w, "warning: duplicate id %s overwrites earlier record\n", rec.ID)
			result.Duplicates++
		case dup:
			fmt.Fprintf(w, "warning: duplicate id %s collides with %s on case-insensitive filesystems\n", rec.ID, prev)
			result.Duplicates++
			result.Files = append(result.Files, path)
		default:
			result.Files = append(result.Files, path)
		}
		seen[key] = rec.ID

		fmt.Fprintf(w, "generated: %s%s (%s)\n", rec.ID, pageExt, rec.Name)
		result.Generated++
	}

	fmt.Fprintf(w, "\nBatch summary: %d generated, %d skipped, %d failed (total: %d)\n",
		result.Generated, result.Skipped, result.Failed, result.Total())
	return result, nil
}

// WriteRecord writes doc to outDir/<id>.html, creating outDir if needed and
// replacing any existing file. It returns the path written.
func WriteRecord(outDir, id, doc string) (string, error) {
	if err := validateID(id); err != nil {
		return "", err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory %s: %w", outDir, err)
	}

	path := filepath.Join(outDir, id+pageExt)
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// validateID rejects ids that would not name a single file directly inside
// the output directory.
func validateID(id string) error {
	switch {
	case strings.TrimSpace(id) == "":
		return fmt.Errorf("%w: empty", ErrInvalidID)
	case id == "." || id == "..":
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	case strings.ContainsAny(id, `/\`):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidID, id)
	}
	return nil
}
