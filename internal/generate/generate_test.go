// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/booth-pages/internal/booth"
	"github.com/pdiddy/booth-pages/pkg/types"
)

const threeBooths = `<start>
id: "A1"
name: "Calligraphy"
description: Write your name in brush.
<line>Free</line>
<end>

<start>
id: "A2"
name: "Tea"
description: Taste oolong.
More at www.tea.example
<end>

<start>
id: "B1"
name: "Lanterns"
description: <line></line>
Make one.
<end>
`

// setupInput writes content to a booth file in a fresh temp dir and returns
// a config pointing at it and at a not-yet-created output directory.
func setupInput(t *testing.T, content string) types.GenerateConfig {
	t.Helper()
	dir := t.TempDir()
	input := filepath.Join(dir, "all_booths.txt")
	require.NoError(t, os.WriteFile(input, []byte(content), 0o644))
	return types.GenerateConfig{
		InputPath: input,
		OutputDir: filepath.Join(dir, "public", "booths"),
	}
}

func listHTML(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func TestRun(t *testing.T) {
	cfg := setupInput(t, threeBooths)
	var log bytes.Buffer

	result, err := Run(context.Background(), cfg, &log)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Generated)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, 0, result.Skipped)
	assert.Equal(t, 3, result.Total())
	assert.False(t, result.HasFailures())
	assert.Len(t, result.Files, 3)
	assert.Equal(t, []string{"A1.html", "A2.html", "B1.html"}, listHTML(t, cfg.OutputDir))

	data, err := os.ReadFile(filepath.Join(cfg.OutputDir, "A2.html"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "<title>A2 - Tea</title>")
	assert.Contains(t, string(data), "<p>Taste oolong.</p>\n<p>More at <a href=\"https://www.tea.example\" target=\"_blank\">www.tea.example</a></p>")

	data, err = os.ReadFile(filepath.Join(cfg.OutputDir, "B1.html"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "<hr>\n<p>Make one.</p>")

	assert.Contains(t, log.String(), "generated: A1.html")
	assert.Contains(t, log.String(), "Batch summary: 3 generated, 0 skipped, 0 failed (total: 3)")
}

func TestRun_DuplicateIDLastWins(t *testing.T) {
	cfg := setupInput(t, `<start> id: "X" name: "First" description: one <end>
<start> id: "X" name: "Second" description: two <end>`)
	var log bytes.Buffer

	result, err := Run(context.Background(), cfg, &log)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Generated)
	assert.Equal(t, 1, result.Duplicates)
	assert.Len(t, result.Files, 1)
	assert.Equal(t, []string{"X.html"}, listHTML(t, cfg.OutputDir))

	data, err := os.ReadFile(filepath.Join(cfg.OutputDir, "X.html"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "<title>X - Second</title>")
	assert.Contains(t, string(data), "<p>two</p>")
	assert.NotContains(t, string(data), "<p>one</p>")
	assert.Contains(t, log.String(), "warning: duplicate id X")
}

func TestRun_CaseOnlyDuplicateIDWarns(t *testing.T) {
	cfg := setupInput(t, `<start> id: "A1" name: "Upper" description: one <end>
<start> id: "a1" name: "Lower" description: two <end>`)
	var log bytes.Buffer

	result, err := Run(context.Background(), cfg, &log)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Generated)
	assert.Equal(t, 1, result.Duplicates)
	assert.Len(t, result.Files, 2)
	assert.Contains(t, log.String(), "warning: duplicate id a1 collides with A1")
}

func TestRun_NoRecords(t *testing.T) {
	cfg := setupInput(t, `<start>
id: "C1"
name: "Unterminated"
description: no end marker here`)
	var log bytes.Buffer

	result, err := Run(context.Background(), cfg, &log)
	require.NoError(t, err)

	assert.Equal(t, BatchResult{}, result)
	assert.Contains(t, log.String(), "No booth records found")
	_, statErr := os.Stat(cfg.OutputDir)
	assert.True(t, os.IsNotExist(statErr), "output directory should not be created")
}

func TestRun_MissingInput(t *testing.T) {
	dir := t.TempDir()
	cfg := types.GenerateConfig{
		InputPath: filepath.Join(dir, "missing.txt"),
		OutputDir: filepath.Join(dir, "out"),
	}
	var log bytes.Buffer

	result, err := Run(context.Background(), cfg, &log)
	require.ErrorIs(t, err, booth.ErrInputNotFound)
	assert.Contains(t, err.Error(), "missing.txt")
	assert.Equal(t, 0, result.Total())

	_, statErr := os.Stat(cfg.OutputDir)
	assert.True(t, os.IsNotExist(statErr), "output directory should not be created")
}

func TestRun_WriteFailureContinues(t *testing.T) {
	cfg := setupInput(t, threeBooths)
	// A directory where A2.html should go makes that one write fail.
	require.NoError(t, os.MkdirAll(filepath.Join(cfg.OutputDir, "A2.html"), 0o755))
	var log bytes.Buffer

	result, err := Run(context.Background(), cfg, &log)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Generated)
	assert.Equal(t, 1, result.Failed)
	assert.True(t, result.HasFailures())
	assert.Contains(t, log.String(), "failed:  A2")
	assert.FileExists(t, filepath.Join(cfg.OutputDir, "A1.html"))
	assert.FileExists(t, filepath.Join(cfg.OutputDir, "B1.html"))
}

func TestRun_InvalidIDSkipped(t *testing.T) {
	cfg := setupInput(t, `<start> id: "../escape" name: "Bad" description: x <end>
<start> id: "" name: "Empty" description: y <end>
<start> id: "ok" name: "Good" description: z <end>`)
	var log bytes.Buffer

	result, err := Run(context.Background(), cfg, &log)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Generated)
	assert.Equal(t, 2, result.Skipped)
	assert.Equal(t, []string{"ok.html"}, listHTML(t, cfg.OutputDir))
	_, statErr := os.Stat(filepath.Join(filepath.Dir(cfg.OutputDir), "escape.html"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRun_Idempotent(t *testing.T) {
	cfg := setupInput(t, threeBooths)

	_, err := Run(context.Background(), cfg, &bytes.Buffer{})
	require.NoError(t, err)
	first := readAll(t, cfg.OutputDir)

	_, err = Run(context.Background(), cfg, &bytes.Buffer{})
	require.NoError(t, err)
	second := readAll(t, cfg.OutputDir)

	assert.Equal(t, first, second)
}

func TestRun_Escape(t *testing.T) {
	cfg := setupInput(t, `<start> id: "E" name: "A & B" description: <i>hi</i> <end>`)
	cfg.Escape = true

	_, err := Run(context.Background(), cfg, &bytes.Buffer{})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(cfg.OutputDir, "E.html"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "<title>E - A &amp; B</title>")
	assert.Contains(t, string(data), "<p>&lt;i&gt;hi&lt;/i&gt;</p>")
}

func TestRun_Cancelled(t *testing.T) {
	cfg := setupInput(t, threeBooths)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := Run(ctx, cfg, &bytes.Buffer{})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, result.Generated)
}

func TestWriteRecord(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	path, err := WriteRecord(dir, "S1", "first")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "S1.html"), path)

	// Existing directory and file are fine; the file is replaced.
	_, err = WriteRecord(dir, "S1", "second")
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestWriteRecord_InvalidID(t *testing.T) {
	for _, id := range []string{"", "  ", ".", "..", "a/b", `a\b`} {
		t.Run(id, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "out")
			_, err := WriteRecord(dir, id, "doc")
			require.ErrorIs(t, err, ErrInvalidID)
			_, statErr := os.Stat(dir)
			assert.True(t, os.IsNotExist(statErr))
		})
	}
}

func readAll(t *testing.T, dir string) map[string][]byte {
	t.Helper()
	files := make(map[string][]byte)
	for _, name := range listHTML(t, dir) {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		files[name] = data
	}
	return files
}
