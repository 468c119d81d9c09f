//go:build mage

// Package main contains Mage build targets for booth-pages developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "booth-pages"
	cmdPkg  = "./cmd/booth-pages"

	// Relative to the project root, matching the CLI defaults.
	inputFile = "public/all_booths.txt"
	pagesDir  = "public/booths"
)

// Build compiles the CLI binary into bin/. The binary resolves its default
// paths against the parent of bin/, so it must stay there.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	version, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil {
		version = "dev"
	}
	ldflags := "-X main.version=" + version
	if err := sh.RunV("go", "build", "-ldflags", ldflags, "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s (%s)\n", out, version)
	return nil
}

// Generate rebuilds the binary and regenerates every booth page from
// public/all_booths.txt.
func Generate() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName))
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Clean removes the binary and every generated booth page.
func Clean() error {
	if err := sh.Rm(binDir); err != nil {
		return err
	}
	pages, err := filepath.Glob(filepath.Join(pagesDir, "*.html"))
	if err != nil {
		return err
	}
	for _, p := range pages {
		if err := sh.Rm(p); err != nil {
			return err
		}
	}
	fmt.Printf("Removed %s/ and %d page(s) from %s/\n", binDir, len(pages), pagesDir)
	return nil
}

// Stats prints project metrics: Go production/test LOC, booth records in the
// data file, and pages currently generated.
func Stats() error {
	prodLines, err := countGoLines(".", false)
	if err != nil {
		return err
	}
	testLines, err := countGoLines(".", true)
	if err != nil {
		return err
	}
	records, err := countRecords(inputFile)
	if err != nil {
		return err
	}
	pages, err := filepath.Glob(filepath.Join(pagesDir, "*.html"))
	if err != nil {
		return err
	}

	fmt.Printf("Lines of code (Go, production): %d\n", prodLines)
	fmt.Printf("Lines of code (Go, tests):      %d\n", testLines)
	fmt.Printf("Booth records (start markers):  %d\n", records)
	fmt.Printf("Booth pages generated:          %d\n", len(pages))
	return nil
}

// countGoLines walks the directory tree and counts non-blank lines in Go files.
// If testOnly is true, count only _test.go files; otherwise count non-test .go files.
func countGoLines(root string, testOnly bool) (int, error) {
	total := 0
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if strings.HasPrefix(info.Name(), "_") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		if isTest := strings.HasSuffix(path, "_test.go"); isTest != testOnly {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		for _, line := range strings.Split(string(data), "\n") {
			if strings.TrimSpace(line) != "" {
				total++
			}
		}
		return nil
	})
	return total, err
}

// countRecords counts start markers in the booth data file. A missing file
// counts as zero.
func countRecords(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}
	return strings.Count(string(data), "<start>"), nil
}
