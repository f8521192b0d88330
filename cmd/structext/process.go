package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"

	"github.com/Rehan80221/adobe-structure-extractor/extract"
	"github.com/Rehan80221/adobe-structure-extractor/format"
)

var (
	processInput  string
	processOutput string
	schemaCheck   bool
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Process every PDF in a directory into structure JSON",
	Long: `Process finds all PDF files in the input directory, infers the structure
of each, and writes <stem>.json next to its source name in the output
directory. Documents are processed independently; a document that cannot be
decoded still produces an empty-structure JSON so downstream consumers never
see a missing file.`,
	RunE: runProcess,
}

func init() {
	processCmd.Flags().StringVar(&processInput, "input", ".", "directory containing PDF files")
	processCmd.Flags().StringVar(&processOutput, "output", ".", "directory for JSON output")
	processCmd.Flags().BoolVar(&schemaCheck, "schema-check", false, "validate each output against the JSON schema")
}

func runProcess(cmd *cobra.Command, args []string) error {
	return process(cmd.Context(), processInput, processOutput)
}

// process drives one batch. An empty input directory is a success; a
// non-empty batch where no document produced a usable structure fails, so
// automation can distinguish total failure from partial degradation. The
// degraded JSON outputs are written either way.
func process(ctx context.Context, inDir, outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	pdfs, err := findPDFs(inDir)
	if err != nil {
		return err
	}
	if len(pdfs) == 0 {
		slog.Info("no pdf files found", "dir", inDir)
		return nil
	}

	start := time.Now()
	succeeded := processBatch(ctx, pdfs, outDir)
	slog.Info("batch complete",
		"total", len(pdfs),
		"succeeded", succeeded,
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	if succeeded < len(pdfs) {
		slog.Warn("some documents degraded to empty structures", "count", len(pdfs)-succeeded)
	}
	if succeeded == 0 {
		return fmt.Errorf("no documents in %s processed successfully", inDir)
	}
	return nil
}

// findPDFs lists PDF files in dir, by extension and magic-byte sniff, sorted
// by name.
func findPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input dir: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !format.HasPDFExtension(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if ok, err := format.SniffPDFFile(path); err != nil || !ok {
			slog.Warn("skipping non-pdf content", "file", entry.Name())
			continue
		}
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths, nil
}

// processBatch runs one worker per document, bounded by GOMAXPROCS, and
// returns how many documents produced a non-degraded structure.
func processBatch(ctx context.Context, paths []string, outDir string) int {
	workers := runtime.GOMAXPROCS(0)
	if workers > len(paths) {
		workers = len(paths)
	}

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	var succeeded atomic.Int64

	for _, path := range paths {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(path string) {
			defer wg.Done()
			defer func() { <-sem }()
			if processOne(path, outDir) {
				succeeded.Add(1)
			}
		}(path)
	}
	wg.Wait()
	return int(succeeded.Load())
}

// processOne analyzes a single document and writes its JSON. Failures are
// logged and degrade to an empty structure; the output file is always
// written when the filesystem allows it.
func processOne(path, outDir string) bool {
	log := slog.With("pdf", filepath.Base(path))
	start := time.Now()

	if count, err := extract.PageCount(path); err != nil {
		log.Warn("pre-flight page count failed", "err", err)
	} else {
		log.Debug("processing", "pages", count)
	}

	res := analyzerFor(path).Result()

	data, err := format.Marshal(res.Structure)
	if err != nil {
		log.Error("serialize failed", "err", err)
		return false
	}
	if schemaCheck {
		if err := format.ValidateJSON(data); err != nil {
			log.Error("schema validation failed", "err", err)
			return false
		}
	}

	outPath := filepath.Join(outDir, stem(path)+".json")
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		log.Error("write failed", "out", outPath, "err", err)
		return false
	}

	log.Info("processed",
		"title", res.Structure.Title,
		"headings", len(res.Structure.Outline),
		"degraded", res.Degraded,
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	return !res.Degraded
}

// stem returns the filename without directory or extension
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
