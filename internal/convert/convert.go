// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert re-encodes text files from one code page to another by
// way of UTF-16, either as a stream or as a batch of files written to an
// output directory.
package convert

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/u8text/pkg/strcvt"
	"github.com/pdiddy/u8text/pkg/types"
)

// ErrNoOutput is returned when non-empty input converts to nothing, which
// is how strcvt reports an unusable code page.
var ErrNoOutput = errors.New("conversion produced no output")

// Options selects the code pages and destination for a conversion run.
// From and To must already be resolved; ACP is not accepted.
type Options struct {
	From      strcvt.CodePage
	To        strcvt.CodePage
	OutDir    string
	Overwrite bool
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Skipped   int
	Failed    int
}

// Total returns the total number of files processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any file failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Transcode converts data from one code page to another. Empty input
// yields empty output.
func Transcode(data []byte, from, to strcvt.CodePage) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	out := strcvt.WideToNarrow(strcvt.NarrowToWide(data, len(data), from), to)
	if len(out) == 0 {
		return nil, fmt.Errorf("%s to %s: %w", strcvt.Name(from), strcvt.Name(to), ErrNoOutput)
	}
	return out, nil
}

// Stream reads all of r, converts it, and writes the result to w.
func Stream(r io.Reader, w io.Writer, from, to strcvt.CodePage) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	out, err := Transcode(data, from, to)
	if err != nil {
		return err
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// ConvertFile converts the file at path into opts.OutDir under the same
// base name, printing one status line to w. An existing output file is
// skipped unless opts.Overwrite is set.
func ConvertFile(path string, opts Options, w io.Writer) types.ConversionStatus {
	base := filepath.Base(path)
	outPath := filepath.Join(opts.OutDir, base)

	if !opts.Overwrite {
		if _, err := os.Stat(outPath); err == nil {
			fmt.Fprintf(w, "skipped: %s (already exists)\n", base)
			return types.ConversionNone
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
		return types.ConversionFailed
	}

	out, err := Transcode(data, opts.From, opts.To)
	if err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
		return types.ConversionFailed
	}

	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
		return types.ConversionFailed
	}
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
		return types.ConversionFailed
	}

	fmt.Fprintf(w, "converted: %s (%s -> %s)\n", base, strcvt.Name(opts.From), strcvt.Name(opts.To))
	return types.ConversionDone
}

// ConvertBatch converts each path with ConvertFile, printing per-file
// status and a summary to w.
func ConvertBatch(paths []string, opts Options, w io.Writer) BatchResult {
	var result BatchResult
	for _, p := range paths {
		switch ConvertFile(p, opts, w) {
		case types.ConversionDone:
			result.Converted++
		case types.ConversionNone:
			result.Skipped++
		case types.ConversionFailed:
			result.Failed++
		}
	}
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d skipped, %d failed (total: %d)\n",
		result.Converted, result.Skipped, result.Failed, result.Total())
	return result
}
