package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	imd1 "github.com/alnah/go-imd1"
	"github.com/alnah/go-imd1/internal/fileutil"
	"github.com/alnah/go-imd1/internal/hints"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// metaExtension is the extension of metadata sidecar files.
const metaExtension = ".meta"

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	MetaPath   string // empty unless a sidecar was written
	Metadata   imd1.Metadata
	Skipped    bool // hidden document not written
	Err        error
	Duration   time.Duration
}

// convertBatch converts files concurrently, at most params.workers at a
// time. Results keep the order of files. Once ctx is done, files not yet
// started fail with the context error.
func convertBatch(ctx context.Context, conv fileConverter, files []FileToConvert, params *conversionParams) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	results := make([]ConversionResult, len(files))

	var g errgroup.Group
	g.SetLimit(max(params.workers, 1))

	for i, f := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = ConversionResult{InputPath: f.InputPath, Err: err}
				return nil
			}
			results[i] = convertFile(conv, f, params)
			return nil
		})
	}

	_ = g.Wait() // workers report through results
	return results
}

// convertFile processes a single file and returns the result.
func convertFile(conv fileConverter, f FileToConvert, params *conversionParams) ConversionResult {
	now := params.now
	if now == nil {
		now = time.Now
	}
	start := now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	finish := func(err error) ConversionResult {
		result.Err = err
		result.Duration = now().Sub(start)
		return result
	}

	res, err := conv.ConvertFileToString(f.InputPath, params.format)
	if err != nil {
		return finish(err)
	}
	result.Metadata = res.Metadata

	if params.skipHidden && res.Metadata.Hidden {
		result.Skipped = true
		return finish(nil)
	}

	if err := os.MkdirAll(filepath.Dir(f.OutputPath), dirPermissions); err != nil {
		return finish(fmt.Errorf("%w: creating output directory: %v", imd1.ErrWriteOutput, err))
	}

	if err := fileutil.WriteFileAtomic(f.OutputPath, []byte(res.Output), filePermissions); err != nil {
		return finish(fmt.Errorf("%w: %s: %v", imd1.ErrWriteOutput, f.OutputPath, err))
	}

	if params.sidecar {
		metaPath, err := fileutil.ReplaceExtension(f.OutputPath, metaExtension)
		if err != nil {
			return finish(fmt.Errorf("%w: %v", imd1.ErrWriteOutput, err))
		}
		if err := imd1.WriteMetadataFile(metaPath, res.Metadata, params.metaVersion); err != nil {
			return finish(err)
		}
		result.MetaPath = metaPath
	}

	return finish(nil)
}

// ResultSummary holds the count of succeeded, skipped and failed
// conversions.
type ResultSummary struct {
	Succeeded int
	Skipped   int
	Failed    int
}

// countResults tallies conversion outcomes. Skipped files count as
// succeeded too.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		switch {
		case r.Err != nil:
			summary.Failed++
		case r.Skipped:
			summary.Skipped++
			summary.Succeeded++
		default:
			summary.Succeeded++
		}
	}
	return summary
}

// printResults outputs conversion results and returns the failure count
// and the first failure.
func printResults(results []ConversionResult, flags *convertFlags, env *Environment) (int, error) {
	quiet, verbose := flags.common.quiet, flags.common.verbose
	summary := countResults(results)
	var firstErr error

	for _, r := range results {
		if r.Err != nil {
			if firstErr == nil {
				firstErr = r.Err
			}
			fmt.Fprintf(env.Stderr, "FAILED %s: %v%s\n", r.InputPath, r.Err, resultHint(r))
			continue
		}

		if !quiet {
			switch {
			case r.Skipped:
				fmt.Fprintf(env.Stdout, "Skipped %s (hidden)\n", r.InputPath)
			case verbose:
				fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
			default:
				fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
			}
			if r.MetaPath != "" {
				fmt.Fprintf(env.Stdout, "Created %s\n", r.MetaPath)
			}
		}

		if flags.meta.print {
			fmt.Fprintf(env.Stdout, "  %s\n", formatMetadata(r.Metadata))
		}
	}

	if !quiet && len(results) > 1 {
		if summary.Skipped > 0 {
			fmt.Fprintf(env.Stdout, "\n%d succeeded (%d skipped), %d failed\n", summary.Succeeded, summary.Skipped, summary.Failed)
		} else {
			fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
		}
	}

	return summary.Failed, firstErr
}

// resultHint returns a per-file hint for r.Err.
func resultHint(r ConversionResult) string {
	if errors.Is(r.Err, imd1.ErrInvalidUTF8) {
		return hints.ForInvalidUTF8(r.InputPath)
	}
	return ""
}

// formatMetadata renders m on one line. Absent fields print as "-".
func formatMetadata(m imd1.Metadata) string {
	return fmt.Sprintf("hidden=%t author=%s copyright=%s",
		m.Hidden, quoteOptional(m.Author), quoteOptional(m.Copyright))
}

func quoteOptional(s *string) string {
	if s == nil {
		return "-"
	}
	return strconv.Quote(*s)
}
