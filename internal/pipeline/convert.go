// Package pipeline wires the two export pipelines end to end.
//
// Each pipeline is a single synchronous pass: validate the input file(s),
// decode, parse line by line, then either write the cleaned UTF-8 output
// (convert) or compute and report the keyed diff (compare). File-level
// errors abort the whole run — a partially written output is never
// trustworthy. Row-level errors are accumulated and reported, never fatal.
//
// Pipelines take their configuration and logger as explicit parameters;
// they never touch process-wide state, so runs are independent and
// idempotent given identical input bytes.
package pipeline

import (
	"io"
	"log/slog"
	"strings"

	"github.com/enova-tools/hrexport/internal/config"
	"github.com/enova-tools/hrexport/internal/report"
	"github.com/enova-tools/hrexport/internal/row"
	"github.com/enova-tools/hrexport/internal/schema"
	"github.com/enova-tools/hrexport/internal/textfile"
)

// ConvertOptions are the per-invocation inputs of the convert pipeline.
type ConvertOptions struct {
	// Path is the UTF-16 input file.
	Path string

	// ShowTable echoes accepted rows as a console table.
	ShowTable bool
}

// ConvertResult summarizes a completed conversion.
type ConvertResult struct {
	OutputPath string
	LinesRead  int
	Rows       []row.Row
	Skipped    []string
}

// Convert re-encodes a UTF-16 export as UTF-8, keeping only well-formed
// five-field rows. The output lands next to the input with the configured
// suffix inserted before the extension.
func Convert(cfg *config.Config, logger *slog.Logger, out io.Writer, opts ConvertOptions) (*ConvertResult, error) {
	if err := textfile.Validate(opts.Path, cfg.Input.MaxFileSize); err != nil {
		return nil, err
	}

	lines, err := textfile.ReadUTF16Lines(opts.Path)
	if err != nil {
		return nil, err
	}
	logger.Info("input file opened", "path", opts.Path)
	logger.Debug("lines read", "count", len(lines))

	res := row.ParseLines(lines, schema.ExpectedHeader, cfg.ConvertDelimiter())

	outputPath := textfile.OutputPath(opts.Path, cfg.Convert.OutputSuffix)
	joined := make([]string, len(res.Rows))
	for i, r := range res.Rows {
		joined[i] = strings.Join(r.Fields(), "\t")
	}
	if err := textfile.WriteLines(outputPath, joined); err != nil {
		return nil, err
	}
	logger.Info("output file written", "path", outputPath, "rows", len(res.Rows))

	// The header and every malformed line are dropped on the way
	// through, so a count mismatch is worth flagging even though it is
	// usually just the header.
	if len(res.Rows) != len(lines) || len(res.Rows) == 0 {
		logger.Warn("read and written line counts differ",
			"read", len(lines),
			"written", len(res.Rows),
			"excluded_headers", res.Excluded,
			"malformed", len(res.Skipped),
		)
		for i, skipped := range res.Skipped {
			logger.Debug("skipped line", "index", i+1, "line", skipped)
		}
	}

	if opts.ShowTable {
		report.Rows(out, res.Rows)
	}

	return &ConvertResult{
		OutputPath: outputPath,
		LinesRead:  len(lines),
		Rows:       res.Rows,
		Skipped:    res.Skipped,
	}, nil
}
