package pipeline

import (
	"io"
	"log/slog"

	"github.com/enova-tools/hrexport/internal/config"
	"github.com/enova-tools/hrexport/internal/diff"
	"github.com/enova-tools/hrexport/internal/report"
	"github.com/enova-tools/hrexport/internal/row"
	"github.com/enova-tools/hrexport/internal/schema"
	"github.com/enova-tools/hrexport/internal/textfile"
)

// CompareOptions are the per-invocation inputs of the compare pipeline.
type CompareOptions struct {
	First  string
	Second string

	// ShowTables prints a table per non-empty diff collection.
	ShowTables bool
}

// CompareResult summarizes a completed comparison.
type CompareResult struct {
	FirstSkipped  []string
	SecondSkipped []string
	Diff          diff.Result
}

// Compare reads two exports, builds a RecordSet keyed by Kod for each, and
// reports rows unique to either file plus rows present in both with
// differing values. The comparison is read-only; no file is written.
func Compare(cfg *config.Config, logger *slog.Logger, out io.Writer, opts CompareOptions) (*CompareResult, error) {
	if err := textfile.Validate(opts.First, cfg.Input.MaxFileSize); err != nil {
		return nil, err
	}
	if err := textfile.Validate(opts.Second, cfg.Input.MaxFileSize); err != nil {
		return nil, err
	}

	first, firstSkipped, err := readRecordSet(cfg, logger, opts.First)
	if err != nil {
		return nil, err
	}
	second, secondSkipped, err := readRecordSet(cfg, logger, opts.Second)
	if err != nil {
		return nil, err
	}

	result := diff.Compare(first, second)

	if opts.ShowTables {
		if len(result.UniqueToFirst) > 0 {
			report.DiffEntries(out, "Rows unique to file 1", result.UniqueToFirst)
		}
		if len(result.UniqueToSecond) > 0 {
			report.DiffEntries(out, "Rows unique to file 2", result.UniqueToSecond)
		}
		if len(result.Modified) > 0 {
			report.DiffEntries(out, "Modified rows", result.Modified)
		}
	}

	logger.Info("comparison finished",
		"unique_to_file1", len(result.UniqueToFirst),
		"unique_to_file2", len(result.UniqueToSecond),
		"modified", len(result.Modified),
	)

	return &CompareResult{
		FirstSkipped:  firstSkipped,
		SecondSkipped: secondSkipped,
		Diff:          result,
	}, nil
}

// readRecordSet decodes one file with charset auto-detection and folds its
// lines into a RecordSet. Duplicate codes take the later line.
func readRecordSet(cfg *config.Config, logger *slog.Logger, path string) (row.RecordSet, []string, error) {
	lines, encName, err := textfile.ReadDetectedLines(path)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("encoding detected", "path", path, "encoding", encName)

	set, skipped := row.BuildRecordSet(lines, schema.ExpectedHeader, cfg.CompareDelimiter())

	logger.Info("file read", "path", path, "records", len(set))
	logger.Debug("lines skipped", "path", path, "count", len(skipped))

	return set, skipped, nil
}
