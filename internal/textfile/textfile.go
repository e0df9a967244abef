// Package textfile is the file-ingestion boundary for both tools.
//
// It owns everything physical about an export file: existence and size
// checks, byte reading, text-encoding decode (fixed UTF-16 for the
// convert tool, auto-detected for the compare tool), line splitting, and
// the UTF-8 write-out with its derived output path. The parsing core in
// internal/row only ever sees already-decoded lines.
package textfile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// File-level error taxonomy. All of these abort a run; no partial output
// is written once any of them occurs.
var (
	ErrMissing  = errors.New("file does not exist")
	ErrEmpty    = errors.New("file is empty")
	ErrTooLarge = errors.New("file exceeds size limit")
	ErrDecode   = errors.New("text decode failed")
)

// Validate checks that path points to an existing, non-empty file no
// larger than maxSize bytes. A maxSize of 0 disables the size check.
func Validate(path string, maxSize int64) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s: %w", path, ErrMissing)
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Size() == 0 {
		return fmt.Errorf("%s: %w", path, ErrEmpty)
	}
	if maxSize > 0 && info.Size() > maxSize {
		return fmt.Errorf("%s: %d bytes over limit %d: %w", path, info.Size(), maxSize, ErrTooLarge)
	}
	return nil
}

// ReadUTF16Lines reads a file that must be UTF-16 encoded and returns its
// decoded lines.
//
// A BOM selects the byte order when present; without one the file is
// assumed little-endian, which matches what enova365 writes on Windows.
// Bytes that do not form valid UTF-16 fail the whole read with ErrDecode.
func ReadUTF16Lines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if len(data)%2 != 0 {
		return nil, fmt.Errorf("%s: odd byte count: %w", path, ErrDecode)
	}

	dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	decoded, err := dec.Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", path, ErrDecode, err)
	}

	// The decoder substitutes U+FFFD for unpaired surrogates instead of
	// erroring; treat any substitution as a decode failure.
	if bytes.ContainsRune(decoded, utf8.RuneError) {
		return nil, fmt.Errorf("%s: invalid UTF-16 sequence: %w", path, ErrDecode)
	}

	return SplitLines(string(decoded)), nil
}

// ReadDetectedLines reads a file whose encoding is unknown, auto-detecting
// the charset from the raw bytes. It returns the decoded lines and the
// IANA name of the detected charset.
func ReadDetectedLines(path string) ([]string, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", path, err)
	}

	name, enc, err := detectEncoding(data)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}

	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %s: %w: %v", path, name, ErrDecode, err)
	}

	return SplitLines(string(decoded)), name, nil
}

// detectEncoding picks the most likely charset for data and resolves it to
// a decoder through the IANA registry.
func detectEncoding(data []byte) (string, encoding.Encoding, error) {
	best, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil {
		return "", nil, fmt.Errorf("charset detection: %w: %v", ErrDecode, err)
	}

	enc, err := ianaindex.IANA.Encoding(best.Charset)
	if err != nil || enc == nil {
		// The IANA index maps a few names (US-ASCII among them) to a
		// nil encoding. ASCII is a UTF-8 subset, so decode it as such.
		if strings.EqualFold(best.Charset, "US-ASCII") {
			return best.Charset, unicode.UTF8, nil
		}
		return "", nil, fmt.Errorf("unsupported charset %q: %w", best.Charset, ErrDecode)
	}

	return best.Charset, enc, nil
}

// SplitLines splits decoded text into lines, tolerating LF and CRLF
// endings and a leading BOM character. A trailing newline does not
// produce a final empty line.
func SplitLines(text string) []string {
	text = strings.TrimPrefix(text, "\uFEFF")
	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

// OutputPath derives the convert tool's output path by inserting suffix
// before the extension: "export.txt" with suffix "-utf8" becomes
// "export-utf8.txt". The output always gets a .txt extension regardless
// of the input's.
func OutputPath(input, suffix string) string {
	stem := strings.TrimSuffix(input, filepath.Ext(input))
	return stem + suffix + ".txt"
}

// WriteLines writes lines to path as UTF-8, one per line with LF endings.
func WriteLines(path string, lines []string) error {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
