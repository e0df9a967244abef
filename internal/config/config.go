// Package config provides centralized configuration for both tools.
// It loads settings from environment variables with sensible defaults and
// validates everything on startup to fail fast on misconfiguration.
//
// Nothing here is global: Load returns a value that the CLI layer hands
// to the pipelines explicitly. The only process-wide effect of
// configuration is the logging sink, which main initializes once before
// invoking any pipeline.
package config

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Logging LoggingConfig
	Input   InputConfig
	Convert ConvertConfig
	Compare CompareConfig
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info).
	// The --verbose flag lowers this to debug for one invocation.
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// InputConfig holds settings applied to every input file.
type InputConfig struct {
	// MaxFileSize is the maximum allowed export file size in bytes
	// (default: 100MB). Both tools load whole files into memory, so
	// this bounds the memory of a run.
	MaxFileSize int64 `env:"INPUT_MAX_FILE_SIZE" default:"104857600"`
}

// ConvertConfig holds settings for the convert tool.
type ConvertConfig struct {
	// OutputSuffix is inserted before the extension of the derived
	// output path (default: -utf8, producing "<stem>-utf8.txt")
	OutputSuffix string `env:"CONVERT_OUTPUT_SUFFIX" default:"-utf8"`

	// Delimiter is the field delimiter rule: "tab-or-spaces" or "tab"
	// (default: tab-or-spaces). Convert inputs are often hand-aligned
	// with spaces, so runs of spaces count as a delimiter here.
	Delimiter string `env:"CONVERT_DELIMITER" default:"tab-or-spaces"`
}

// CompareConfig holds settings for the compare tool.
type CompareConfig struct {
	// Delimiter is the field delimiter rule for both compared files
	// (default: tab). Kept separate from CONVERT_DELIMITER; the two
	// tools historically split differently.
	Delimiter string `env:"COMPARE_DELIMITER" default:"tab"`
}
