// Package log builds [slog.Handler]s backed by charmbracelet/log.
package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/log"
)

var (
	ErrInvalidLevel  = errors.New("invalid log level")
	ErrInvalidFormat = errors.New("invalid log format")
)

// Format names a log output format.
type Format string

const (
	FormatText   Format = "text"
	FormatLogfmt Format = "logfmt"
	FormatJSON   Format = "json"
)

// GetLevel parses a level name. "warning" is accepted as an alias of "warn".
func GetLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, level)
}

// GetFormat parses a format name.
func GetFormat(format string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(format))); f {
	case FormatText, FormatLogfmt, FormatJSON:
		return f, nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidFormat, format)
}

// CreateHandler creates a [slog.Handler] writing to w.
func CreateHandler(w io.Writer, level slog.Level, format Format) slog.Handler {
	var formatter log.Formatter

	switch format {
	case FormatJSON:
		formatter = log.JSONFormatter
	case FormatLogfmt:
		formatter = log.LogfmtFormatter
	default:
		formatter = log.TextFormatter
	}

	return log.NewWithOptions(w, log.Options{
		Level:           log.Level(level),
		Formatter:       formatter,
		ReportTimestamp: format != FormatText,
	})
}

// CreateHandlerWithStrings parses level and format, then calls
// [CreateHandler].
func CreateHandlerWithStrings(w io.Writer, level, format string) (slog.Handler, error) {
	l, err := GetLevel(level)
	if err != nil {
		return nil, err
	}

	f, err := GetFormat(format)
	if err != nil {
		return nil, err
	}

	return CreateHandler(w, l, f), nil
}
