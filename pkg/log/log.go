package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
)

const (
	TextFormat   = "text"
	LogfmtFormat = "logfmt"
	JSONFormat   = "json"
)

var (
	ErrInvalidLogLevel  = errors.New("invalid log level")
	ErrInvalidLogFormat = errors.New("invalid log format")
)

// NewWithEnvConfig creates a [slog.Logger] configured by the
// PATHKIT_LOG_LEVEL and PATHKIT_LOG_FORMAT environment variables.
func NewWithEnvConfig() (*slog.Logger, error) {
	h, err := CreateHandlerWithStrings(
		os.Stderr,
		os.Getenv("PATHKIT_LOG_LEVEL"),
		os.Getenv("PATHKIT_LOG_FORMAT"),
	)
	if err != nil {
		return nil, err
	}

	return slog.New(h), nil
}

// CreateHandlerWithStrings creates a [slog.Handler] writing to w, with level
// and format given as strings. An empty format selects text output when w is
// a terminal and logfmt otherwise.
func CreateHandlerWithStrings(w io.Writer, logLevel, logFormat string) (slog.Handler, error) {
	level, err := GetLevel(logLevel)
	if err != nil {
		return nil, err
	}

	formatter, err := getFormatter(w, logFormat)
	if err != nil {
		return nil, err
	}

	return charmlog.NewWithOptions(w, charmlog.Options{
		Level:           charmlog.Level(level),
		Formatter:       formatter,
		ReportTimestamp: true,
	}), nil
}

// GetLevel parses a level string into a [slog.Level]. An empty string maps to
// [slog.LevelInfo].
func GetLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "panic", "fatal", "error":
		return slog.LevelError, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "debug", "trace":
		return slog.LevelDebug, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, level)
	}
}

func getFormatter(w io.Writer, format string) (charmlog.Formatter, error) {
	switch strings.ToLower(format) {
	case TextFormat:
		return charmlog.TextFormatter, nil
	case LogfmtFormat:
		return charmlog.LogfmtFormatter, nil
	case JSONFormat:
		return charmlog.JSONFormatter, nil
	case "":
		if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			return charmlog.TextFormatter, nil
		}

		return charmlog.LogfmtFormatter, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogFormat, format)
	}
}
