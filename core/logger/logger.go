package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

type options struct {
	writer  io.Writer
	level   slog.Level
	format  string // "json" or "text"
	appName string
	attrs   []slog.Attr
}

// Option configures the logger constructor.
type Option func(*options)

// WithWriter sets the output destination (default: os.Stdout).
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.writer = w
		}
	}
}

// WithLevel sets the minimum log level.
func WithLevel(level slog.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithJSON switches the handler to JSON output.
func WithJSON() Option {
	return func(o *options) {
		o.format = "json"
	}
}

// WithDevelopment configures human-readable text output at debug level,
// tagged with the application name. Intended for local development.
func WithDevelopment(appName string) Option {
	return func(o *options) {
		o.format = "text"
		o.level = slog.LevelDebug
		o.appName = appName
	}
}

// WithProduction configures JSON output at info level, tagged with the
// application name.
func WithProduction(appName string) Option {
	return func(o *options) {
		o.format = "json"
		o.level = slog.LevelInfo
		o.appName = appName
	}
}

// WithAttrs adds attributes attached to every log record.
func WithAttrs(attrs ...slog.Attr) Option {
	return func(o *options) {
		o.attrs = append(o.attrs, attrs...)
	}
}

// New creates a slog.Logger with the given options.
// Defaults to JSON output at info level on stdout.
func New(opts ...Option) *slog.Logger {
	o := &options{
		writer: os.Stdout,
		level:  slog.LevelInfo,
		format: "json",
	}

	for _, opt := range opts {
		opt(o)
	}

	handlerOpts := &slog.HandlerOptions{Level: o.level}

	var h slog.Handler
	if strings.EqualFold(o.format, "text") {
		h = slog.NewTextHandler(o.writer, handlerOpts)
	} else {
		h = slog.NewJSONHandler(o.writer, handlerOpts)
	}

	attrs := o.attrs
	if o.appName != "" {
		attrs = append([]slog.Attr{slog.String("app", o.appName)}, attrs...)
	}
	if len(attrs) > 0 {
		h = h.WithAttrs(attrs)
	}

	return slog.New(h)
}

// Config provides environment-based logger configuration.
type Config struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// NewFromConfig creates a logger from environment configuration.
func NewFromConfig(cfg Config, opts ...Option) *slog.Logger {
	base := []Option{WithLevel(parseLevel(cfg.Level))}
	if strings.EqualFold(cfg.Format, "text") {
		base = append(base, func(o *options) { o.format = "text" })
	}
	return New(append(base, opts...)...)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
