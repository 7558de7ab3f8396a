package app

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/genealogy-backend/internal/config"
	"github.com/heartmarshall/genealogy-backend/pkg/ctxutil"
)

// NewLogger creates a *slog.Logger writing to os.Stderr and sets it as the
// default logger via slog.SetDefault.
//
// Format "json" produces structured JSON output; anything else produces
// text with source info. Level is one of debug, info, warn, error
// (case-insensitive) and defaults to info. Records logged with a context
// carrying an import id get an "import_id" attribute.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: !strings.EqualFold(cfg.Format, "json"),
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(importHandler{Handler: handler})
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// importHandler adds the import id found in the record's context.
type importHandler struct {
	slog.Handler
}

func (h importHandler) Handle(ctx context.Context, r slog.Record) error {
	if id, ok := ctxutil.ImportIDFromCtx(ctx); ok {
		r.AddAttrs(slog.String("import_id", id.String()))
	}
	return h.Handler.Handle(ctx, r)
}

func (h importHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return importHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h importHandler) WithGroup(name string) slog.Handler {
	return importHandler{Handler: h.Handler.WithGroup(name)}
}
