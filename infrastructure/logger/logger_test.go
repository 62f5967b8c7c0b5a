package logger_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Londondannyboy/thechief-quest/infrastructure/logger"
)

func TestFromContext_RoundTrip(t *testing.T) {
	t.Parallel()

	l := mustLogger(t)
	ctx := logger.WithContext(context.Background(), l)

	if got := logger.FromContext(ctx); got != l {
		t.Errorf("FromContext() got = %v, want the stored logger", got)
	}
}

func TestFromContext_FallbackIsUsable(t *testing.T) {
	t.Parallel()

	fallback := logger.FromContext(context.Background())
	if fallback == nil {
		t.Fatal("FromContext() on empty context returned nil")
	}
	fallback.Info("filtered at warn level")
	fallback.Warn("fallback works", logger.Slug("chief-of-staff-london"))
}

func TestNew_Formats(t *testing.T) {
	t.Parallel()

	for _, format := range []string{"", logger.FormatJSON, logger.FormatConsole} {
		l, err := logger.New(logger.Config{
			Level:       "debug",
			Format:      format,
			OutputPaths: []string{filepath.Join(t.TempDir(), "out.log")},
		})
		if err != nil {
			t.Fatalf("New(format=%q) error = %v", format, err)
		}
		l.With(logger.Path("/faq")).Debug("ok")
	}
}

func TestNewNop_With(t *testing.T) {
	t.Parallel()

	nop := logger.NewNop()
	child := nop.With(logger.String("k", "v"))
	child.Fatal("must not exit")
	if err := child.Sync(); err != nil {
		t.Errorf("Sync() error = %v", err)
	}
}

func mustLogger(t *testing.T) logger.Logger {
	t.Helper()
	l, err := logger.New(logger.Config{OutputPaths: []string{filepath.Join(t.TempDir(), "test.log")}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return l
}
