package logger_test

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/precomp/internal/adapters/logger"
	"go.trai.ch/precomp/internal/core/domain"
	"go.trai.ch/zerr"
)

// newTestLogger returns a logger writing uncolored output into a buffer.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name       string
		log        func(*logger.Logger)
		goldenName string
	}{
		{
			name:       "info",
			log:        func(l *logger.Logger) { l.Info("Compiled 'styles/app.scss' to 'COMPILED/styles/app.css'") },
			goldenName: "info_basic",
		},
		{
			name:       "empty info",
			log:        func(l *logger.Logger) { l.Info("") },
			goldenName: "info_empty",
		},
		{
			name:       "warn",
			log:        func(l *logger.Logger) { l.Warn("deprecated mixin") },
			goldenName: "warn_basic",
		},
		{
			name:       "error",
			log:        func(l *logger.Logger) { l.Error(os.ErrPermission) },
			goldenName: "error_simple",
		},
		{
			name: "multiline error",
			log: func(l *logger.Logger) {
				l.Error(errors.New("yaml: unmarshal errors:\n  line 3: cannot unmarshal"))
			},
			goldenName: "error_multiline",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			tt.log(lg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_ErrorNil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestFormatError_ZerrChain(t *testing.T) {
	err := zerr.Wrap(
		zerr.Wrap(errors.New("no such file"), "failed to read source"),
		"failed to compile",
	)

	got := logger.FormatError(err)

	assert.Contains(t, got, "Error: failed to compile")
	assert.Contains(t, got, "  Caused by:")
	assert.Contains(t, got, "    → failed to read source")
	assert.Contains(t, got, "    → no such file")
}

func TestFormatError_StdlibChainIsFlat(t *testing.T) {
	got := logger.FormatError(errors.Join(errors.New("a"), errors.New("b")))
	assert.Equal(t, "Error: a\n       b", got)
}

func TestLogger_JSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Info("scan finished")
	lg.Error(errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, `"level":"INFO"`)
	assert.Contains(t, out, `"msg":"scan finished"`)
	assert.Contains(t, out, `"error":"boom"`)
}

func TestLogger_SetJSONKeepsOutput(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)
	lg.SetJSON(false)

	lg.Warn("still here")
	assert.Equal(t, "! still here\n", buf.String())
}

func TestLogger_ConfigureFileSink(t *testing.T) {
	lg, buf := newTestLogger(t)
	path := filepath.Join(t.TempDir(), "logs", "precomp.log")

	closer := lg.Configure(domain.LogConfig{File: path, MaxSizeMB: 1})
	lg.Info("compiled a.scss")
	require.NoError(t, closer.Close())

	assert.Equal(t, "compiled a.scss\n", buf.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"compiled a.scss"`)
}

func TestLogger_ConfigureWithoutFile(t *testing.T) {
	lg, buf := newTestLogger(t)

	closer := lg.Configure(domain.LogConfig{JSON: true})
	require.NoError(t, closer.Close())

	lg.Info("hello")
	assert.Contains(t, buf.String(), `"msg":"hello"`)
}

func TestPrettyHandler(t *testing.T) {
	tests := []struct {
		name       string
		build      func(slog.Handler) *slog.Logger
		level      slog.Level
		goldenName string
	}{
		{
			name: "attribute",
			build: func(h slog.Handler) *slog.Logger {
				return slog.New(h).With("source", "a.scss")
			},
			level:      slog.LevelInfo,
			goldenName: "handler_attrs_single",
		},
		{
			name: "group",
			build: func(h slog.Handler) *slog.Logger {
				return slog.New(h.WithGroup("build")).With("source", "a.scss", "workers", 4)
			},
			level:      slog.LevelInfo,
			goldenName: "handler_attrs_group",
		},
		{
			name: "debug filtered",
			build: func(h slog.Handler) *slog.Logger {
				return slog.New(h)
			},
			level:      slog.LevelDebug,
			goldenName: "handler_debug_filtered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			lg := tt.build(logger.NewPrettyHandler(buf, nil))
			lg.Log(t.Context(), tt.level, "compiled")

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}
