// Package shell invokes external stylesheet compilers.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/precomp/internal/core/domain"
	"go.trai.ch/precomp/internal/core/ports"
	"go.trai.ch/zerr"
)

// Placeholders substituted in command templates.
const (
	SourcePlaceholder = "{source}"
	OutputPlaceholder = "{output}"
)

var _ ports.Compiler = (*Compiler)(nil)

// Compiler implements ports.Compiler using os/exec. When the command
// template has no {output} placeholder, stdout becomes the output file.
type Compiler struct {
	logger ports.Logger
}

// NewCompiler creates a new Compiler.
func NewCompiler(logger ports.Logger) *Compiler {
	return &Compiler{logger: logger}
}

// Compile runs the command of req. The command runs in the directory of the
// source file. A failed run leaves no output file behind.
func (c *Compiler) Compile(ctx context.Context, req ports.CompileRequest) error {
	if len(req.Command) == 0 {
		return nil
	}

	// The command runs in the source directory, so both paths must be absolute.
	var err error
	if req.SourceFile, err = filepath.Abs(req.SourceFile); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to resolve source path"), "path", req.SourceFile)
	}
	if req.OutputFile, err = filepath.Abs(req.OutputFile); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to resolve output path"), "path", req.OutputFile)
	}

	if err := os.MkdirAll(filepath.Dir(req.OutputFile), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create output directory"), "path", req.OutputFile)
	}

	args, toStdout := expand(req.Command, req.SourceFile, req.OutputFile)

	cmd := exec.CommandContext(ctx, args[0], args[1:]...) //nolint:gosec // user configured command
	cmd.Dir = filepath.Dir(req.SourceFile)

	var stdout, stderr bytes.Buffer
	stdoutLog := &logWriter{logger: c.logger, level: "info"}
	stderrLog := &logWriter{logger: c.logger, level: "warn"}
	if toStdout {
		cmd.Stdout = &stdout
	} else {
		cmd.Stdout = stdoutLog
	}
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		_ = os.Remove(req.OutputFile)

		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		wrapped := zerr.Wrap(err, domain.ErrCompileFailed.Error())
		wrapped = zerr.With(wrapped, "source", req.Source.String())
		wrapped = zerr.With(wrapped, "exit_code", exitCode)
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			wrapped = zerr.With(wrapped, "stderr", msg)
		}
		return wrapped
	}
	_ = stdoutLog.Close()

	_, _ = stderrLog.Write(stderr.Bytes())
	_ = stderrLog.Close()

	if toStdout {
		if err := os.WriteFile(req.OutputFile, stdout.Bytes(), domain.FilePerm); err != nil { //nolint:gosec // output path derived from config
			return zerr.With(zerr.Wrap(err, "failed to write output"), "path", req.OutputFile)
		}
	}
	return nil
}

// expand substitutes placeholders and reports whether stdout carries the output.
func expand(template []string, source, output string) ([]string, bool) {
	args := make([]string, len(template))
	toStdout := true
	for i, arg := range template {
		if strings.Contains(arg, OutputPlaceholder) {
			toStdout = false
		}
		arg = strings.ReplaceAll(arg, SourcePlaceholder, source)
		args[i] = strings.ReplaceAll(arg, OutputPlaceholder, output)
	}
	return args, toStdout
}

type logWriter struct {
	logger ports.Logger
	level  string
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	msg := strings.TrimSuffix(string(line), "\r")

	if w.level == "info" {
		w.logger.Info(msg)
	} else {
		w.logger.Warn(msg)
	}
}
