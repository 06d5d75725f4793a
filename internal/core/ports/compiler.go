package ports

import (
	"context"

	"go.trai.ch/precomp/internal/core/domain"
)

// CompileRequest describes one invocation of an external compiler.
type CompileRequest struct {
	// Command is the argv template with {source} and {output} placeholders.
	Command    []string
	Dialect    domain.Dialect
	Source     domain.SourcePath
	SourceFile string
	OutputFile string
}

// Compiler converts a source file into its compiled output.
//
//go:generate mockgen -source=compiler.go -destination=mocks/mock_compiler.go -package=mocks
type Compiler interface {
	Compile(ctx context.Context, req CompileRequest) error
}
