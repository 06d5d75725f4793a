package ports

import (
	"iter"
	"time"

	"go.trai.ch/precomp/internal/core/domain"
)

// SourceProvider answers existence and content questions about source paths.
// It may overlay a primary root with auxiliary roots; every component that
// needs to know whether a source path exists goes through it.
//
//go:generate mockgen -source=source_provider.go -destination=mocks/mock_source_provider.go -package=mocks
type SourceProvider interface {
	// Exists reports whether p exists under any root.
	Exists(p domain.SourcePath) bool
	// ExistsUnder reports whether p exists below one specific root.
	ExistsUnder(root string, p domain.SourcePath) bool
	// IsDir reports whether p exists and is a directory.
	IsDir(p domain.SourcePath) bool
	// Read returns the text of p.
	Read(p domain.SourcePath) (string, error)
	// List returns the names of the entries of directory p.
	List(p domain.SourcePath) ([]string, error)
	// FullPath returns the filesystem location of p.
	FullPath(p domain.SourcePath) (string, error)
	// Root returns the primary root.
	Root() string
}

// Stater reports modification times of filesystem locations.
type Stater interface {
	ModTime(fullPath string) (time.Time, error)
}

// SourceWalker enumerates regular files below a root.
type SourceWalker interface {
	// WalkFiles yields full paths of files below root. The directories in
	// ignores, given as paths, are not descended into.
	WalkFiles(root string, ignores []string) iter.Seq[string]
}
