package domain

import (
	"path"
	"slices"
	"strings"
)

// PartialPrefix marks a stylesheet that is meant only for inclusion.
const PartialPrefix = "_"

// SourcePath is a slash-separated, case-sensitive identifier for an asset,
// relative to the configured roots.
type SourcePath string

// NewSourcePath normalizes p into a SourcePath. Backslashes are converted,
// "." and ".." segments are resolved and a leading "./" is dropped.
func NewSourcePath(p string) SourcePath {
	p = strings.ReplaceAll(p, "\\", "/")
	if p == "" {
		return ""
	}
	p = path.Clean(p)
	if p == "." {
		return ""
	}
	return SourcePath(strings.TrimPrefix(p, "./"))
}

// JoinSourcePath joins elements and normalizes the result.
func JoinSourcePath(elem ...string) SourcePath {
	return NewSourcePath(path.Join(elem...))
}

// String returns the path as a string.
func (p SourcePath) String() string {
	return string(p)
}

// Dir returns the directory part, or "" for a top-level path.
func (p SourcePath) Dir() string {
	d := path.Dir(string(p))
	if d == "." {
		return ""
	}
	return d
}

// Base returns the last element.
func (p SourcePath) Base() string {
	return path.Base(string(p))
}

// Ext returns the extension including the dot.
func (p SourcePath) Ext() string {
	return path.Ext(string(p))
}

// IsPartial reports whether the file name carries the partial marker.
func (p SourcePath) IsPartial() bool {
	return strings.HasPrefix(p.Base(), PartialPrefix)
}

// WithExt returns the path with its extension replaced by ext.
func (p SourcePath) WithExt(ext string) SourcePath {
	return SourcePath(strings.TrimSuffix(string(p), p.Ext()) + ext)
}

// SortSourcePaths returns the sorted, deduplicated contents of set.
func SortSourcePaths(set map[SourcePath]struct{}) []SourcePath {
	out := make([]SourcePath, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}
