package domain

import "slices"

// MaxStoredPathLength bounds both sides of a persisted dependency edge.
const MaxStoredPathLength = 500

// DependencyEdge records that Source depends on DependsOn, directly or
// through other imports.
type DependencyEdge struct {
	Source    SourcePath `db:"source"     json:"source"`
	DependsOn SourcePath `db:"depends_on" json:"depends_on"`
}

// UniqueSorted returns paths sorted with duplicates removed.
func UniqueSorted(paths []SourcePath) []SourcePath {
	out := slices.Clone(paths)
	slices.Sort(out)
	return slices.Compact(out)
}
