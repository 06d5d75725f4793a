package domain

// Strategy names the search rule that located a ResolvedFile.
type Strategy int

const (
	// StrategyPrimary means the import was found relative to the importing file.
	StrategyPrimary Strategy = iota
	// StrategyPartial means the import was found after prepending the partial marker.
	StrategyPartial
	// StrategyLoadPath means the import was found under an auxiliary search root.
	StrategyLoadPath
	// StrategyIndex means a directory import resolved to its index file.
	StrategyIndex
	// StrategyGlob means the file was produced by a directory glob import.
	StrategyGlob
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyPrimary:
		return "primary"
	case StrategyPartial:
		return "partial-prefix"
	case StrategyLoadPath:
		return "load-path"
	case StrategyIndex:
		return "index"
	case StrategyGlob:
		return "glob"
	default:
		return "unknown"
	}
}

// ResolvedFile is a located import target. It is recomputed on every lookup.
type ResolvedFile struct {
	Path     SourcePath
	FullPath string
	Strategy Strategy
}
