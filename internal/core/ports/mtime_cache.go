package ports

import "time"

// MtimeCache returns modification times, bounded by a TTL.
//
//go:generate mockgen -source=mtime_cache.go -destination=mocks/mock_mtime_cache.go -package=mocks
type MtimeCache interface {
	// Mtime returns the modification time of fullPath.
	Mtime(fullPath string) (time.Time, error)
	// Invalidate drops any cached value for fullPath.
	Invalidate(fullPath string)
}
