package ports

import (
	"context"
	"iter"
)

// WatchOp represents the type of file system operation.
type WatchOp uint8

const (
	// OpCreate indicates a file or directory was created.
	OpCreate WatchOp = iota
	// OpWrite indicates a file was modified.
	OpWrite
	// OpRemove indicates a file or directory was removed.
	OpRemove
	// OpRename indicates a file or directory was renamed.
	OpRename
)

// WatchEvent is a single change notification.
type WatchEvent struct {
	// Path is the absolute path that changed.
	Path string
	// Operation is the type of change.
	Operation WatchOp
}

// TriggersCompile reports whether the event can make a source stale.
// Removals and renames are ignored.
func (e WatchEvent) TriggersCompile() bool {
	return e.Operation == OpCreate || e.Operation == OpWrite
}

// Watcher delivers file system change notifications.
//
//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start begins watching root recursively, leaving out the directories
	// in ignores.
	Start(ctx context.Context, root string, ignores []string) error
	// Stop releases all resources.
	Stop() error
	// Events returns an iterator of change notifications.
	Events() iter.Seq[WatchEvent]
}
