package ports

// Hasher computes content hashes.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ComputeFileHash returns the hash of the file content at fullPath.
	ComputeFileHash(fullPath string) (uint64, error)
	// ComputeInputHash returns one hex digest over the paths and contents of
	// fullPaths, in the given order.
	ComputeInputHash(fullPaths []string) (string, error)
}
