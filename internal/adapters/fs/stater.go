package fs

import (
	"os"
	"time"

	"go.trai.ch/precomp/internal/core/ports"
)

var _ ports.Stater = (*Stater)(nil)

// Stater reads modification times with os.Stat.
type Stater struct{}

// ModTime returns the modification time of path.
func (Stater) ModTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}
