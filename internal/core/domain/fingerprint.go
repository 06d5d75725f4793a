package domain

import "time"

// Fingerprint records the content hash of a source and its stored
// dependencies at the time its output was produced.
type Fingerprint struct {
	Source    SourcePath `json:"source"`
	Output    string     `json:"output,omitempty"`
	InputHash string     `json:"input_hash"`
	Timestamp time.Time  `json:"timestamp"`
}
