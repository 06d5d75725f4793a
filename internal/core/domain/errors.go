package domain

import "go.trai.ch/zerr"

var (
	// ErrImportNotFound is returned when an import target cannot be located under any search strategy.
	ErrImportNotFound = zerr.New("can't locate the imported file")

	// ErrImportDirNotFound is returned when a directory glob import names a directory that does not exist.
	ErrImportDirNotFound = zerr.New("can't locate the imported directory")

	// ErrNotADirectory is returned when a directory glob import names a regular file.
	ErrNotADirectory = zerr.New("imported path is not a directory")

	// ErrSourceNotFound is returned when a source path does not exist under any root.
	ErrSourceNotFound = zerr.New("source file not found")

	// ErrUnsupportedSource is returned when no enabled dialect handles a source path.
	ErrUnsupportedSource = zerr.New("unsupported source file")

	// ErrUnknownDialect is returned when the configuration names a dialect that does not exist.
	ErrUnknownDialect = zerr.New("unknown dialect")

	// ErrUnknownStoreDriver is returned when the configuration names an unknown dependency store driver.
	ErrUnknownStoreDriver = zerr.New("unknown dependency store driver")

	// ErrInvalidConfig is returned when a configuration value is malformed.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file is not valid YAML.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrCompileFailed is returned when the external compiler fails for a source file.
	ErrCompileFailed = zerr.New("compilation failed")

	// ErrScanFailed is returned when one or more files failed during a bulk scan.
	ErrScanFailed = zerr.New("scan finished with errors")

	// ErrPathTooLong is returned when a path exceeds the storable length of a dependency edge.
	ErrPathTooLong = zerr.New("path exceeds maximum stored length")

	// ErrStoreReadFailed is returned when dependency edges cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read dependency store")

	// ErrStoreWriteFailed is returned when dependency edges cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write dependency store")
)
