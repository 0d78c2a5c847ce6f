package domain

import "path/filepath"

const (
	// StitchDirName is the name of the internal workspace directory.
	StitchDirName = ".stitch"

	// StoreDirName is the name of the content addressable blob store directory.
	StoreDirName = "store"

	// RecordsDirName is the name of the build record directory.
	RecordsDirName = "records"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "stitch.yaml"

	// DefaultOutputDir is the output directory used when the config does not set one.
	DefaultOutputDir = "dist"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultStitchPath returns the default root directory for stitch metadata.
func DefaultStitchPath() string {
	return StitchDirName
}

// DefaultStorePath returns the default path for the blob store.
// It joins .stitch and store.
func DefaultStorePath() string {
	return filepath.Join(StitchDirName, StoreDirName)
}

// DefaultRecordsPath returns the default path for build records.
// It joins .stitch and records.
func DefaultRecordsPath() string {
	return filepath.Join(StitchDirName, RecordsDirName)
}
