package ports

import "go.trai.ch/stitch/internal/core/domain"

// ArtifactStore persists build records and emitted content.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ArtifactStore interface {
	// Get retrieves the build record of a bundle.
	// Returns nil, nil if not found.
	Get(root, bundle string) (*domain.BuildRecord, error)

	// Put stores a build record.
	Put(root string, record domain.BuildRecord) error

	// PutBlob stores content under its digest. Storing an existing digest is a no-op.
	PutBlob(root, digest string, data []byte) error

	// GetBlob returns the content stored under digest.
	GetBlob(root, digest string) ([]byte, error)
}

// Emitter writes build outputs.
type Emitter interface {
	// Emit writes data to path unless the file already holds identical content.
	// It reports whether the file was written.
	Emit(path string, data []byte) (bool, error)
}
