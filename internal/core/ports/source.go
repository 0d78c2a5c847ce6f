package ports

import "go.trai.ch/stitch/internal/core/domain"

// AssetSource turns project files into assets.
// Assets read their content lazily through the memoizer.
//
//go:generate mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks
type AssetSource interface {
	// Module returns a chunkable asset for the source module at path, relative to root.
	Module(root string, path domain.Ident) domain.ChunkableAsset

	// File returns a plain, non-chunkable asset for the file at path, relative to root.
	File(root string, path domain.Ident) domain.Asset

	// Defer returns a deferred reference that checks path exists and loads it as a module
	// when modular is true, or as a plain file otherwise.
	Defer(root string, path domain.Ident, modular bool) domain.Ref[domain.Asset]
}
