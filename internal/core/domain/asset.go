package domain

import "context"

// AssetContent is the payload of an asset.
// Data must be treated as read-only once returned.
type AssetContent struct {
	Data      []byte
	MediaType string
}

// Asset is an immutable, content-identified unit of build output.
type Asset interface {
	// Ident returns the asset's identity. It is stable for a given input state.
	Ident() Ident
	// Content returns the asset's payload. Implementations read their inputs
	// through the memo substrate so that reads are tracked as dependencies.
	Content(ctx context.Context) (AssetContent, error)
}

// ChunkItem is the unit a chunking strategy places into a chunk.
type ChunkItem struct {
	Ident Ident
	Code  []byte
}

// ChunkableAsset is an asset that can participate in chunk construction.
type ChunkableAsset interface {
	Asset
	// ChunkItem returns the code unit representing the asset inside a chunk.
	ChunkItem(ctx context.Context) (ChunkItem, error)
}

// Chunk is a bundling unit produced by a chunking strategy.
type Chunk interface {
	Asset
	// Members lists the identities of the chunkable assets placed into the chunk, in placement order.
	Members() []Ident
}

// AsChunkable reports whether a implements ChunkableAsset.
func AsChunkable(a Asset) (ChunkableAsset, bool) {
	c, ok := a.(ChunkableAsset)
	return c, ok
}
