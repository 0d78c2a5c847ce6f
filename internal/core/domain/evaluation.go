package domain

import (
	"context"
	"slices"
)

// EvaluationPlan is the fully resolved input a strategy renders into an evaluation asset.
type EvaluationPlan struct {
	// Ident is the output identity, already derived from the inputs.
	Ident Ident
	// Chunk is the primary bundled content.
	Chunk Chunk
	// Entries are the resolved entries in execution order.
	Entries []EvaluatedEntry
	// Pool holds the supporting assets sorted by identity, without duplicates.
	Pool []Asset
}

// Evaluation is what a strategy renders for a plan.
type Evaluation struct {
	Content AssetContent
	// References lists every asset the content loads.
	References []Ident
	// Order lists the entries in the order their executions were emitted.
	Order []Ident
}

// GeneratedAsset is an asset whose content was computed by the build.
type GeneratedAsset struct {
	ident   Ident
	content AssetContent
	refs    []Ident
}

// NewGeneratedAsset creates a GeneratedAsset. refs lists the assets it references.
func NewGeneratedAsset(ident Ident, content AssetContent, refs []Ident) *GeneratedAsset {
	return &GeneratedAsset{ident: ident, content: content, refs: slices.Clone(refs)}
}

// Ident returns the asset identity.
func (g *GeneratedAsset) Ident() Ident { return g.ident }

// Content returns the computed content.
func (g *GeneratedAsset) Content(context.Context) (AssetContent, error) { return g.content, nil }

// References returns the identities of the assets this asset loads.
func (g *GeneratedAsset) References() []Ident { return slices.Clone(g.refs) }

// GeneratedChunk is a chunk produced by a chunking strategy.
type GeneratedChunk struct {
	GeneratedAsset
	members []Ident
}

// NewGeneratedChunk creates a chunk holding members in placement order.
func NewGeneratedChunk(ident Ident, content AssetContent, members []Ident) *GeneratedChunk {
	return &GeneratedChunk{
		GeneratedAsset: GeneratedAsset{ident: ident, content: content},
		members:        slices.Clone(members),
	}
}

// Members returns the placed asset identities.
func (c *GeneratedChunk) Members() []Ident { return slices.Clone(c.members) }
