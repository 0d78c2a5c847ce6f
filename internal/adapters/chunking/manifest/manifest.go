// Package manifest renders chunks and evaluations as CBOR documents for native runtimes.
package manifest

import (
	"context"
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// Extension is the file extension of manifest outputs.
	Extension = ".cbor"

	// FormatVersion is written into every document.
	FormatVersion = 1

	mediaType  = "application/cbor"
	digestSize = 8
)

var _ ports.EvaluationStrategy = (*Strategy)(nil)

// Module is one module placed into a chunk document.
type Module struct {
	Path string `cbor:"1,keyasint"`
	Code []byte `cbor:"2,keyasint"`
}

// ChunkDocument is the content of a manifest chunk.
type ChunkDocument struct {
	Version int      `cbor:"1,keyasint"`
	Modules []Module `cbor:"2,keyasint"`
}

// Load is an asset the runtime must load before executing entries.
type Load struct {
	Path      string `cbor:"1,keyasint"`
	Digest    string `cbor:"2,keyasint"`
	MediaType string `cbor:"3,keyasint,omitempty"`
}

// Document is the content of a manifest evaluation.
// The runtime loads every asset of Loads, in any order, then executes Entries in order.
type Document struct {
	Version     int      `cbor:"1,keyasint"`
	Environment string   `cbor:"2,keyasint"`
	Loads       []Load   `cbor:"3,keyasint"`
	Entries     []string `cbor:"4,keyasint"`
}

// Strategy implements ports.EvaluationStrategy with CBOR documents. It can place any asset.
type Strategy struct {
	env    domain.Environment
	hasher ports.Hasher
	enc    cbor.EncMode
}

// New creates a manifest Strategy for env.
func New(env domain.Environment, hasher ports.Hasher) (*Strategy, error) {
	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create CBOR encoder")
	}
	return &Strategy{env: env, hasher: hasher, enc: enc}, nil
}

// Environment returns the manifest environment.
func (s *Strategy) Environment() domain.Environment {
	return s.env
}

// Extension returns ".cbor".
func (s *Strategy) Extension() string {
	return Extension
}

// Chunk encodes the modules in placement order.
func (s *Strategy) Chunk(ctx context.Context, name string, assets []domain.ChunkableAsset) (domain.Chunk, error) {
	doc := ChunkDocument{Version: FormatVersion, Modules: make([]Module, 0, len(assets))}
	members := make([]domain.Ident, 0, len(assets))

	for _, a := range assets {
		item, err := a.ChunkItem(ctx)
		if err != nil {
			return nil, zerr.With(errors.Join(domain.ErrChunkConstruction, err), "asset", a.Ident().String())
		}
		doc.Modules = append(doc.Modules, Module{Path: item.Ident.String(), Code: item.Code})
		members = append(members, item.Ident)
	}

	data, err := s.enc.Marshal(doc)
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrChunkConstruction, err), "chunk", name)
	}

	ident := domain.NewIdent(fmt.Sprintf("%s-%s%s", name, s.hasher.Sum(data)[:digestSize], Extension))
	return domain.NewGeneratedChunk(ident, domain.AssetContent{Data: data, MediaType: mediaType}, members), nil
}

// RenderEvaluation encodes the load list and the ordered entries of plan.
func (s *Strategy) RenderEvaluation(ctx context.Context, plan *domain.EvaluationPlan) (domain.Evaluation, error) {
	doc := Document{
		Version:     FormatVersion,
		Environment: s.env.String(),
		Loads:       make([]Load, 0, len(plan.Pool)+1),
		Entries:     make([]string, 0, len(plan.Entries)),
	}
	refs := make([]domain.Ident, 0, len(plan.Pool)+1)

	for _, a := range append([]domain.Asset{plan.Chunk}, plan.Pool...) {
		content, err := a.Content(ctx)
		if err != nil {
			return domain.Evaluation{}, zerr.With(errors.Join(domain.ErrChunkConstruction, err), "asset", a.Ident().String())
		}
		doc.Loads = append(doc.Loads, Load{
			Path:      a.Ident().String(),
			Digest:    s.hasher.Sum(content.Data),
			MediaType: content.MediaType,
		})
		refs = append(refs, a.Ident())
	}

	order := make([]domain.Ident, 0, len(plan.Entries))
	for _, e := range plan.Entries {
		doc.Entries = append(doc.Entries, e.Ident().String())
		order = append(order, e.Ident())
	}

	data, err := s.enc.Marshal(doc)
	if err != nil {
		return domain.Evaluation{}, zerr.With(errors.Join(domain.ErrChunkConstruction, err), "evaluation", plan.Ident.String())
	}

	return domain.Evaluation{
		Content:    domain.AssetContent{Data: data, MediaType: mediaType},
		References: refs,
		Order:      order,
	}, nil
}

// Decode parses a manifest evaluation document.
func Decode(data []byte) (*Document, error) {
	var doc Document
	if err := cbor.Unmarshal(data, &doc); err != nil {
		return nil, zerr.Wrap(err, "failed to decode manifest")
	}
	return &doc, nil
}

// DecodeChunk parses a manifest chunk document.
func DecodeChunk(data []byte) (*ChunkDocument, error) {
	var doc ChunkDocument
	if err := cbor.Unmarshal(data, &doc); err != nil {
		return nil, zerr.Wrap(err, "failed to decode manifest chunk")
	}
	return &doc, nil
}
