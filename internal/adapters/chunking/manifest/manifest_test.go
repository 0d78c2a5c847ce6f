package manifest_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stitch/internal/adapters/chunking/manifest"
	"go.trai.ch/stitch/internal/adapters/fs"
	"go.trai.ch/stitch/internal/adapters/telemetry"
	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/engine/evaluate"
	"go.trai.ch/stitch/internal/engine/memo"
)

type module struct {
	id   domain.Ident
	code string
}

func (m *module) Ident() domain.Ident { return m.id }

func (m *module) Content(context.Context) (domain.AssetContent, error) {
	return domain.AssetContent{Data: []byte(m.code), MediaType: "text/javascript"}, nil
}

func (m *module) ChunkItem(context.Context) (domain.ChunkItem, error) {
	return domain.ChunkItem{Ident: m.id, Code: []byte(m.code)}, nil
}

type blob struct{ id domain.Ident }

func (b *blob) Ident() domain.Ident { return b.id }

func (b *blob) Content(context.Context) (domain.AssetContent, error) {
	return domain.AssetContent{Data: []byte{0x89, 'P', 'N', 'G'}, MediaType: "image/png"}, nil
}

func TestStrategy_EvaluateChunk(t *testing.T) {
	t.Parallel()

	hasher := fs.NewHasher()
	s, err := manifest.New(domain.Environment{Kind: domain.EnvManifest}, hasher)
	require.NoError(t, err)
	ec := evaluate.NewContext(s, memo.NewTable(), telemetry.NewNoOpTracer())

	a := &module{id: domain.NewIdent("src/a.js"), code: "a()"}
	b := &module{id: domain.NewIdent("src/b.js"), code: "b()"}

	chunk, err := ec.Chunk(t.Context(), "app", []domain.ChunkableAsset{a, b})
	require.NoError(t, err)
	assert.Regexp(t, `^app-[0-9a-f]{8}\.cbor$`, chunk.Ident().String())

	chunkContent, err := chunk.Content(t.Context())
	require.NoError(t, err)
	chunkDoc, err := manifest.DecodeChunk(chunkContent.Data)
	require.NoError(t, err)
	assert.Equal(t, []manifest.Module{
		{Path: "src/a.js", Code: []byte("a()")},
		{Path: "src/b.js", Code: []byte("b()")},
	}, chunkDoc.Modules)

	logo := &blob{id: domain.NewIdent("static/logo.png")}
	entries := domain.Empty().Append(domain.EntryOf(b)).Append(domain.EntryOf(a))

	out, err := ec.EvaluateChunk(t.Context(), chunk, []domain.Asset{logo}, entries)
	require.NoError(t, err)
	assert.Regexp(t, `^evaluate-[0-9a-f]{16}\.cbor$`, out.Ident().String())

	content, err := out.Content(t.Context())
	require.NoError(t, err)
	doc, err := manifest.Decode(content.Data)
	require.NoError(t, err)

	assert.Equal(t, manifest.FormatVersion, doc.Version)
	assert.Equal(t, "manifest", doc.Environment)
	assert.Equal(t, []string{"src/b.js", "src/a.js"}, doc.Entries, "entries keep insertion order")
	require.Len(t, doc.Loads, 2)
	assert.Equal(t, chunk.Ident().String(), doc.Loads[0].Path)
	assert.Equal(t, hasher.Sum(chunkContent.Data), doc.Loads[0].Digest)
	assert.Equal(t, manifest.Load{
		Path:      "static/logo.png",
		Digest:    hasher.Sum([]byte{0x89, 'P', 'N', 'G'}),
		MediaType: "image/png",
	}, doc.Loads[1])
}

func TestStrategy_Deterministic(t *testing.T) {
	t.Parallel()

	s, err := manifest.New(domain.Environment{Kind: domain.EnvManifest}, fs.NewHasher())
	require.NoError(t, err)

	assets := []domain.ChunkableAsset{&module{id: domain.NewIdent("src/a.js"), code: "a()"}}
	first, err := s.Chunk(t.Context(), "app", assets)
	require.NoError(t, err)
	second, err := s.Chunk(t.Context(), "app", assets)
	require.NoError(t, err)

	assert.Equal(t, first.Ident(), second.Ident())
}

func TestDecode_Invalid(t *testing.T) {
	t.Parallel()

	_, err := manifest.Decode([]byte{0xff})
	require.Error(t, err)
}
