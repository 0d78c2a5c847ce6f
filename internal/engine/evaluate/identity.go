package evaluate

import (
	"encoding/hex"
	"strings"

	"github.com/zeebo/blake3"
	"go.trai.ch/stitch/internal/core/domain"
)

const (
	identPrefix = "evaluate-"
	identDigits = 16
)

// Identity derives the output identity of an evaluation asset.
// Entry order is significant; pool order and duplicates are not.
func Identity(chunk domain.Ident, entries, pool []domain.Ident, ext string) domain.Ident {
	h := blake3.New()
	writeSection(h, "chunk", []domain.Ident{chunk})
	writeSection(h, "entries", entries)
	writeSection(h, "pool", domain.SortedIdents(pool))

	sum := hex.EncodeToString(h.Sum(nil))
	return domain.NewIdent(identPrefix + sum[:identDigits] + ext)
}

func writeSection(h *blake3.Hasher, name string, ids []domain.Ident) {
	_, _ = h.Write([]byte(name))
	_, _ = h.Write([]byte{0x01})
	for _, id := range ids {
		_, _ = h.Write([]byte(id.String()))
		_, _ = h.Write([]byte{0x00})
	}
}

// evaluationKey is the memo key of an EvaluateChunk call. pool must already be canonical.
func evaluationKey(env domain.Environment, chunk domain.Chunk, entries *domain.EvaluatedEntries, pool []domain.Asset) string {
	return domain.JoinKey(
		"evaluate",
		env.String(),
		domain.AssetKey(chunk),
		entries.Key(),
		joinKeys(pool),
	)
}

func chunkKey(env domain.Environment, name string, assets []domain.ChunkableAsset) string {
	return domain.JoinKey("chunk", env.String(), name, joinKeys(assets))
}

func joinKeys[T domain.Asset](assets []T) string {
	keys := make([]string, len(assets))
	for i, a := range assets {
		keys[i] = domain.AssetKey(a)
	}
	return domain.JoinKey(keys...)
}

func joinIdents(ids []domain.Ident) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}
	return strings.Join(parts, ",")
}
