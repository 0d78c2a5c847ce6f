package evaluate_test

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"sync/atomic"

	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/core/ports"
)

// module is a chunkable source module, which makes it an evaluated entry.
type module struct {
	id   domain.Ident
	code string
}

func newModule(path string) *module {
	return &module{id: domain.NewIdent(path), code: "export default " + path}
}

func (m *module) Ident() domain.Ident { return m.id }

func (m *module) Content(context.Context) (domain.AssetContent, error) {
	return domain.AssetContent{Data: []byte(m.code), MediaType: "text/javascript"}, nil
}

func (m *module) ChunkItem(context.Context) (domain.ChunkItem, error) {
	return domain.ChunkItem{Ident: m.id, Code: []byte(m.code)}, nil
}

// file is a plain asset whose content is read through the memoizer.
type file struct {
	id    domain.Ident
	memo  ports.Memoizer
	reads *atomic.Int32
}

func newFile(m ports.Memoizer, path string) *file {
	return &file{id: domain.NewIdent(path), memo: m, reads: new(atomic.Int32)}
}

func (f *file) Ident() domain.Ident { return f.id }

func (f *file) Content(ctx context.Context) (domain.AssetContent, error) {
	f.reads.Add(1)
	f.memo.Read(ctx, ports.FileDependency("/project/"+f.id.String()))
	return domain.AssetContent{Data: []byte(f.id.String()), MediaType: "text/css"}, nil
}

// recordingStrategy renders a line per load and per execution.
type recordingStrategy struct {
	renders atomic.Int32

	dropReference bool
	reverseOrder  bool
}

func (s *recordingStrategy) Environment() domain.Environment {
	return domain.Environment{Kind: domain.EnvBrowser}
}

func (s *recordingStrategy) Chunk(ctx context.Context, name string, assets []domain.ChunkableAsset) (domain.Chunk, error) {
	var buf bytes.Buffer
	members := make([]domain.Ident, 0, len(assets))
	for _, a := range assets {
		item, err := a.ChunkItem(ctx)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&buf, "define %s\n", item.Ident)
		members = append(members, item.Ident)
	}
	content := domain.AssetContent{Data: buf.Bytes(), MediaType: "text/javascript"}
	return domain.NewGeneratedChunk(domain.NewIdent(name+".js"), content, members), nil
}

func (s *recordingStrategy) Extension() string { return ".js" }

func (s *recordingStrategy) RenderEvaluation(ctx context.Context, plan *domain.EvaluationPlan) (domain.Evaluation, error) {
	s.renders.Add(1)

	var buf bytes.Buffer
	refs := []domain.Ident{plan.Chunk.Ident()}
	fmt.Fprintf(&buf, "load %s\n", plan.Chunk.Ident())
	for _, a := range plan.Pool {
		if _, err := a.Content(ctx); err != nil {
			return domain.Evaluation{}, err
		}
		fmt.Fprintf(&buf, "load %s\n", a.Ident())
		refs = append(refs, a.Ident())
	}
	if s.dropReference && len(refs) > 1 {
		refs = refs[:len(refs)-1]
	}

	order := make([]domain.Ident, 0, len(plan.Entries))
	for _, e := range plan.Entries {
		order = append(order, e.Ident())
	}
	if s.reverseOrder {
		slices.Reverse(order)
	}
	for _, id := range order {
		fmt.Fprintf(&buf, "run %s\n", id)
	}

	return domain.Evaluation{
		Content:    domain.AssetContent{Data: buf.Bytes(), MediaType: "text/javascript"},
		References: refs,
		Order:      order,
	}, nil
}

func contentOf(ctx context.Context, a domain.Asset) string {
	c, err := a.Content(ctx)
	if err != nil {
		return "error: " + err.Error()
	}
	return string(c.Data)
}
