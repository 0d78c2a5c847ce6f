// Package browser renders chunks as script module registries and evaluations as bootstrap scripts.
package browser

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"slices"

	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// Extension is the file extension of browser outputs.
	Extension = ".js"

	mediaType  = "text/javascript"
	digestSize = 8
)

var _ ports.EvaluationStrategy = (*Strategy)(nil)

// Strategy implements ports.EvaluationStrategy for browsers.
// Chunks register module factories; the evaluation asset loads every chunk and stylesheet
// in parallel and then requires the entries one after another.
type Strategy struct {
	env    domain.Environment
	hasher ports.Hasher
}

// New creates a browser Strategy for env.
func New(env domain.Environment, hasher ports.Hasher) *Strategy {
	return &Strategy{env: env, hasher: hasher}
}

// Environment returns the browser environment.
func (s *Strategy) Environment() domain.Environment {
	return s.env
}

// Extension returns ".js".
func (s *Strategy) Extension() string {
	return Extension
}

// Chunk wraps every module in a factory registered under its path.
func (s *Strategy) Chunk(ctx context.Context, name string, assets []domain.ChunkableAsset) (domain.Chunk, error) {
	var buf bytes.Buffer
	buf.WriteString(header)
	buf.WriteString(registry)

	members := make([]domain.Ident, 0, len(assets))
	for _, a := range assets {
		if !isScript(a.Ident()) {
			return nil, placementError(a.Ident(), "only scripts can be placed into a browser chunk")
		}
		item, err := a.ChunkItem(ctx)
		if err != nil {
			return nil, zerr.With(errors.Join(domain.ErrChunkConstruction, err), "asset", a.Ident().String())
		}
		fmt.Fprintf(&buf, "registry.modules[%s] = function(module, exports, require) {\n", quote(item.Ident.String()))
		buf.Write(item.Code)
		if len(item.Code) > 0 && item.Code[len(item.Code)-1] != '\n' {
			buf.WriteByte('\n')
		}
		buf.WriteString("};\n")
		members = append(members, item.Ident)
	}
	buf.WriteString(footer)

	data := buf.Bytes()
	ident := domain.NewIdent(fmt.Sprintf("%s-%s%s", name, s.hasher.Sum(data)[:digestSize], Extension))
	return domain.NewGeneratedChunk(ident, domain.AssetContent{Data: data, MediaType: mediaType}, members), nil
}

// RenderEvaluation renders the bootstrap script for plan.
func (s *Strategy) RenderEvaluation(ctx context.Context, plan *domain.EvaluationPlan) (domain.Evaluation, error) {
	placed := placedModules(plan)
	for _, e := range plan.Entries {
		if _, ok := placed[e.Ident()]; !ok {
			return domain.Evaluation{}, placementError(e.Ident(), "entry is not part of any loaded chunk")
		}
	}

	loads := make([]string, 0, len(plan.Pool)+1)
	refs := make([]domain.Ident, 0, len(plan.Pool)+1)

	for _, a := range append([]domain.Asset{plan.Chunk}, plan.Pool...) {
		kind, ok := loadKind(a.Ident())
		if !ok {
			return domain.Evaluation{}, placementError(a.Ident(), "browsers can only load scripts and stylesheets")
		}
		content, err := a.Content(ctx)
		if err != nil {
			return domain.Evaluation{}, zerr.With(errors.Join(domain.ErrChunkConstruction, err), "asset", a.Ident().String())
		}
		url := s.env.PublicPath + a.Ident().String() + "?v=" + s.hasher.Sum(content.Data)[:digestSize]
		loads = append(loads, fmt.Sprintf("  load(%s, %s)", quote(url), quote(kind)))
		refs = append(refs, a.Ident())
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	buf.WriteString(registry)
	buf.WriteString(runtime)
	buf.WriteString("\nPromise.all([\n")
	for _, l := range loads {
		buf.WriteString(l)
		buf.WriteString(",\n")
	}
	buf.WriteString("]).then(function() {\n")

	order := make([]domain.Ident, 0, len(plan.Entries))
	for _, e := range plan.Entries {
		fmt.Fprintf(&buf, "  require(%s);\n", quote(e.Ident().String()))
		order = append(order, e.Ident())
	}
	buf.WriteString("});\n")
	buf.WriteString(footer)

	return domain.Evaluation{
		Content:    domain.AssetContent{Data: buf.Bytes(), MediaType: mediaType},
		References: refs,
		Order:      order,
	}, nil
}

// placedModules collects the members of every chunk the evaluation loads.
func placedModules(plan *domain.EvaluationPlan) map[domain.Ident]struct{} {
	placed := make(map[domain.Ident]struct{})
	for _, id := range plan.Chunk.Members() {
		placed[id] = struct{}{}
	}
	for _, a := range plan.Pool {
		if c, ok := a.(domain.Chunk); ok {
			for _, id := range c.Members() {
				placed[id] = struct{}{}
			}
		}
	}
	return placed
}

func isScript(id domain.Ident) bool {
	return slices.Contains([]string{".js", ".mjs", ".cjs"}, path.Ext(id.String()))
}

func loadKind(id domain.Ident) (string, bool) {
	switch {
	case isScript(id):
		return "script", true
	case path.Ext(id.String()) == ".css":
		return "style", true
	default:
		return "", false
	}
}

func placementError(id domain.Ident, reason string) error {
	return zerr.With(zerr.Wrap(domain.ErrChunkConstruction, reason), "asset", id.String())
}

func quote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
