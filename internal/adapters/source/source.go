// Package source loads project files as assets whose reads are tracked by the memoizer.
package source

import (
	"context"
	"errors"
	"io/fs"
	"mime"
	"os"
	"path"
	"path/filepath"

	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.AssetSource = (*Source)(nil)

const (
	fileKind   = "file"
	moduleKind = "module"
)

// Source implements ports.AssetSource on the local file system.
type Source struct {
	memo ports.Memoizer
}

// NewSource creates a Source reading through m.
func NewSource(m ports.Memoizer) *Source {
	return &Source{memo: m}
}

// Module returns the chunkable module at rel below root.
func (s *Source) Module(root string, rel domain.Ident) domain.ChunkableAsset {
	return &ModuleAsset{FileAsset: s.file(root, rel)}
}

// File returns the plain asset at rel below root.
func (s *Source) File(root string, rel domain.Ident) domain.Asset {
	return s.file(root, rel)
}

// Defer returns a memoized reference that checks the file exists before loading it.
// The reference key covers the absolute path and the asset kind.
func (s *Source) Defer(root string, rel domain.Ident, modular bool) domain.Ref[domain.Asset] {
	abs := absPath(root, rel)
	kind := fileKind
	if modular {
		kind = moduleKind
	}
	key := domain.JoinKey("asset", kind, abs)

	return domain.RefFunc[domain.Asset]{
		K: key,
		F: func(ctx context.Context) (domain.Asset, error) {
			return ports.Memo(ctx, s.memo, key, func(ctx context.Context) (domain.Asset, error) {
				s.memo.Read(ctx, ports.FileDependency(abs))
				if _, err := os.Stat(abs); err != nil {
					if errors.Is(err, fs.ErrNotExist) {
						return nil, zerr.With(zerr.Wrap(domain.ErrInputNotFound, "asset does not exist"), "path", rel.String())
					}
					return nil, zerr.With(errors.Join(domain.ErrAssetReadFailed, err), "path", rel.String())
				}
				if modular {
					return s.Module(root, rel), nil
				}
				return s.File(root, rel), nil
			})
		},
	}
}

func (s *Source) file(root string, rel domain.Ident) *FileAsset {
	return &FileAsset{ident: rel, abs: absPath(root, rel), memo: s.memo}
}

func absPath(root string, rel domain.Ident) string {
	return filepath.Join(root, filepath.FromSlash(rel.String()))
}

// FileAsset is a project file included as is.
type FileAsset struct {
	ident domain.Ident
	abs   string
	memo  ports.Memoizer
}

// Ident returns the project-relative path.
func (f *FileAsset) Ident() domain.Ident { return f.ident }

// Key identifies the file by its absolute path.
func (f *FileAsset) Key() string { return domain.JoinKey(fileKind, f.abs) }

// Path returns the absolute path of the file.
func (f *FileAsset) Path() string { return f.abs }

// Content reads the file. The read is recorded as a dependency of the calling computation.
func (f *FileAsset) Content(ctx context.Context) (domain.AssetContent, error) {
	return ports.Memo(ctx, f.memo, "content|"+f.abs, func(ctx context.Context) (domain.AssetContent, error) {
		f.memo.Read(ctx, ports.FileDependency(f.abs))

		data, err := os.ReadFile(f.abs)
		if err != nil {
			return domain.AssetContent{}, zerr.With(errors.Join(domain.ErrAssetReadFailed, err), "path", f.ident.String())
		}
		return domain.AssetContent{Data: data, MediaType: MediaType(f.ident.String())}, nil
	})
}

// ModuleAsset is a source module that can be placed into a chunk.
type ModuleAsset struct {
	*FileAsset
}

// Key identifies the module by its absolute path.
func (m *ModuleAsset) Key() string { return domain.JoinKey(moduleKind, m.abs) }

// ChunkItem returns the module's code keyed by its path.
func (m *ModuleAsset) ChunkItem(ctx context.Context) (domain.ChunkItem, error) {
	content, err := m.Content(ctx)
	if err != nil {
		return domain.ChunkItem{}, err
	}
	return domain.ChunkItem{Ident: m.ident, Code: content.Data}, nil
}

// MediaType guesses the media type of name from its extension.
func MediaType(name string) string {
	switch ext := path.Ext(name); ext {
	case ".js", ".mjs", ".cjs":
		return "text/javascript"
	case ".css":
		return "text/css"
	default:
		if t := mime.TypeByExtension(ext); t != "" {
			return t
		}
		return "application/octet-stream"
	}
}
