package fs

import (
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.InputResolver = (*Resolver)(nil)

// Resolver implements the InputResolver interface using filepath.Glob.
// Directories are expanded to the files below them.
type Resolver struct {
	walker *Walker
}

// NewResolver creates a new Resolver.
func NewResolver(walker *Walker) *Resolver {
	return &Resolver{walker: walker}
}

// ResolveInputs resolves the given patterns to sorted, slash-separated paths relative to root.
func (r *Resolver) ResolveInputs(inputs []string, root string) ([]string, error) {
	unique := make(map[string]struct{})

	for _, input := range inputs {
		path := filepath.Join(root, filepath.FromSlash(input))

		matches, err := filepath.Glob(path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to glob path"), "path", path)
		}

		if len(matches) == 0 {
			return nil, zerr.With(zerr.Wrap(domain.ErrInputNotFound, "pattern matched nothing"), "path", input)
		}

		for _, match := range matches {
			if err := r.collect(root, match, unique); err != nil {
				return nil, err
			}
		}
	}

	result := make([]string, 0, len(unique))
	for path := range unique {
		result = append(result, path)
	}
	slices.Sort(result)

	return result, nil
}

func (r *Resolver) collect(root, match string, into map[string]struct{}) error {
	info, err := os.Stat(match)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat path"), "path", match)
	}

	if !info.IsDir() {
		return addRelative(root, match, into)
	}

	for file := range r.walker.WalkFiles(match, nil) {
		if err := addRelative(root, file, into); err != nil {
			return err
		}
	}
	return nil
}

func addRelative(root, path string, into map[string]struct{}) error {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to relativize path"), "path", path)
	}
	into[filepath.ToSlash(rel)] = struct{}{}
	return nil
}
