package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Emitter = (*Emitter)(nil)

// Emitter writes build outputs, leaving files with identical content untouched.
type Emitter struct {
	hasher ports.Hasher
}

// NewEmitter creates a new Emitter.
func NewEmitter(hasher ports.Hasher) *Emitter {
	return &Emitter{hasher: hasher}
}

// Emit writes data to path unless the file already holds the same content.
func (e *Emitter) Emit(path string, data []byte) (bool, error) {
	existing, err := e.hasher.SumFile(path)
	if err == nil && existing == e.hasher.Sum(data) {
		return false, nil
	}
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return false, zerr.With(errors.Join(domain.ErrEmitFailed, err), "path", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return false, zerr.With(errors.Join(domain.ErrEmitFailed, err), "path", path)
	}

	// Write to a sibling temp file and rename so readers never observe partial output.
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return false, zerr.With(errors.Join(domain.ErrEmitFailed, err), "path", path)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // Removed by rename on success

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return false, zerr.With(errors.Join(domain.ErrEmitFailed, err), "path", path)
	}
	if err := tmp.Close(); err != nil {
		return false, zerr.With(errors.Join(domain.ErrEmitFailed, err), "path", path)
	}
	if err := os.Chmod(tmp.Name(), domain.FilePerm); err != nil {
		return false, zerr.With(errors.Join(domain.ErrEmitFailed, err), "path", path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return false, zerr.With(errors.Join(domain.ErrEmitFailed, err), "path", path)
	}

	return true, nil
}
