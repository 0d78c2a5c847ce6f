// Package cas implements content addressable blob storage and build record storage.
package cas

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/zstd"
	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/zerr"
)

const blobExt = ".zst"

var _ ports.ArtifactStore = (*Store)(nil)

// Store implements ports.ArtifactStore.
// Blobs are zstd-compressed files named by digest; records are CBOR files named by bundle.
type Store struct {
	enc     cbor.EncMode
	dec     cbor.DecMode
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

// NewStore creates a new Store.
func NewStore() (*Store, error) {
	opts := cbor.CoreDetEncOptions()
	opts.Time = cbor.TimeRFC3339Nano
	enc, err := opts.EncMode()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create CBOR encoder")
	}

	dec, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create CBOR decoder")
	}

	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create zstd encoder")
	}

	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create zstd decoder")
	}

	return &Store{enc: enc, dec: dec, encoder: encoder, decoder: decoder}, nil
}

// Get retrieves the build record of a bundle.
func (s *Store) Get(root, bundle string) (*domain.BuildRecord, error) {
	path := recordPath(root, bundle)
	//nolint:gosec // Path is constructed from the project root and a validated bundle name
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(errors.Join(domain.ErrStoreReadFailed, err), "bundle", bundle)
	}

	var record domain.BuildRecord
	if err := s.dec.Unmarshal(data, &record); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrStoreDecodeFailed, err), "bundle", bundle)
	}

	return &record, nil
}

// Put stores a build record, replacing any previous record of the bundle.
func (s *Store) Put(root string, record domain.BuildRecord) error {
	data, err := s.enc.Marshal(record)
	if err != nil {
		return zerr.With(errors.Join(domain.ErrStoreEncodeFailed, err), "bundle", record.Bundle)
	}

	return writeFile(recordPath(root, record.Bundle), data)
}

// PutBlob stores data under digest.
func (s *Store) PutBlob(root, digest string, data []byte) error {
	path := blobPath(root, digest)
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	return writeFile(path, s.encoder.EncodeAll(data, nil))
}

// GetBlob returns the content stored under digest.
func (s *Store) GetBlob(root, digest string) ([]byte, error) {
	//nolint:gosec // Path is constructed from the project root and a hex digest
	compressed, err := os.ReadFile(blobPath(root, digest))
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrStoreReadFailed, err), "digest", digest)
	}

	data, err := s.decoder.DecodeAll(compressed, nil)
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrStoreDecodeFailed, err), "digest", digest)
	}

	return data, nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(errors.Join(domain.ErrStoreCreateFailed, err), "path", path)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return zerr.With(errors.Join(domain.ErrStoreWriteFailed, err), "path", path)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.With(errors.Join(domain.ErrStoreWriteFailed, err), "path", path)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(errors.Join(domain.ErrStoreWriteFailed, err), "path", path)
	}
	if err := os.Chmod(tmp.Name(), domain.FilePerm); err != nil {
		return zerr.With(errors.Join(domain.ErrStoreWriteFailed, err), "path", path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return zerr.With(errors.Join(domain.ErrStoreWriteFailed, err), "path", path)
	}
	return nil
}

func recordPath(root, bundle string) string {
	return filepath.Join(root, domain.DefaultRecordsPath(), bundle+".cbor")
}

func blobPath(root, digest string) string {
	return filepath.Join(root, domain.DefaultStorePath(), digest+blobExt)
}
