package cas_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stitch/internal/adapters/cas"
	"go.trai.ch/stitch/internal/core/domain"
)

func TestStore_PutGet(t *testing.T) {
	t.Parallel()

	store, err := cas.NewStore()
	require.NoError(t, err)

	record := domain.BuildRecord{
		Bundle:     "app",
		Evaluation: "evaluate-0123456789abcdef.js",
		Outputs: []domain.OutputRecord{
			{Path: "app-1a2b3c4d.js", Digest: "00000000deadbeef", Size: 42},
		},
		Timestamp: time.Date(2026, 1, 2, 3, 4, 5, 600, time.UTC),
	}

	t.Run("put and get", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()

		require.NoError(t, store.Put(root, record))

		got, err := store.Get(root, "app")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, record.Bundle, got.Bundle)
		assert.Equal(t, record.Evaluation, got.Evaluation)
		assert.Equal(t, record.Outputs, got.Outputs)
		assert.True(t, record.Timestamp.Equal(got.Timestamp))
		assert.FileExists(t, filepath.Join(root, ".stitch", "records", "app.cbor"))
	})

	t.Run("get missing", func(t *testing.T) {
		t.Parallel()

		got, err := store.Get(t.TempDir(), "missing")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("get corrupt", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		dir := filepath.Join(root, domain.DefaultRecordsPath())
		require.NoError(t, os.MkdirAll(dir, domain.DirPerm))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "app.cbor"), []byte{0xff, 0x00}, domain.FilePerm))

		_, err := store.Get(root, "app")
		require.ErrorIs(t, err, domain.ErrStoreDecodeFailed)
	})
}

func TestStore_Blobs(t *testing.T) {
	t.Parallel()

	store, err := cas.NewStore()
	require.NoError(t, err)
	root := t.TempDir()
	data := bytes.Repeat([]byte("console.log(1);\n"), 64)

	require.NoError(t, store.PutBlob(root, "abc123", data))
	// Storing an existing digest again is a no-op.
	require.NoError(t, store.PutBlob(root, "abc123", []byte("ignored")))

	path := filepath.Join(root, ".stitch", "store", "abc123.zst")
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Less(t, info.Size(), int64(len(data)), "blobs are compressed")

	got, err := store.GetBlob(root, "abc123")
	require.NoError(t, err)
	assert.Equal(t, data, got)

	_, err = store.GetBlob(root, "missing")
	require.ErrorIs(t, err, domain.ErrStoreReadFailed)
}
