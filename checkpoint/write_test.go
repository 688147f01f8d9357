package checkpoint

import (
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func dirNames(tb testing.TB, fs afero.Fs, dir string) []string {
	tb.Helper()
	infos, err := afero.ReadDir(fs, dir)
	require.NoError(tb, err)
	var names []string
	for _, info := range infos {
		names = append(names, info.Name())
	}
	return names
}

func TestWriteAtomic(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := filepath.Join("/data", checkpointDir, "snapshot-1")

	require.NoError(t, writeAtomic(fs, path, func(w io.Writer) error {
		_, err := w.Write([]byte("first"))
		return err
	}))
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	require.Equal(t, "first", string(data))

	require.NoError(t, writeAtomic(fs, path, func(w io.Writer) error {
		_, err := w.Write([]byte("second"))
		return err
	}))
	data, err = afero.ReadFile(fs, path)
	require.NoError(t, err)
	require.Equal(t, "second", string(data))
	require.Equal(t, []string{"snapshot-1"}, dirNames(t, fs, filepath.Dir(path)))
}

func TestWriteAtomicFailure(t *testing.T) {
	fs := afero.NewMemMapFs()
	dir := filepath.Join("/data", checkpointDir)
	path := filepath.Join(dir, "snapshot-2")
	errEncode := errors.New("encode")

	err := writeAtomic(fs, path, func(w io.Writer) error {
		if _, err := w.Write([]byte("partial")); err != nil {
			return err
		}
		return errEncode
	})
	require.ErrorIs(t, err, errEncode)
	require.Empty(t, dirNames(t, fs, dir))

	require.NoError(t, afero.WriteFile(fs, path, []byte("previous"), 0o600))
	err = writeAtomic(fs, path, func(io.Writer) error { return errEncode })
	require.ErrorIs(t, err, errEncode)
	require.Equal(t, []string{"snapshot-2"}, dirNames(t, fs, dir))
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	require.Equal(t, "previous", string(data))
}

func TestWriteAtomicReadOnly(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	err := writeAtomic(fs, "/data/checkpoint/snapshot-3", func(io.Writer) error { return nil })
	require.Error(t, err)
}
