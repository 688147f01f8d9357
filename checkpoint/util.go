package checkpoint

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/spf13/afero"
)

// writeAtomic writes the file through a temporary file in the same directory.
// The destination is replaced only if write and sync succeeded, otherwise the temporary file is removed.
func writeAtomic(fs afero.Fs, path string, write func(io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	if err := fs.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("create dir %v: %w", dir, err)
	}
	tmp, err := afero.TempFile(fs, dir, filepath.Base(path))
	if err != nil {
		return fmt.Errorf("create tmp file in %v: %w", dir, err)
	}
	closed := false
	defer func() {
		if err == nil {
			return
		}
		if !closed {
			err = errors.Join(err, tmp.Close())
		}
		err = errors.Join(err, fs.Remove(tmp.Name()))
	}()

	buf := bufio.NewWriter(tmp)
	if err := write(buf); err != nil {
		return err
	}
	if err := buf.Flush(); err != nil {
		return fmt.Errorf("flush %v: %w", tmp.Name(), err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync %v: %w", tmp.Name(), err)
	}
	closed = true
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %v: %w", tmp.Name(), err)
	}
	if err := fs.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename %v to %v: %w", tmp.Name(), path, err)
	}
	return nil
}

// ValidateSchema checks that data is a checkpoint of the supported version.
func ValidateSchema(data []byte) error {
	sch, err := jsonschema.CompileString(schemaFile, Schema)
	if err != nil {
		return fmt.Errorf("compile checkpoint json schema: %w", err)
	}
	var v any
	if err = json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal checkpoint data: %w", err)
	}
	if err = sch.Validate(v); err != nil {
		return fmt.Errorf("validate checkpoint data: %w", err)
	}
	return nil
}
