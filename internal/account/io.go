package account

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// The account file holds credential material, sealed or not, so it is
// never readable by other users.
const fileMode fs.FileMode = 0o600

// readAccountFile returns the account file contents. ok is false when the
// store has never been saved.
func readAccountFile(path string) (data []byte, ok bool, err error) {
	data, err = os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, false, nil
	case err != nil:
		return nil, false, err
	}
	return data, true, nil
}

// replaceAccountFile swaps data in for the account file at path. The new
// contents are synced in a sibling temp file before the rename, so a crash
// leaves either the previous list or the new one on disk.
func replaceAccountFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	name := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(name)
		}
	}()

	if err := tmp.Chmod(fileMode); err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(name, path); err != nil {
		return err
	}
	committed = true
	return nil
}
