// Package sink writes finished ascii art to a filesystem.
package sink

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	// DefaultOutputFile is written to the working directory unless another path is given
	DefaultOutputFile = "ascii_image.txt"
	// FilePermission is used for newly created output files. An existing file keeps its mode
	FilePermission os.FileMode = 0o644
)

/*
Write stores art at path on fsys, replacing any existing file.

The art is first written to a temporary file next to path and then renamed over it, so path either keeps its old content or holds the whole new
artifact, never a partial one. A file that already exists at path keeps its permissions.
*/
func Write(fsys afero.Fs, path, art string) error {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	perm := FilePermission
	if info, err := fsys.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	dir := filepath.Dir(path)
	tmp, err := afero.TempFile(fsys, dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(art); err != nil {
		tmp.Close()
		fsys.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		fsys.Remove(tmpName)
		return err
	}
	if err := fsys.Chmod(tmpName, perm); err != nil {
		fsys.Remove(tmpName)
		return err
	}

	if err := fsys.Rename(tmpName, path); err != nil {
		fsys.Remove(tmpName)
		return err
	}

	return nil
}
