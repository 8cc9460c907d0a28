// Package resources loads text assets by logical, slash-separated path.
package resources

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path"
	"path/filepath"
)

// ErrContainsNil is returned for a text resource holding a NUL byte.
var ErrContainsNil = errors.New("resource contains a NUL byte")

// Loader fetches text resources.
type Loader interface {
	LoadText(name string) (string, error)
}

// Resources resolves logical paths inside a file system root.
type Resources struct {
	fsys fs.FS
	root string
}

// FromFS serves resources from fsys.
func FromFS(fsys fs.FS) *Resources {
	return &Resources{fsys: fsys, root: "."}
}

// FromDir serves resources from a directory on disk.
func FromDir(dir string) *Resources {
	return &Resources{fsys: os.DirFS(dir), root: dir}
}

// FromRelativeExePath serves resources from rel, resolved against the
// directory of the running executable.
func FromRelativeExePath(rel string) (*Resources, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %w", err)
	}
	return FromDir(filepath.Join(filepath.Dir(exe), rel)), nil
}

// LoadText reads the resource at name, e.g. "shaders/objects.vert".
func (r *Resources) LoadText(name string) (string, error) {
	p := path.Clean(name)
	log.Printf("Loading %q from %s", name, path.Join(filepath.ToSlash(r.root), p))

	data, err := fs.ReadFile(r.fsys, p)
	if err != nil {
		return "", err
	}
	if bytes.IndexByte(data, 0) >= 0 {
		return "", ErrContainsNil
	}
	return string(data), nil
}
